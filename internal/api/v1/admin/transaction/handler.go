package transaction

import (
	"coinnect-backend/internal/services"
	"coinnect-backend/internal/utils"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, bool) {
	filter := services.TransactionFilter{}

	if offererStr, exists := c.GetQuery("offerer_id"); exists {
		offererID, err := strconv.Atoi(offererStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid offerer_id"))
			return filter, false
		}
		oid := uint(offererID)
		filter.OffererID = &oid
	}

	if requesterStr, exists := c.GetQuery("requester_id"); exists {
		requesterID, err := strconv.Atoi(requesterStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid requester_id"))
			return filter, false
		}
		rid := uint(requesterID)
		filter.RequesterID = &rid
	}

	if skillStr, exists := c.GetQuery("skill_id"); exists {
		skillID, err := strconv.Atoi(skillStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid skill_id"))
			return filter, false
		}
		sid := uint(skillID)
		filter.SkillID = &sid
	}

	if startTimeStr, exists := c.GetQuery("start_time"); exists {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid start_time format"))
			return filter, false
		}
		filter.StartTime = &startTime
	}

	if endTimeStr, exists := c.GetQuery("end_time"); exists {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid end_time format"))
			return filter, false
		}
		filter.EndTime = &endTime
	}

	if minAmountStr, exists := c.GetQuery("min_amount"); exists {
		minAmount, err := strconv.ParseFloat(minAmountStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid min_amount"))
			return filter, false
		}
		filter.MinAmount = &minAmount
	}

	if maxAmountStr, exists := c.GetQuery("max_amount"); exists {
		maxAmount, err := strconv.ParseFloat(maxAmountStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid max_amount"))
			return filter, false
		}
		filter.MaxAmount = &maxAmount
	}

	return filter, true
}

// ListTransactions godoc
// @Summary List transactions
// @Description Get a paginated list of transactions with filtering. Admin only.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param offerer_id query int false "Filter by offerer ID"
// @Param requester_id query int false "Filter by requester ID"
// @Param skill_id query int false "Filter by skill ID"
// @Param start_time query string false "Filter by start time (RFC3339)"
// @Param end_time query string false "Filter by end time (RFC3339)"
// @Param min_amount query number false "Filter by minimum amount"
// @Param max_amount query number false "Filter by maximum amount"
// @Success 200 {object} utils.Response{data=TransactionListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/transactions [get]
func ListTransactions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	filter, ok := parseTransactionFilter(c)
	if !ok {
		return
	}
	filter.Page = page
	filter.Limit = limit

	transactions, total, err := services.FindTransactions(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	items := make([]TransactionListItem, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, TransactionListItem{
			ID:          t.ID,
			CreatedAt:   t.CreatedAt,
			OffererID:   t.OffererID,
			RequesterID: t.RequesterID,
			SkillID:     t.SkillID,
			AmountPaid:  t.AmountPaid,
			Status:      t.Status,
			IPFSHash:    t.IPFSHash,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", TransactionListResponse{
		Transactions: items,
		Total:        total,
		Page:         page,
		Limit:        limit,
	}))
}

// ExportTransactions godoc
// @Summary Export transactions
// @Description Export transactions to CSV. Admin only.
// @Tags admin
// @Produce text/csv
// @Param offerer_id query int false "Filter by offerer ID"
// @Param requester_id query int false "Filter by requester ID"
// @Param skill_id query int false "Filter by skill ID"
// @Param start_time query string false "Filter by start time (RFC3339)"
// @Param end_time query string false "Filter by end time (RFC3339)"
// @Param min_amount query number false "Filter by minimum amount"
// @Param max_amount query number false "Filter by maximum amount"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/transactions/export [get]
func ExportTransactions(c *gin.Context) {
	filter, ok := parseTransactionFilter(c)
	if !ok {
		return
	}
	filter.Page = 1
	// Hard cap to keep exports bounded
	filter.Limit = 10000

	transactions, _, err := services.FindTransactions(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	csvContent, err := services.GenerateTransactionCSV(transactions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to generate CSV"))
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", csvContent)
}

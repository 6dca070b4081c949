package fraud

import (
	"coinnect-backend/internal/services"
	"coinnect-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ScanForFraud godoc
// @Summary Run the fraud scan
// @Description Run the advisory fraud heuristics over all users. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} utils.Response{data=fraud.ScanResponse}
// @Failure 500 {object} utils.Response
// @Router /admin/fraud/scan [get]
func ScanForFraud(c *gin.Context) {
	flags, total, err := services.ScanForFraud()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to run fraud scan"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Fraud scan completed successfully", ScanResponse{
		Flags: flags,
		Total: total,
	}))
}

// ListAuditEvents godoc
// @Summary List audit events
// @Description Get a paginated list of audit events, newest first. Admin only.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param user_id query int false "Filter by user ID"
// @Param kind query string false "Filter by event kind"
// @Success 200 {object} utils.Response{data=fraud.AuditEventListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/audit-events [get]
func ListAuditEvents(c *gin.Context) {
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

	filter := services.AuditEventFilter{
		Page:  page,
		Limit: limit,
	}

	if userIDStr, exists := c.GetQuery("user_id"); exists {
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user_id"))
			return
		}
		uid := uint(userID)
		filter.UserID = &uid
	}

	if kind, exists := c.GetQuery("kind"); exists {
		filter.Kind = &kind
	}

	events, total, err := services.FindAuditEvents(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch audit events"))
		return
	}

	items := make([]AuditEventItem, 0, len(events))
	for _, e := range events {
		items = append(items, AuditEventItem{
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			UserID:    e.UserID,
			Kind:      e.Kind,
			Details:   e.Details,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Audit events retrieved successfully", AuditEventListResponse{
		Events: items,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}))
}

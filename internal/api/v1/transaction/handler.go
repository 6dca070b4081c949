package transaction

import (
	"coinnect-backend/internal/services"
	"coinnect-backend/internal/utils"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Transfer SkillCoins from the requester to the offerer for a skill exchange
// @Tags transaction
// @Accept  json
// @Produce  json
// @Param   input     body   CreateTransactionInput  true  "Transaction Input"
// @Success 201 {object} utils.Response{data=transaction.TransactionResponse}
// @Failure 400 {object} utils.Response
// @Failure 402 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /transactions [post]
func CreateTransaction(c *gin.Context) {
	var input CreateTransactionInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	txn, err := services.CreateTransaction(input.OffererID, input.RequesterID, input.SkillID, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, utils.NewErrorResponse(http.StatusPaymentRequired, err.Error()))
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrSkillNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrInvalidAmount),
			errors.Is(err, services.ErrSelfTransaction),
			errors.Is(err, services.ErrSkillOwnership):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create transaction"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Transaction completed successfully", toTransactionResponse(txn)))
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transaction
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.Response{data=transaction.TransactionResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	txn, err := services.GetTransactionByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transaction"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction retrieved successfully", toTransactionResponse(txn)))
}

// RateTransaction godoc
// @Summary Rate a transaction
// @Description Rate the counterparty of a completed transaction, once per direction
// @Tags transaction
// @Accept  json
// @Produce  json
// @Param id path int true "Transaction ID"
// @Param   input     body   RateTransactionInput  true  "Rating Input"
// @Success 201 {object} utils.Response{data=transaction.RatingResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /transactions/{id}/rate [post]
func RateTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	var input RateTransactionInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	entry, err := services.RateTransaction(uint(id), *input.RaterIsRequester, input.Score, input.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransactionNotFound), errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrDuplicateRating):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		case errors.Is(err, services.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to rate transaction"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Rating recorded successfully", RatingResponse{
		ID:            entry.ID,
		TransactionID: entry.TransactionID,
		RatedUserID:   entry.UserID,
		Score:         entry.Score,
		Feedback:      entry.Feedback,
	}))
}

// AnchorTransaction godoc
// @Summary Re-anchor a transaction
// @Description Retry the snapshot upload for a committed transaction
// @Tags transaction
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.Response{data=transaction.AnchorResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /transactions/{id}/anchor [post]
func AnchorTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	txn, err := services.GetTransactionByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transaction"))
		return
	}

	cid, err := services.AnchorTransaction(txn)
	if err != nil {
		if errors.Is(err, services.ErrAnchorDisabled) {
			c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(http.StatusServiceUnavailable, err.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, "Failed to anchor transaction"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction anchored successfully", AnchorResponse{CID: cid}))
}

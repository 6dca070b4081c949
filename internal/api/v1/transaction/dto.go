package transaction

import (
	"coinnect-backend/internal/models"
	"time"
)

type CreateTransactionInput struct {
	OffererID   uint    `json:"offerer_id" binding:"required"`
	RequesterID uint    `json:"requester_id" binding:"required"`
	SkillID     uint    `json:"skill_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

type RateTransactionInput struct {
	RaterIsRequester *bool  `json:"rater_is_requester" binding:"required"`
	Score            int    `json:"score" binding:"required"`
	Feedback         string `json:"feedback"`
}

type TransactionResponse struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"transaction_date"`
	OffererID   uint      `json:"offerer_id"`
	RequesterID uint      `json:"requester_id"`
	SkillID     uint      `json:"skill_id"`
	AmountPaid  float64   `json:"amount_paid"`
	Status      string    `json:"status"`
	IPFSHash    *string   `json:"ipfs_hash,omitempty"`
}

type RatingResponse struct {
	ID            uint    `json:"id"`
	TransactionID uint    `json:"transaction_id"`
	RatedUserID   uint    `json:"rated_user_id"`
	Score         float64 `json:"score"`
	Feedback      string  `json:"feedback,omitempty"`
}

type AnchorResponse struct {
	CID string `json:"cid"`
}

func toTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.CreatedAt,
		OffererID:   t.OffererID,
		RequesterID: t.RequesterID,
		SkillID:     t.SkillID,
		AmountPaid:  t.AmountPaid,
		Status:      t.Status,
		IPFSHash:    t.IPFSHash,
	}
}

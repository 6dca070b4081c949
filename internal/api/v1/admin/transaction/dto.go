package transaction

import (
	"time"
)

type TransactionListItem struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	OffererID   uint      `json:"offerer_id"`
	RequesterID uint      `json:"requester_id"`
	SkillID     uint      `json:"skill_id"`
	AmountPaid  float64   `json:"amount_paid"`
	Status      string    `json:"status"`
	IPFSHash    *string   `json:"ipfs_hash,omitempty"`
}

type TransactionListResponse struct {
	Transactions []TransactionListItem `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

package models

import "time"

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// Transaction records a completed SkillCoin transfer: the requester
// paid AmountPaid to the offerer for the referenced skill. Rows are
// immutable after creation except for the IPFSHash backfill.
type Transaction struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"transaction_date"`
	OffererID   uint      `gorm:"not null;index" json:"offerer_id"`
	RequesterID uint      `gorm:"not null;index" json:"requester_id"`
	SkillID     uint      `gorm:"not null" json:"skill_id"`
	AmountPaid  float64   `gorm:"not null" json:"amount_paid"`
	Status      string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	IPFSHash    *string   `gorm:"column:ipfs_hash;type:varchar(100)" json:"ipfs_hash,omitempty"`
}

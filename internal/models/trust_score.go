package models

import "time"

// TrustScore is one rating left on a transaction for its counterpart.
// At most one row may exist per (TransactionID, UserID); the ledger
// service checks for an existing row before inserting.
type TrustScore struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	TransactionID uint      `gorm:"not null;index" json:"transaction_id"`
	Score         float64   `gorm:"not null" json:"score"`
	Feedback      string    `gorm:"type:text" json:"feedback"`
}

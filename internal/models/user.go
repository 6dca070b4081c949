package models

import "time"

// User is a marketplace participant. TrustScore starts at 5.0 and is
// moved by completed transactions and ratings; Balance is the
// SkillCoin holding, seeded from config.StartingBalance on
// registration. IPFSHash points at the latest anchored profile
// snapshot and may lag behind the row (best-effort backfill).
type User struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	TrustScore float64   `gorm:"not null;default:5.0" json:"trust_score"`
	Balance    float64   `gorm:"not null;default:0" json:"skillcoins_balance"`
	IPFSHash   *string   `gorm:"column:ipfs_hash;type:varchar(100)" json:"ipfs_profile_hash,omitempty"`

	Skills []Skill `json:"skills,omitempty"`
}

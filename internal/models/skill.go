package models

import "time"

// Skill is a single offered or requested skill belonging to one user.
// IsOffered=true means the user teaches it, false means they want it.
type Skill struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	SkillName    string    `gorm:"not null;index" json:"skill_name"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	IsOffered    bool      `gorm:"not null;default:true" json:"is_offered"`
	Availability string    `gorm:"not null;default:'anytime'" json:"availability"`
	IPFSHash     *string   `gorm:"column:ipfs_hash;type:varchar(100)" json:"ipfs_hash,omitempty"`
}

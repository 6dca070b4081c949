package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AuditKindSkillHoarding = "skill_hoarding"
	AuditKindAnchorFailed  = "anchor_failed"
)

// AuditEvent is an append-only advisory record. Fraud tripwires and
// anchor failures land here instead of blocking the request path.
type AuditEvent struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `gorm:"precision:3" json:"created_at"`
	UserID    uint           `gorm:"index" json:"user_id"`
	Kind      string         `gorm:"type:varchar(50);index;not null" json:"kind"`
	Details   datatypes.JSON `json:"details"`
}

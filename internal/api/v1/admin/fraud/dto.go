package fraud

import (
	"coinnect-backend/internal/services"
	"time"

	"gorm.io/datatypes"
)

type ScanResponse struct {
	Flags []services.FraudFlag `json:"flags"`
	Total int                  `json:"total"`
}

type AuditEventItem struct {
	ID        uint           `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UserID    uint           `json:"user_id"`
	Kind      string         `json:"kind"`
	Details   datatypes.JSON `json:"details"`
}

type AuditEventListResponse struct {
	Events []AuditEventItem `json:"events"`
	Total  int64            `json:"total"`
	Page   int              `json:"page"`
	Limit  int              `json:"limit"`
}

package services

import (
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// RecordAuditEvent persists an advisory event and mirrors it to the
// structured log. Audit writes never fail the request path: an error
// here is logged and swallowed.
func RecordAuditEvent(userID uint, kind string, details map[string]interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		zap.L().Error("audit event marshal failed", zap.Error(err), zap.String("kind", kind))
		payload = []byte("{}")
	}

	event := models.AuditEvent{
		UserID:  userID,
		Kind:    kind,
		Details: datatypes.JSON(payload),
	}

	if err := database.DB.Create(&event).Error; err != nil {
		zap.L().Error("audit event insert failed", zap.Error(err), zap.String("kind", kind))
	}

	zap.L().Warn("audit event",
		zap.String("kind", kind),
		zap.Uint("user_id", userID),
		zap.Any("details", details),
	)
}

// AuditEventFilter defines criteria for querying audit events.
type AuditEventFilter struct {
	UserID *uint
	Kind   *string
	Page   int
	Limit  int
}

// FindAuditEvents retrieves a paginated list of audit events, newest first.
func FindAuditEvents(filter AuditEventFilter) ([]models.AuditEvent, int64, error) {
	var events []models.AuditEvent
	var total int64

	query := database.DB.Model(&models.AuditEvent{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

package services

import (
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Anchorer is the content-addressed storage gateway used for
// tamper-evidence snapshots. Implemented by ipfs.Client.
type Anchorer interface {
	AddJSON(v interface{}) (string, error)
	Pin(cid string) error
}

// AnchorClient is set once at startup. When nil, anchoring is disabled
// and every Anchor* call reports ErrAnchorDisabled.
var AnchorClient Anchorer

var ErrAnchorDisabled = errors.New("anchoring disabled: no gateway configured")

// anchorRecord uploads the snapshot, pins it and backfills the
// ipfs_hash column of the owning row. The domain mutation has already
// committed by the time this runs; any failure is recorded as an
// audit event and reported to the caller, who must treat it as
// non-fatal. Re-running with the same snapshot is idempotent: the
// same content yields the same CID.
func anchorRecord(table string, rowID uint, userID uint, snapshot map[string]interface{}) (string, error) {
	if AnchorClient == nil {
		return "", ErrAnchorDisabled
	}

	cid, err := AnchorClient.AddJSON(snapshot)
	if err == nil {
		err = AnchorClient.Pin(cid)
	}
	if err == nil {
		err = database.DB.Table(table).Where("id = ?", rowID).Update("ipfs_hash", cid).Error
	}

	if err != nil {
		zap.L().Warn("anchor failed",
			zap.String("table", table),
			zap.Uint("row_id", rowID),
			zap.Error(err),
		)
		RecordAuditEvent(userID, models.AuditKindAnchorFailed, map[string]interface{}{
			"table":  table,
			"row_id": rowID,
			"error":  err.Error(),
		})
		return "", err
	}

	return cid, nil
}

// AnchorTransaction snapshots a committed transaction.
func AnchorTransaction(txn *models.Transaction) (string, error) {
	return anchorRecord("transactions", txn.ID, txn.RequesterID, map[string]interface{}{
		"record_type":      "transaction",
		"transaction_id":   txn.ID,
		"offerer_id":       txn.OffererID,
		"requester_id":     txn.RequesterID,
		"skill_id":         txn.SkillID,
		"amount_paid":      txn.AmountPaid,
		"status":           txn.Status,
		"transaction_date": txn.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// AnchorUserProfile snapshots a user profile with their current skills.
func AnchorUserProfile(user *models.User) (string, error) {
	var skills []models.Skill
	if err := database.DB.Where("user_id = ?", user.ID).Order("id asc").Find(&skills).Error; err != nil {
		return "", err
	}

	skillData := make([]map[string]interface{}, 0, len(skills))
	for _, s := range skills {
		skillData = append(skillData, map[string]interface{}{
			"skill_name":   s.SkillName,
			"is_offered":   s.IsOffered,
			"availability": s.Availability,
		})
	}

	return anchorRecord("users", user.ID, user.ID, map[string]interface{}{
		"record_type": "profile",
		"user_id":     user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"trust_score": user.TrustScore,
		"skills":      skillData,
	})
}

// AnchorSkill snapshots a single skill record.
func AnchorSkill(skill *models.Skill) (string, error) {
	return anchorRecord("skills", skill.ID, skill.UserID, map[string]interface{}{
		"record_type":  "skill",
		"skill_id":     skill.ID,
		"user_id":      skill.UserID,
		"skill_name":   skill.SkillName,
		"is_offered":   skill.IsOffered,
		"availability": skill.Availability,
	})
}

package services

import (
	"coinnect-backend/config"
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"

	"go.uber.org/zap"
)

const (
	FraudReasonUnverifiedSkills = "unverified_skills"
	FraudReasonLowTrust         = "low_trust"
)

// FraudFlag marks one user tripping one heuristic rule. A user
// tripping both rules appears twice, once per rule.
type FraudFlag struct {
	UserID       uint    `json:"user_id"`
	Name         string  `json:"name"`
	Reason       string  `json:"reason"`
	OfferedCount int64   `json:"offered_count,omitempty"`
	TrustScore   float64 `json:"trust_score"`
}

// ScanForFraud runs the advisory heuristics over all users:
//   - more offered skills than the configured threshold with zero
//     transactions as offerer (claimed skills never exercised);
//   - trust score below the configured floor.
//
// The scan is read-only and informational; it never blocks anything.
func ScanForFraud() ([]FraudFlag, int, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := database.DB.Order("id asc").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	flags := []FraudFlag{}
	for _, u := range users {
		var offeredCount int64
		if err := database.DB.Model(&models.Skill{}).
			Where("user_id = ? AND is_offered = ?", u.ID, true).
			Count(&offeredCount).Error; err != nil {
			return nil, 0, err
		}

		if offeredCount > int64(cfg.FraudMaxOfferedSkills) {
			var offererTxns int64
			if err := database.DB.Model(&models.Transaction{}).
				Where("offerer_id = ?", u.ID).
				Count(&offererTxns).Error; err != nil {
				return nil, 0, err
			}

			if offererTxns == 0 {
				flags = append(flags, FraudFlag{
					UserID:       u.ID,
					Name:         u.Name,
					Reason:       FraudReasonUnverifiedSkills,
					OfferedCount: offeredCount,
					TrustScore:   u.TrustScore,
				})
			}
		}

		if u.TrustScore < cfg.FraudMinTrustScore {
			flags = append(flags, FraudFlag{
				UserID:     u.ID,
				Name:       u.Name,
				Reason:     FraudReasonLowTrust,
				TrustScore: u.TrustScore,
			})
		}
	}

	zap.L().Info("fraud scan completed",
		zap.Int("users_scanned", len(users)),
		zap.Int("flags", len(flags)),
	)

	return flags, len(flags), nil
}

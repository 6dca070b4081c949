package services

import (
	"coinnect-backend/config"
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"errors"

	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("skill not found")

// AddSkill registers a new skill for an existing user. When the owner
// already advertises at least FraudMaxOfferedSkills offered skills, an
// advisory skill_hoarding event is recorded; the insert still goes
// through. The tripwire is informational, not a hard limit.
func AddSkill(ownerID uint, name string, isOffered bool, availability string) (*models.Skill, error) {
	var owner models.User
	if err := database.DB.First(&owner, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	var offeredCount int64
	if err := database.DB.Model(&models.Skill{}).
		Where("user_id = ? AND is_offered = ?", ownerID, true).
		Count(&offeredCount).Error; err != nil {
		return nil, err
	}

	if offeredCount >= int64(cfg.FraudMaxOfferedSkills) {
		RecordAuditEvent(ownerID, models.AuditKindSkillHoarding, map[string]interface{}{
			"offered_count": offeredCount,
			"threshold":     cfg.FraudMaxOfferedSkills,
			"new_skill":     name,
		})
	}

	if availability == "" {
		availability = "anytime"
	}

	skill := models.Skill{
		SkillName:    name,
		UserID:       ownerID,
		IsOffered:    isOffered,
		Availability: availability,
	}

	if err := database.DB.Create(&skill).Error; err != nil {
		return nil, err
	}

	InvalidateUserCache(ownerID)
	AnchorSkill(&skill)

	return &skill, nil
}

// allowed column names for partial skill updates
var skillUpdateColumns = map[string]bool{
	"skill_name":   true,
	"availability": true,
	"is_offered":   true,
}

// UpdateSkill applies a partial update; fields absent from updates are
// left unchanged.
func UpdateSkill(skillID uint, updates map[string]interface{}) (*models.Skill, error) {
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if skillUpdateColumns[k] {
			filtered[k] = v
		}
	}

	var skill models.Skill
	if err := database.DB.First(&skill, skillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	if len(filtered) > 0 {
		if err := database.DB.Model(&skill).Updates(filtered).Error; err != nil {
			return nil, err
		}
		InvalidateUserCache(skill.UserID)
	}

	database.DB.First(&skill, skillID)
	return &skill, nil
}

// RemoveSkill deletes a skill unconditionally.
func RemoveSkill(skillID uint) error {
	var skill models.Skill
	if err := database.DB.First(&skill, skillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return err
	}

	if err := database.DB.Delete(&skill).Error; err != nil {
		return err
	}

	InvalidateUserCache(skill.UserID)
	return nil
}

// FindSkillsByName searches skills of the given offer/request type.
// A non-empty name filters by case-sensitive substring match; an empty
// name returns all skills of that type.
func FindSkillsByName(name string, isOffered bool) ([]models.Skill, error) {
	query := database.DB.Where("is_offered = ?", isOffered)
	if name != "" {
		query = query.Where("skill_name LIKE ?", "%"+name+"%")
	}

	var skills []models.Skill
	if err := query.Order("id asc").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

package services

import (
	"coinnect-backend/internal/database"
)

// SkillMatch is one offering user for a requested skill name, carrying
// enough of the owner row to rank and display the result.
type SkillMatch struct {
	SkillID      uint    `json:"skill_id"`
	SkillName    string  `json:"skill_name"`
	Availability string  `json:"availability"`
	UserID       uint    `json:"user_id"`
	UserName     string  `json:"user_name"`
	TrustScore   float64 `json:"trust_score"`
}

// MatchSkill returns every offered skill with exactly the given name,
// joined to its owner, ranked by trust score descending. Ties break on
// user ID ascending so the ordering is deterministic. No offers is an
// empty result, not an error.
func MatchSkill(skillName string) ([]SkillMatch, error) {
	matches := []SkillMatch{}
	err := database.DB.Table("skills").
		Select("skills.id AS skill_id, skills.skill_name, skills.availability, users.id AS user_id, users.name AS user_name, users.trust_score").
		Joins("JOIN users ON users.id = skills.user_id").
		Where("skills.skill_name = ? AND skills.is_offered = ?", skillName, true).
		Order("users.trust_score DESC, users.id ASC").
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// matchSkillExcluding is MatchSkill minus one user, used by the
// recommender so a user never matches with themselves.
func matchSkillExcluding(skillName string, excludeUserID uint) ([]SkillMatch, error) {
	matches := []SkillMatch{}
	err := database.DB.Table("skills").
		Select("skills.id AS skill_id, skills.skill_name, skills.availability, users.id AS user_id, users.name AS user_name, users.trust_score").
		Joins("JOIN users ON users.id = skills.user_id").
		Where("skills.skill_name = ? AND skills.is_offered = ? AND users.id <> ?", skillName, true, excludeUserID).
		Order("users.trust_score DESC, users.id ASC").
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

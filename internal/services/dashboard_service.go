package services

import (
	"coinnect-backend/internal/database"
)

// PopularSkill is one entry of the homepage widget: an offered skill
// name and how many users currently offer it.
type PopularSkill struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// PopularSkills returns the most-offered skill names, busiest first,
// ties broken alphabetically.
func PopularSkills(limit int) ([]PopularSkill, error) {
	if limit <= 0 {
		limit = 10
	}

	popular := []PopularSkill{}
	err := database.DB.Table("skills").
		Select("skill_name AS name, COUNT(*) AS count").
		Where("is_offered = ?", true).
		Group("skill_name").
		Order("count DESC, skill_name ASC").
		Limit(limit).
		Scan(&popular).Error
	if err != nil {
		return nil, err
	}
	return popular, nil
}

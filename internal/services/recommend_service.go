package services

import (
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/models"
	"errors"

	"gorm.io/gorm"
)

const recommendationLimit = 5

// SkillSuggestion is a skill a matched user offers that the requesting
// user has not asked for yet.
type SkillSuggestion struct {
	SkillID      uint   `json:"skill_id"`
	SkillName    string `json:"skill_name"`
	Availability string `json:"availability"`
	UserID       uint   `json:"user_id"`
	UserName     string `json:"user_name"`
}

// Recommendations bundles the two derivation outputs: offering users
// for the user's open requests, and adjacent skills those users offer.
type Recommendations struct {
	UserMatches      []SkillMatch      `json:"user_matches"`
	SkillSuggestions []SkillSuggestion `json:"skill_suggestions"`
}

// Recommend runs the two-hop derivation for a user:
//  1. collect the user's requested skills, in insertion order;
//  2. per requested name, collect offering users (match ranking,
//     excluding the user); these accumulate without deduplication, so
//     a user offering two requested skills appears twice;
//  3. collect those users' other offered skills whose names the user
//     has not requested, deduplicated by name (first occurrence wins).
//
// Both lists are truncated to the first five entries in encounter
// order.
func Recommend(userID uint) (*Recommendations, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var requested []models.Skill
	if err := database.DB.
		Where("user_id = ? AND is_offered = ?", userID, false).
		Order("id asc").
		Find(&requested).Error; err != nil {
		return nil, err
	}

	requestedNames := make(map[string]bool, len(requested))
	for _, r := range requested {
		requestedNames[r.SkillName] = true
	}

	userMatches := []SkillMatch{}
	suggestions := []SkillSuggestion{}
	suggestedNames := make(map[string]bool)

	for _, r := range requested {
		matches, err := matchSkillExcluding(r.SkillName, userID)
		if err != nil {
			return nil, err
		}

		for _, m := range matches {
			userMatches = append(userMatches, m)

			var others []models.Skill
			if err := database.DB.
				Where("user_id = ? AND is_offered = ? AND skill_name <> ?", m.UserID, true, r.SkillName).
				Order("id asc").
				Find(&others).Error; err != nil {
				return nil, err
			}

			for _, o := range others {
				if requestedNames[o.SkillName] || suggestedNames[o.SkillName] {
					continue
				}
				suggestedNames[o.SkillName] = true
				suggestions = append(suggestions, SkillSuggestion{
					SkillID:      o.ID,
					SkillName:    o.SkillName,
					Availability: o.Availability,
					UserID:       o.UserID,
					UserName:     m.UserName,
				})
			}
		}
	}

	if len(userMatches) > recommendationLimit {
		userMatches = userMatches[:recommendationLimit]
	}
	if len(suggestions) > recommendationLimit {
		suggestions = suggestions[:recommendationLimit]
	}

	return &Recommendations{
		UserMatches:      userMatches,
		SkillSuggestions: suggestions,
	}, nil
}

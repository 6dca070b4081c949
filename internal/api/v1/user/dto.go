package user

import (
	"coinnect-backend/internal/models"
	"time"
)

type SkillEntry struct {
	Name         string `json:"name" binding:"required"`
	IsOffered    *bool  `json:"is_offered"`
	Availability string `json:"availability"`
}

type RegisterInput struct {
	Name   string       `json:"name" binding:"required"`
	Email  string       `json:"email" binding:"required,email"`
	Skills []SkillEntry `json:"skills"`
}

type SkillItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	IsOffered    bool    `json:"is_offered"`
	Availability string  `json:"availability"`
	IPFSHash     *string `json:"ipfs_hash,omitempty"`
}

type UserResponse struct {
	ID         uint        `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	TrustScore float64     `json:"trust_score"`
	Balance    float64     `json:"skillcoins_balance"`
	IPFSHash   *string     `json:"ipfs_profile_hash,omitempty"`
	Skills     []SkillItem `json:"skills"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type AnchorResponse struct {
	CID string `json:"cid"`
}

func toSkillItems(skills []models.Skill) []SkillItem {
	items := make([]SkillItem, 0, len(skills))
	for _, s := range skills {
		items = append(items, SkillItem{
			ID:           s.ID,
			Name:         s.SkillName,
			IsOffered:    s.IsOffered,
			Availability: s.Availability,
			IPFSHash:     s.IPFSHash,
		})
	}
	return items
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		CreatedAt:  u.CreatedAt,
		Name:       u.Name,
		Email:      u.Email,
		TrustScore: u.TrustScore,
		Balance:    u.Balance,
		IPFSHash:   u.IPFSHash,
		Skills:     toSkillItems(u.Skills),
	}
}

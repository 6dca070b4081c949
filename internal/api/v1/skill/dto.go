package skill

import (
	"coinnect-backend/internal/models"
	"time"
)

type AddSkillInput struct {
	UserID       uint   `json:"user_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	IsOffered    *bool  `json:"is_offered"`
	Availability string `json:"availability"`
}

type UpdateSkillInput struct {
	Name         *string `json:"name"`
	IsOffered    *bool   `json:"is_offered"`
	Availability *string `json:"availability"`
}

type SkillResponse struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       uint      `json:"user_id"`
	Name         string    `json:"name"`
	IsOffered    bool      `json:"is_offered"`
	Availability string    `json:"availability"`
	IPFSHash     *string   `json:"ipfs_hash,omitempty"`
}

type SkillListResponse struct {
	Skills []SkillResponse `json:"skills"`
	Total  int             `json:"total"`
}

func toSkillResponse(s *models.Skill) SkillResponse {
	return SkillResponse{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		UserID:       s.UserID,
		Name:         s.SkillName,
		IsOffered:    s.IsOffered,
		Availability: s.Availability,
		IPFSHash:     s.IPFSHash,
	}
}

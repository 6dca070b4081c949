package match

import (
	"coinnect-backend/internal/services"
	"coinnect-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MatchListResponse struct {
	Matches []services.SkillMatch `json:"matches"`
	Total   int                   `json:"total"`
}

// MatchSkill godoc
// @Summary Match a skill
// @Description List users offering the named skill, highest trust score first
// @Tags match
// @Produce json
// @Param skill query string true "Exact skill name"
// @Success 200 {object} utils.Response{data=match.MatchListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /match [get]
func MatchSkill(c *gin.Context) {
	name := c.Query("skill")
	if name == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing skill parameter"))
		return
	}

	matches, err := services.MatchSkill(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to match skill"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Matches retrieved successfully", MatchListResponse{
		Matches: matches,
		Total:   len(matches),
	}))
}

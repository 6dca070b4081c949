package dashboard

import (
	"coinnect-backend/internal/services"
	"coinnect-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PopularSkillsResponse struct {
	Skills []services.PopularSkill `json:"skills"`
}

// PopularSkills godoc
// @Summary Popular skills
// @Description List the most-offered skill names with offering-user counts
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {object} utils.Response{data=dashboard.PopularSkillsResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /dashboard/popular-skills [get]
func PopularSkills(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	skills, err := services.PopularSkills(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch popular skills"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Popular skills retrieved successfully", PopularSkillsResponse{Skills: skills}))
}

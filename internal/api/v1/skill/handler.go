package skill

import (
	"coinnect-backend/internal/services"
	"coinnect-backend/internal/utils"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AddSkill godoc
// @Summary Add a skill
// @Description Add an offered or requested skill to an existing user
// @Tags skill
// @Accept  json
// @Produce  json
// @Param   input     body   AddSkillInput  true  "Skill Input"
// @Success 201 {object} utils.Response{data=skill.SkillResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /skills [post]
func AddSkill(c *gin.Context) {
	var input AddSkillInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	offered := true
	if input.IsOffered != nil {
		offered = *input.IsOffered
	}

	s, err := services.AddSkill(input.UserID, input.Name, offered, input.Availability)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to add skill"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Skill added successfully", toSkillResponse(s)))
}

// UpdateSkill godoc
// @Summary Update a skill
// @Description Partially update a skill; omitted fields are left unchanged
// @Tags skill
// @Accept  json
// @Produce  json
// @Param id path int true "Skill ID"
// @Param   input     body   UpdateSkillInput  true  "Update Input"
// @Success 200 {object} utils.Response{data=skill.SkillResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /skills/{id} [patch]
func UpdateSkill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid skill ID"))
		return
	}

	var input UpdateSkillInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["skill_name"] = *input.Name
	}
	if input.IsOffered != nil {
		updates["is_offered"] = *input.IsOffered
	}
	if input.Availability != nil {
		updates["availability"] = *input.Availability
	}

	s, err := services.UpdateSkill(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update skill"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Skill updated successfully", toSkillResponse(s)))
}

// DeleteSkill godoc
// @Summary Delete a skill
// @Tags skill
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /skills/{id} [delete]
func DeleteSkill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid skill ID"))
		return
	}

	if err := services.RemoveSkill(uint(id)); err != nil {
		if errors.Is(err, services.ErrSkillNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete skill"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Skill deleted successfully", nil))
}

// SearchSkills godoc
// @Summary Search skills
// @Description Search skills by name substring, filtered to offered or requested
// @Tags skill
// @Produce json
// @Param name query string false "Name substring"
// @Param offered query bool false "Offered (true) or requested (false)" default(true)
// @Success 200 {object} utils.Response{data=skill.SkillListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /skills [get]
func SearchSkills(c *gin.Context) {
	offered, err := strconv.ParseBool(c.DefaultQuery("offered", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid offered flag"))
		return
	}

	skills, err := services.FindSkillsByName(c.Query("name"), offered)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to search skills"))
		return
	}

	items := make([]SkillResponse, 0, len(skills))
	for i := range skills {
		items = append(items, toSkillResponse(&skills[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Skills retrieved successfully", SkillListResponse{
		Skills: items,
		Total:  len(items),
	}))
}

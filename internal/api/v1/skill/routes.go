package skill

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/skills", AddSkill)
	router.GET("/skills", SearchSkills)
	router.PATCH("/skills/:id", UpdateSkill)
	router.DELETE("/skills/:id", DeleteSkill)
}

package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users", Register)
	router.GET("/users", ListUsers)
	router.GET("/users/:id", GetUser)
	router.DELETE("/users/:id", DeleteUser)
	router.POST("/users/:id/anchor", AnchorUser)
	router.GET("/users/:id/recommendations", GetRecommendations)
}

package transaction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/transactions", CreateTransaction)
	router.GET("/transactions/:id", GetTransaction)
	router.POST("/transactions/:id/rate", RateTransaction)
	router.POST("/transactions/:id/anchor", AnchorTransaction)
}

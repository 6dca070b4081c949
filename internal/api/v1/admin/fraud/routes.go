package fraud

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/fraud/scan", ScanForFraud)
	router.GET("/audit-events", ListAuditEvents)
}

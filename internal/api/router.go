package api

import (
	"coinnect-backend/config"
	_ "coinnect-backend/docs"
	adminFraud "coinnect-backend/internal/api/v1/admin/fraud"
	adminTransaction "coinnect-backend/internal/api/v1/admin/transaction"
	"coinnect-backend/internal/api/v1/dashboard"
	matchRoutes "coinnect-backend/internal/api/v1/match"
	skillRoutes "coinnect-backend/internal/api/v1/skill"
	transactionRoutes "coinnect-backend/internal/api/v1/transaction"
	userRoutes "coinnect-backend/internal/api/v1/user"
	"coinnect-backend/internal/database"
	"coinnect-backend/internal/ipfs"
	"coinnect-backend/internal/middleware"
	"coinnect-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	// Anchoring stays disabled unless Filebase credentials are set
	if cfg.FilebaseAccessKey != "" || cfg.FilebaseSecretKey != "" {
		services.AnchorClient = ipfs.NewClient(cfg)
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		userRoutes.RegisterRoutes(v1)
		skillRoutes.RegisterRoutes(v1)
		matchRoutes.RegisterRoutes(v1)
		transactionRoutes.RegisterRoutes(v1)
		dashboard.RegisterRoutes(v1)

		// Admin routes: a plain grouping, there is no authentication layer
		admin := v1.Group("/admin")
		{
			adminFraud.RegisterRoutes(admin)
			adminTransaction.RegisterRoutes(admin)
		}
	}

	return router, nil
}

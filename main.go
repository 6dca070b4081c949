package main

import (
	"coinnect-backend/config"
	"coinnect-backend/internal/api"
	"coinnect-backend/internal/database"
	"coinnect-backend/pkg/logger"
	"log"
)

// @title coinnect-backend API
// @version 1.0
// @description Skill bartering marketplace backend: users trade skills for SkillCoins, with trust scores and IPFS anchoring.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

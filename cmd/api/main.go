package main

import (
	"grace-media/internal/app"
	"grace-media/pkg/cache"
	"grace-media/pkg/config"
	"grace-media/pkg/database"
	"grace-media/pkg/logger"
	"grace-media/pkg/queue"
	"grace-media/pkg/storage"
)

// @title           Grace Media Admin API
// @version         1.0
// @description     Content management service for the Grace Media ministry dashboard

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	store, err := storage.NewClient(cfg, log)
	if err != nil {
		log.Error("Failed to create storage client: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// The cache degrades to a pass-through; the service still runs.
		log.Warn("Redis unavailable, list caching disabled: %v", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, content events disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, store, queueClient, redisClient)
}

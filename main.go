package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"pesisir-api/config"
	"pesisir-api/database"
	"pesisir-api/jobs"
	"pesisir-api/routes"
	"pesisir-api/services"
	"pesisir-api/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed admin user and default donation methods
	if err := database.SeedData(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// File storage
	var disk storage.Disk
	if cfg.StorageDriver == "minio" {
		disk, err = storage.NewMinioDisk(storage.MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			BaseURL:   cfg.MinioBaseURL,
		})
		if err != nil {
			log.Fatal("Failed to initialize minio storage:", err)
		}
	} else {
		disk = storage.NewLocalDisk(cfg.PublicDir)
	}

	// Email service
	emailService := services.NewEmailService(cfg)

	// Set Gin mode
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Serve uploaded files when storing locally
	if cfg.StorageDriver != "minio" {
		router.Static("/storage", cfg.PublicDir)
	}

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService, disk)

	// Retry deletion of files left behind by failed cleanups
	cleanupJob := jobs.NewOrphanCleanupJob(db, disk, time.Hour)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	// Start server
	log.Printf("Starting Pesisir API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package main

import (
	"os"

	"rewards-recognition-backend/internal/api/routes"
	"rewards-recognition-backend/internal/config"
	"rewards-recognition-backend/internal/database"

	_ "rewards-recognition-backend/docs" // This is needed for swag

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Rewards and Recognition API
// @version 1.0
// @description Backend service for employee reward nominations, two-stage approvals and dashboards.

// @host localhost:7010
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logging
	setupLogging(cfg.LogLevel)

	logrus.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"port":        cfg.Port,
	}).Info("Starting rewards and recognition backend")

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Seed lookup data in development so a fresh database is usable right away
	if cfg.IsDevelopment() {
		if err := database.Seed(db); err != nil {
			logrus.WithError(err).Warn("Database seeding failed")
		}
	}

	// Set gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup routes
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// setupLogging configures logrus based on the provided log level
func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

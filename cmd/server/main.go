package main

import (
	"charity_system/internal/api"        // Custom package for API handlers
	"charity_system/internal/auth"       // Authentication and tokens
	"charity_system/internal/cases"      // Cases and categories
	"charity_system/internal/config"     // Custom package for configuration
	"charity_system/internal/db"         // Database connection
	"charity_system/internal/ledger"     // Donation ledger
	"charity_system/internal/middleware" // CORS
	"charity_system/internal/repository" // GORM stores
	"charity_system/internal/utils"      // Cache
	"context"                            // context package is needed for Redis operations
	"net/http"                           // HTTP server

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database
	gormDB, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if cfg.DBDriver == config.DriverSQLite {
		// The embedded database is migrated in place
		if err := db.Migrate(gormDB); err != nil {
			logrus.Fatalf("migration failed: %v", err)
		}
	}

	// Setup Redis cache when configured
	var cache utils.Cache = utils.NopCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = utils.NewRedisCache(redisClient)
	}

	// Stores
	users := repository.NewUserRepository(gormDB)
	caseStore := repository.NewCaseRepository(gormDB)
	categoryStore := repository.NewCategoryRepository(gormDB)
	donations := repository.NewDonationRepository(gormDB)

	// Core services
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, nil)
	if err != nil {
		logrus.Fatalf("failed to create token service: %v", err)
	}
	authService, err := auth.NewService(users, caseStore, donations, auth.PasswordHasher{Cost: cfg.BcryptCost}, tokens)
	if err != nil {
		logrus.Fatalf("failed to create auth service: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewRouter(api.Services{
		Auth:       authService,
		Tokens:     tokens,
		Ledger:     ledger.New(donations, caseStore, users),
		Cases:      cases.NewService(caseStore, users, categoryStore),
		Categories: cases.NewCategories(categoryStore, cache),
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,                   // Listen on cfg.AppPort
		Handler: middleware.CORS(cfg.CORSOrigins)(r), // Preflights answered before routing
	}
	logrus.WithField("cors_origins", cfg.CORSOrigins).Info("Server running on " + cfg.AppPort) // Log server start
	if err := srv.ListenAndServe(); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

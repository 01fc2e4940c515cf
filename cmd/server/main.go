package main

import (
	"context" // context package is needed for Redis operations

	"github.com/daryan97/bobatea/internal/api"     // API handlers and router
	"github.com/daryan97/bobatea/internal/config"  // Configuration
	"github.com/daryan97/bobatea/internal/db"      // Database open and migration
	"github.com/daryan97/bobatea/internal/session" // Session cookie manager
	"github.com/daryan97/bobatea/internal/store"   // Credential store
	"github.com/daryan97/bobatea/internal/summary" // Last-order summary store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the sqlite database and make sure the users table exists
	gormDB, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to open DB at %s: %v", cfg.DBPath, err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Summary store: Redis when configured, in-process otherwise
	var summaries summary.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		summaries = summary.NewRedis(redisClient)
	} else {
		logrus.Info("REDIS_ADDR not set, keeping order summaries in memory")
		summaries = summary.NewMemory()
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewManager(cfg.SessionSecret, cfg.IsProd)
	users := store.New(gormDB)

	r := api.NewRouter(users, sessions, summaries, "web/templates/*.html")

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Infof("Server running on %s", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

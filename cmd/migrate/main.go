package main

import (
	"github.com/daryan97/bobatea/internal/config" // Configuration
	"github.com/daryan97/bobatea/internal/db"     // Database open and migration

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Creates the users table if missing. Running it repeatedly is safe.
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gormDB, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to open DB at %s: %v", cfg.DBPath, err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}

package db

import (
	"github.com/daryan97/bobatea/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the single-file sqlite database at path, creating the
// file on first use. TranslateError maps driver errors (notably UNIQUE
// constraint violations) onto gorm's portable error values.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
}

// Migrate creates the users table if it does not already exist. It is safe
// to call on every startup: AutoMigrate never drops tables or rows.
func Migrate(db *gorm.DB) error {
	existed := db.Migrator().HasTable(&domain.User{})
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return err
	}
	if existed {
		logrus.Info("users table already present, skipping create")
	} else {
		logrus.Info("users table created")
	}
	return nil
}

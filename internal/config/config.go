package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBPath        string // Path to the sqlite database file
	SessionSecret string // Secret used to sign session cookies
	RedisAddr     string // Redis server address (optional)
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables. Every value
// has a development default so the server starts with no environment at all.
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:       getenv("APP_PORT", "8080"),
		DBPath:        getenv("DB_PATH", "users.db"),
		SessionSecret: getenv("SESSION_SECRET", "your_secret_key"),
		RedisAddr:     os.Getenv("REDIS_ADDR"), // Empty means no Redis
		RedisPass:     os.Getenv("REDIS_PASS"),
		RedisDB:       redisDB,
		IsProd:        os.Getenv("IS_PROD") == "true",
	}
}

// getenv returns the environment value or a fallback when unset
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

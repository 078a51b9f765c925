package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ServerConfig holds all server process configuration.
// Values are read once at startup and are read-only afterwards.
type ServerConfig struct {
	RunAddress    string        // address:port the HTTP server listens on
	StorageDriver string        // "sqlite" or "memory"
	DatabasePath  string        // sqlite database file path
	JWTSecret     string        // symmetric signing key, required
	CORSOrigin    string        // the single origin allowed to call the API
	LogLevel      string        // debug, info, warn, error
	TokenTTL      time.Duration // access token lifetime
}

// ClientConfig holds CLI client configuration.
type ClientConfig struct {
	ServerAddress string // base URL of the notes server
	SessionPath   string // bbolt file holding the current session
}

// LoadServer reads server configuration from the environment.
// A .env file in the working directory is honored when present.
func LoadServer() (*ServerConfig, error) {
	// Missing .env is fine, real environments set variables directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("RUN_ADDRESS", ":8080")
	v.SetDefault("STORAGE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_PATH", "notes.db")
	v.SetDefault("TOKEN_TTL", "30m")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &ServerConfig{
		RunAddress:    v.GetString("RUN_ADDRESS"),
		StorageDriver: v.GetString("STORAGE_DRIVER"),
		DatabasePath:  v.GetString("DATABASE_PATH"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		CORSOrigin:    v.GetString("CORS_ORIGIN"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		TokenTTL:      v.GetDuration("TOKEN_TTL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	if cfg.StorageDriver != DriverSQLite && cfg.StorageDriver != DriverMemory {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}

	return cfg, nil
}

// LoadClient reads client configuration from the environment.
func LoadClient() *ClientConfig {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDRESS", "http://localhost:8080")
	v.SetDefault("SESSION_PATH", ".notesvc-session.db")

	return &ClientConfig{
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		SessionPath:   v.GetString("SESSION_PATH"),
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

// StoreConfig selects the persistence backend.
// Driver is one of "file", "postgres" or "sqlite".
type StoreConfig struct {
	Driver         string
	DataFile       string
	SQLiteFile     string
	DatabaseURL    string
	ResetOnCorrupt bool
}

// RateLimitConfig controls per-client request limits. PerMinute <= 0 disables limiting.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type LogConfig struct {
	Level  string
	Format string
}

var AppConfig *Config

// Load reads configuration from the environment. Call godotenv.Load first
// if values should come from a .env file.
func Load() *Config {
	AppConfig = &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(getEnv("STORE_DRIVER", "file")),
			DataFile:       getEnv("DATA_FILE", "data/db.json"),
			SQLiteFile:     getEnv("SQLITE_FILE", "data/db.sqlite"),
			DatabaseURL:    getEnv("DB_URL", ""),
			ResetOnCorrupt: getEnvAsBool("STORE_RESET_ON_CORRUPT", false),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
			Burst:     getEnvAsInt("RATE_LIMIT_BURST", 40),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Sanity   SanityConfig
	Redis    RedisConfig
	Database DatabaseConfig
	App      AppConfig
	Booking  BookingConfig
	Sitemap  SitemapConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// SanityConfig mirrors the content store client options.
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	ReadToken  string
	WriteToken string
	APIHost    string
	ImageHost  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DatabaseConfig is optional; an empty DSN disables the submission ledger.
type DatabaseConfig struct {
	DSN      string
	MaxConns int
	MinConns int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogFile     string
	Version     string
	BaseURL     string
}

type BookingConfig struct {
	RatePerMinute int
}

type SitemapConfig struct {
	Schedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Sanity: SanityConfig{
			ProjectID:  getEnv("SANITY_PROJECT_ID", ""),
			Dataset:    getEnv("SANITY_DATASET", "production"),
			APIVersion: getEnv("SANITY_API_VERSION", "2024-01-01"),
			UseCDN:     getEnvAsBool("SANITY_USE_CDN", false),
			ReadToken:  getEnv("SANITY_READ_TOKEN", ""),
			WriteToken: getEnv("SANITY_WRITE_TOKEN", ""),
			APIHost:    getEnv("SANITY_API_HOST", ""),
			ImageHost:  getEnv("SANITY_IMAGE_HOST", "https://cdn.sanity.io"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DB_DSN", ""),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFile:     getEnv("LOG_FILE", ""),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			BaseURL:     getEnv("SITE_BASE_URL", "https://branfern.com"),
		},
		Booking: BookingConfig{
			RatePerMinute: getEnvAsInt("BOOKING_RATE_PER_MIN", 5),
		},
		Sitemap: SitemapConfig{
			Schedule: getEnv("SITEMAP_SCHEDULE", "0 */30 * * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Sanity.ProjectID == "" {
		return fmt.Errorf("SANITY_PROJECT_ID is required")
	}

	if c.Sanity.Dataset == "" {
		return fmt.Errorf("SANITY_DATASET is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.Booking.RatePerMinute <= 0 {
		return fmt.Errorf("BOOKING_RATE_PER_MIN must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

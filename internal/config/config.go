package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Org      OrgConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration. The access-token secret is shared with
// the identity provider that mints the tokens this backend verifies.
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// OrgConfig holds organization-wide attendance policy. All calendar dates in
// the system (attendance dates, pay-period boundaries) are evaluated in the
// organization timezone, not the server's local zone.
type OrgConfig struct {
	Timezone            string
	Location            *time.Location
	DailyTargetHours    float64
	BiweeklyTargetHours float64
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Organization configuration
	tz := getEnv("TIMEZONE", "America/Phoenix")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}

	dailyTarget, err := strconv.ParseFloat(getEnv("DAILY_TARGET_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_TARGET_HOURS: %w", err)
	}
	biweeklyTarget, err := strconv.ParseFloat(getEnv("BIWEEKLY_TARGET_HOURS", "80"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BIWEEKLY_TARGET_HOURS: %w", err)
	}

	config.Org = OrgConfig{
		Timezone:            tz,
		Location:            loc,
		DailyTargetHours:    dailyTarget,
		BiweeklyTargetHours: biweeklyTarget,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Org.DailyTargetHours <= 0 {
		return fmt.Errorf("DAILY_TARGET_HOURS must be positive")
	}
	if c.Org.BiweeklyTargetHours <= 0 {
		return fmt.Errorf("BIWEEKLY_TARGET_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
	Cron     CronConfig
	Seed     SeedConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
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
	Timezone    string
}

// PayrollConfig holds the constants the rate deriver and shift calculator work from.
type PayrollConfig struct {
	DaysInMonth float64
	BaseHours   float64
}

type CronConfig struct {
	DueAdvanceInterval time.Duration
	TokenPurgeInterval time.Duration
}

// SeedConfig is the bootstrap admin account created when no admin exists yet.
type SeedConfig struct {
	AdminCode     string
	AdminPassword string
}

// StorageConfig is where uploaded photos live and the URL prefix they are served under.
type StorageConfig struct {
	BasePath      string
	BaseURL       string
	MaxPhotoBytes int64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using process environment", "error", err)
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
		Name:     getEnv("DB_NAME", "fastep_work"),
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
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Riyadh"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Payroll configuration
	daysInMonth, err := strconv.ParseFloat(getEnv("PAYROLL_DAYS_IN_MONTH", "30"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DAYS_IN_MONTH: %w", err)
	}
	baseHours, err := strconv.ParseFloat(getEnv("PAYROLL_BASE_HOURS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_BASE_HOURS: %w", err)
	}
	config.Payroll = PayrollConfig{
		DaysInMonth: daysInMonth,
		BaseHours:   baseHours,
	}

	// Cron configuration
	dueAdvanceInterval, err := time.ParseDuration(getEnv("CRON_DUE_ADVANCE_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_DUE_ADVANCE_INTERVAL: %w", err)
	}
	tokenPurgeInterval, err := time.ParseDuration(getEnv("CRON_TOKEN_PURGE_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_TOKEN_PURGE_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{
		DueAdvanceInterval: dueAdvanceInterval,
		TokenPurgeInterval: tokenPurgeInterval,
	}

	config.Seed = SeedConfig{
		AdminCode:     getEnv("ADMIN_SEED_CODE", ""),
		AdminPassword: getEnv("ADMIN_SEED_PASSWORD", ""),
	}

	maxPhotoBytes, err := strconv.ParseInt(getEnv("STORAGE_MAX_PHOTO_BYTES", "5242880"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STORAGE_MAX_PHOTO_BYTES: %w", err)
	}
	config.Storage = StorageConfig{
		BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:       getEnv("STORAGE_BASE_URL", fmt.Sprintf("http://localhost:%d/uploads", appPort)),
		MaxPhotoBytes: maxPhotoBytes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Payroll.DaysInMonth <= 0 {
		return fmt.Errorf("PAYROLL_DAYS_IN_MONTH must be positive")
	}
	if c.Payroll.BaseHours <= 0 {
		return fmt.Errorf("PAYROLL_BASE_HOURS must be positive")
	}
	if c.Cron.DueAdvanceInterval <= 0 {
		return fmt.Errorf("CRON_DUE_ADVANCE_INTERVAL must be positive")
	}
	if c.Cron.TokenPurgeInterval <= 0 {
		return fmt.Errorf("CRON_TOKEN_PURGE_INTERVAL must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.Storage.MaxPhotoBytes <= 0 {
		return fmt.Errorf("STORAGE_MAX_PHOTO_BYTES must be positive")
	}
	if (c.Seed.AdminCode == "") != (c.Seed.AdminPassword == "") {
		return fmt.Errorf("ADMIN_SEED_CODE and ADMIN_SEED_PASSWORD must be set together")
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

// Location returns the business time zone used to decide what "today" is.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

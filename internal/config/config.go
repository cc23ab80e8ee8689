package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

type Config struct {
	// Storage
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	MongoURI      string
	MongoDatabase string

	// Auth
	JWTSecret       string
	JWTAccessExpiry time.Duration
	BcryptCost      int

	// Feeding
	LowStockThresholdDays int
	BuyLinkSearchURL      string

	// Logging
	LogLevel           string
	LogRetention       time.Duration
	LogCleanupSchedule string
	SentryDSN          string
	AppEnv             string

	// Server
	Port                string
	CORSOrigins         string
	RateLimitPerMin     int
	AuthRateLimitPerMin int
}

// Load reads configuration from the environment. Values in a .env file in the
// working directory are loaded first but never override real variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", err)
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "petfeed_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "petfeed.db"),

		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "petfeed"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "1h"), time.Hour),
		BcryptCost:      parseInt(getEnv("BCRYPT_COST", "10"), 10),

		LowStockThresholdDays: parseInt(getEnv("LOW_STOCK_THRESHOLD_DAYS", "3"), 3),
		BuyLinkSearchURL:      getEnv("BUY_LINK_SEARCH_URL", "https://www.amazon.co.uk/s?k="),

		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogRetention:       parseDuration(getEnv("LOG_RETENTION", "720h"), 30*24*time.Hour),
		LogCleanupSchedule: getEnv("LOG_CLEANUP_SCHEDULE", "@daily"),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
		AppEnv:             getEnv("APP_ENV", "development"),

		Port:                getEnv("PORT", "8080"),
		CORSOrigins:         getEnv("CORS_ORIGINS", "http://localhost:5173"),
		RateLimitPerMin:     parseInt(getEnv("RATE_LIMIT_PER_MIN", "60"), 60),
		AuthRateLimitPerMin: parseInt(getEnv("AUTH_RATE_LIMIT_PER_MIN", "10"), 10),
	}
}

// Validate reports the first setting that would keep the server from running.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBPassword == "" {
			return errors.New("DB_PASSWORD environment variable is required")
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI environment variable is required")
		}
	case DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.LowStockThresholdDays < 0 {
		return errors.New("LOW_STOCK_THRESHOLD_DAYS must not be negative")
	}
	if c.JWTAccessExpiry <= 0 {
		return errors.New("JWT_ACCESS_EXPIRY must be positive")
	}
	return nil
}

// IsSQL reports whether the configured store is backed by GORM.
func (c *Config) IsSQL() bool {
	return c.DBDriver == DriverPostgres || c.DBDriver == DriverSQLite
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

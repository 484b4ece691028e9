package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vladimiradmaev/dietlog/internal/logger"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

const defaultJWTSecret = "dietlog-secret-key-change-in-prod"

type Config struct {
	HTTP     HTTPConfig
	Store    StoreConfig
	DB       DBConfig
	SQLite   SQLiteConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Telegram TelegramConfig
	Logger   LoggerConfig
}

type HTTPConfig struct {
	Addr        string
	CORSOrigins []string
}

type StoreConfig struct {
	Driver string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type SQLiteConfig struct {
	Path string
}

type MongoConfig struct {
	URI                    string
	Database               string
	ServerSelectionTimeout time.Duration
}

// RedisConfig is optional; an empty Host disables Redis-backed locking.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool { return c.Host != "" }

func (c RedisConfig) Addr() string { return c.Host + ":" + c.Port }

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// TelegramConfig is optional; an empty Token disables the bot.
type TelegramConfig struct {
	Token string
}

func (c TelegramConfig) Enabled() bool { return c.Token != "" }

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// ParseCORSOrigins accepts "*", a comma separated list, or a bracketed list of
// optionally quoted origins. Blank input allows every origin.
func ParseCORSOrigins(raw string) []string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" || cleaned == "*" {
		return []string{"*"}
	}

	cleaned = strings.Trim(cleaned, "[]")
	var origins []string
	for _, origin := range strings.Split(cleaned, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		origin = strings.Trim(origin, `"'`)
		origin = strings.TrimRight(origin, "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func Load() (*Config, error) {
	var errs []error

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		errs = append(errs, fmt.Errorf("REDIS_DB: %w", err))
	}
	selectionMS, err := strconv.Atoi(getEnvOrDefault("MONGO_SERVER_SELECTION_TIMEOUT_MS", "30000"))
	if err != nil {
		errs = append(errs, fmt.Errorf("MONGO_SERVER_SELECTION_TIMEOUT_MS: %w", err))
	}
	tokenTTL, err := time.ParseDuration(getEnvOrDefault("JWT_TTL", "720h"))
	if err != nil {
		errs = append(errs, fmt.Errorf("JWT_TTL: %w", err))
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:        getEnvOrDefault("HTTP_ADDR", ":8001"),
			CORSOrigins: ParseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverPostgres)),
		},
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "dietlog"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		SQLite: SQLiteConfig{
			Path: getEnvOrDefault("SQLITE_PATH", "data/dietlog.db"),
		},
		Mongo: MongoConfig{
			URI:                    getEnvOrDefault("MONGO_URL", "mongodb://localhost:27017"),
			Database:               getEnvOrDefault("MONGO_DB_NAME", "dietlog"),
			ServerSelectionTimeout: time.Duration(selectionMS) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrDefault("JWT_SECRET", defaultJWTSecret),
			TokenTTL:  tokenTTL,
		},
		Telegram: TelegramConfig{
			Token: os.Getenv("TELEGRAM_BOT_TOKEN"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case DriverPostgres:
		if c.DB.Host == "" || c.DB.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres driver"))
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			errs = append(errs, errors.New("MONGO_URL and MONGO_DB_NAME are required for the mongo driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// UsesDefaultSecret reports whether the development JWT secret is in use.
func (c *Config) UsesDefaultSecret() bool {
	return c.Auth.JWTSecret == defaultJWTSecret
}

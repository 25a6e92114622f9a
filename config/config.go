package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is only acceptable in development; Validate rejects it
// everywhere else.
const DefaultJWTSecret = "your-secret-key-change-this-in-prod"

var ErrDefaultJWTSecret = errors.New("JWT_SECRET_KEY must be set outside development")

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Database DatabaseConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type DatabaseConfig struct {
	Driver      string // postgres or sqlite
	AutoMigrate bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type SQLiteConfig struct {
	Path string
}

type JWTConfig struct {
	SecretKey    string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "dev"),
			HTTPPort:        getEnv("HTTP_PORT", ":8080"),
			AllowedOrigins:  getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", "postgres"),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5432"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_catalog"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "catalog.db"),
		},
		JWT: JWTConfig{
			SecretKey:    getEnv("JWT_SECRET_KEY", DefaultJWTSecret),
			TTL:          time.Duration(getEnvInt("JWT_TTL_MINUTES", 60)) * time.Minute,
			CookieName:   getEnv("JWT_COOKIE_NAME", "catalog_token"),
			CookieSecure: getEnvBool("JWT_COOKIE_SECURE", false),
		},
	}
}

// IsDevelopment reports whether the service runs with developer defaults
// (console logs, gin debug mode).
func (c *Config) IsDevelopment() bool {
	switch c.Server.AppEnv {
	case "dev", "development", "local":
		return true
	}
	return false
}

// Validate refuses settings that are unsafe outside development.
func (c *Config) Validate() error {
	if !c.IsDevelopment() && c.JWT.SecretKey == DefaultJWTSecret {
		return ErrDefaultJWTSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}

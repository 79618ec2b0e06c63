package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort      string
	ServerHost      string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	// Database configuration
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	SQLitePath        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// Redis configuration, only used for rate limiting
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Write rate limiting
	RateLimitEnabled bool
	RateLimitWindow  time.Duration
	RateLimitLimit   int

	// Logging
	LogLevel  string
	LogFormat string

	Version string
}

// LoadConfig creates a new Config instance from the environment, a .env file
// in the working directory and Docker secrets for sensitive values.
func LoadConfig() (*Config, error) {
	// a missing .env file is normal outside local development
	_ = godotenv.Load()

	env := GetEnvironment()
	cfg := &Config{
		Environment:     env,
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ServerHost:      getEnv("SERVER_HOST", "0.0.0.0"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigins:     getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),

		DBDriver:          getEnv("DB_DRIVER", defaultDriver(env)),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnvOrSecret("DB_USER", "db_user", "postgres"),
		DBPassword:        getEnvOrSecret("DB_PASSWORD", "db_password", ""),
		DBName:            getEnv("DB_NAME", "recipes"),
		DBSSLMode:         getEnv("DB_SSL_MODE", "disable"),
		SQLitePath:        getEnv("SQLITE_PATH", "recipes.db"),
		DBMaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		RedisURL:      getEnvOrSecret("REDIS_URL", "redis_url", ""),
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrSecret("REDIS_PASSWORD", "redis_password", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		RateLimitEnabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
		RateLimitWindow:  getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitLimit:   getEnvAsInt("RATE_LIMIT_LIMIT", 60),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", defaultLogFormat(env)),

		Version: getEnv("APP_VERSION", "1.0.0"),
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// DatabaseURL is the URL form of DSN, as expected by lib/pq and migration tooling.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// RedisEnabled reports whether a Redis server has been configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

func defaultDriver(env Environment) string {
	if env == Test {
		return "sqlite"
	}
	return "postgres"
}

func defaultLogFormat(env Environment) string {
	if env == Production {
		return "json"
	}
	return "text"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrSecret prefers the environment variable, then the Docker secret.
func getEnvOrSecret(key, secret, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := readSecret(secret); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

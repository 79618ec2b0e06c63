package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks every setting and reports all problems at once.
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{"SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "is required for postgres"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "is required for postgres"})
		}
		if cfg.DBUser == "" {
			errs = append(errs, ValidationError{"DB_USER", "is required for postgres"})
		}
		if cfg.Environment == Production && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"DB_PASSWORD", "db_password secret is required in production"})
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{"SQLITE_PATH", "is required for sqlite"})
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.DBMaxOpenConns < 1 {
		errs = append(errs, ValidationError{"DB_MAX_OPEN_CONNS", "must be at least 1"})
	}

	if cfg.RateLimitEnabled && cfg.RedisEnabled() {
		if cfg.RateLimitLimit < 1 {
			errs = append(errs, ValidationError{"RATE_LIMIT_LIMIT", "must be at least 1"})
		}
		if cfg.RateLimitWindow <= 0 {
			errs = append(errs, ValidationError{"RATE_LIMIT_WINDOW", "must be positive"})
		}
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, ValidationError{"LOG_LEVEL", err.Error()})
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		errs = append(errs, ValidationError{"LOG_FORMAT", `must be "json" or "text"`})
	}

	if len(errs) == 0 {
		return nil
	}

	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return errors.New(strings.Join(lines, "\n"))
}

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	var errs []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{"SERVER_PORT", "must be a number between 1 and 65535"}.Error())
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			errs = append(errs, ValidationError{"DB_PATH", "is required for sqlite"}.Error())
		}
	case DriverPostgres:
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				errs = append(errs, ValidationError{field, "is required for postgres"}.Error())
			}
		}
		// Outside development the password must come from env or secrets
		if GetEnvironment() != Development && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"DB_PASSWORD", "is required outside development"}.Error())
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		errs = append(errs, ValidationError{"CORS_ALLOWED_ORIGINS", "must list at least one origin"}.Error())
	}

	if len(errs) > 0 {
		// map iteration above is unordered
		sort.Strings(errs)
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}

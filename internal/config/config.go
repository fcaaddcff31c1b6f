// Package config loads the service configuration from defaults, an optional
// config file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	appvalidator "investadmin/internal/validator"
)

// Config holds application configuration. It is built once at startup and
// handed to each component explicitly.
type Config struct {
	// Server
	Env             string        `mapstructure:"env" validate:"required"`
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	LogLevel        string        `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Upstream services
	InvestmentsServiceURL        string        `mapstructure:"investments_service_url" validate:"required,url"`
	FinancialCompaniesServiceURL string        `mapstructure:"financial_companies_service_url" validate:"required,url"`
	RequestTimeout               time.Duration `mapstructure:"request_timeout" validate:"gt=0"`

	// Report
	ReportPath     string `mapstructure:"report_path" validate:"required"`
	ReportSchedule string `mapstructure:"report_schedule" validate:"omitempty,cron_spec"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration with priority defaults -> config file -> env.
// A .env file in the working directory is loaded into the environment first
// if present. CONFIG_FILE names an optional yaml, json or toml file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile is Load without the .env step, reading path when it is non-empty.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("log_level", "")
	v.SetDefault("investments_service_url", "http://localhost:8081")
	v.SetDefault("financial_companies_service_url", "http://localhost:8082")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("report_path", "report.csv")
	v.SetDefault("report_schedule", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = appvalidator.New()

// Validate checks cfg and reports every invalid field in one error.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

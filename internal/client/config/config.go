package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the gophauth CLI.
type Config struct {
	ServerBaseURL  string        `validate:"required,url,startswith=http"`
	DatabasePath   string        `validate:"required_unless=Ephemeral true"`
	RequestTimeout time.Duration `validate:"gte=0"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	LogBackend     string        `validate:"oneof=slog zap"`
	Ephemeral      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api/auth"
	c.DatabasePath = "gophauth.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.Ephemeral = false
}

var validate = validator.New()

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// LoadConfig builds a Config by applying defaults, then the JSON file named
// by the --config flag (if any), then explicitly set flags, and validates it.
func LoadConfig(f *Flags) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if f.ConfigPath != "" {
		if err := parseJSON(cfg, f.ConfigPath); err != nil {
			return nil, err
		}
	}
	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

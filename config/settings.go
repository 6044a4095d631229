package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/apikit/logger"
	"github.com/kbukum/apikit/version"
)

const defaultTimeout = 30 * time.Second

// Settings configures a generated API client.
type Settings struct {
	// BaseURL is the server the generated client talks to.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout is the per-request timeout applied by the caller's transport.
	// Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent with every request. Defaults to a version-derived
	// product token.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// DefaultHeaders are applied to all requests.
	DefaultHeaders map[string]string `yaml:"default_headers" mapstructure:"default_headers"`

	// Logging configures the client logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// Tracing configures OTLP trace export for the transport decorators.
	Tracing TracingSettings `yaml:"tracing" mapstructure:"tracing"`
}

// TracingSettings configures trace export.
type TracingSettings struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (s *Settings) ApplyDefaults() {
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
	if s.UserAgent == "" {
		s.UserAgent = version.UserAgent("")
	}
	s.Logging.ApplyDefaults()
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

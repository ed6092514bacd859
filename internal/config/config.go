package config

import (
	"strings"
	"time"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the todo application
type Config struct {
	Store       StoreConfig       `mapstructure:"store"`
	Validation  ValidationConfig  `mapstructure:"validation"`
	Display     DisplayConfig     `mapstructure:"display"`
	Application ApplicationConfig `mapstructure:"application"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// StoreConfig selects where the session's task list lives. Every backend is
// volatile; the list is gone when the process exits.
type StoreConfig struct {
	Backend      string        `mapstructure:"backend"`       // TODO_STORE_BACKEND
	DSN          string        `mapstructure:"dsn"`           // TODO_STORE_DSN
	QueryTimeout time.Duration `mapstructure:"query_timeout"` // TODO_STORE_QUERY_TIMEOUT
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TextMaxLength   int    `mapstructure:"text_max_length"`  // TODO_VALIDATION_TEXT_MAX_LENGTH
	RequiredMessage string `mapstructure:"required_message"` // TODO_VALIDATION_REQUIRED_MESSAGE
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Title         string        `mapstructure:"title"`          // TODO_DISPLAY_TITLE
	ListFormat    string        `mapstructure:"list_format"`    // TODO_DISPLAY_LIST_FORMAT
	ToastDuration time.Duration `mapstructure:"toast_duration"` // TODO_DISPLAY_TOAST_DURATION
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout"` // TODO_APPLICATION_TIMEOUT
	Verbose bool          `mapstructure:"verbose"` // TODO_APPLICATION_VERBOSE
	Strict  bool          `mapstructure:"strict"`  // TODO_APPLICATION_STRICT
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // TODO_LOGGING_LEVEL
	Format string `mapstructure:"format"` // TODO_LOGGING_FORMAT
	File   string `mapstructure:"file"`   // TODO_LOGGING_FILE
}

// ListFormats are the accepted values for display.list_format.
var ListFormats = []string{"table", "csv", "markdown", "json", "yaml"}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:      BackendMemory,
			DSN:          ":memory:",
			QueryTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TextMaxLength:   0,
			RequiredMessage: "This field is required!",
		},
		Display: DisplayConfig{
			Title:         "todo",
			ListFormat:    "table",
			ToastDuration: 3 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
			Strict:  false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Store.DSN == "" {
			return &ConfigError{Field: "store.dsn", Message: "dsn cannot be empty for the sqlite backend"}
		}
		if !IsVolatileDSN(c.Store.DSN) {
			return &ConfigError{Field: "store.dsn", Message: "dsn must name an in-memory database"}
		}
	default:
		return &ConfigError{Field: "store.backend", Message: "backend must be one of: memory, sqlite"}
	}
	if c.Store.QueryTimeout <= 0 {
		return &ConfigError{Field: "store.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Validation.TextMaxLength < 0 {
		return &ConfigError{Field: "validation.text_max_length", Message: "text max length cannot be negative"}
	}

	if !contains(ListFormats, c.Display.ListFormat) {
		return &ConfigError{Field: "display.list_format", Message: "list format must be one of: " + strings.Join(ListFormats, ", ")}
	}
	if c.Display.ToastDuration <= 0 {
		return &ConfigError{Field: "display.toast_duration", Message: "toast duration must be positive"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if !contains([]string{"debug", "info", "warn", "warning", "error"}, strings.ToLower(c.Logging.Level)) {
		return &ConfigError{Field: "logging.level", Message: "level must be one of: debug, info, warn, error"}
	}
	if !contains([]string{"text", "json", "logfmt"}, c.Logging.Format) {
		return &ConfigError{Field: "logging.format", Message: "format must be one of: text, json, logfmt"}
	}

	return nil
}

// IsVolatileDSN reports whether a sqlite DSN refers to an in-memory database.
func IsVolatileDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Settings returns the effective configuration as nested sections, with
// durations rendered as strings.
func (c *Config) Settings() map[string]map[string]interface{} {
	return map[string]map[string]interface{}{
		"store": {
			"backend":       c.Store.Backend,
			"dsn":           c.Store.DSN,
			"query_timeout": c.Store.QueryTimeout.String(),
		},
		"validation": {
			"text_max_length":  c.Validation.TextMaxLength,
			"required_message": c.Validation.RequiredMessage,
		},
		"display": {
			"title":          c.Display.Title,
			"list_format":    c.Display.ListFormat,
			"toast_duration": c.Display.ToastDuration.String(),
		},
		"application": {
			"timeout": c.Application.Timeout.String(),
			"verbose": c.Application.Verbose,
			"strict":  c.Application.Strict,
		},
		"logging": {
			"level":  c.Logging.Level,
			"format": c.Logging.Format,
			"file":   c.Logging.File,
		},
	}
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

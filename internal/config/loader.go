package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "TODO"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"backend":         "store.backend",
	"dsn":             "store.dsn",
	"query-timeout":   "store.query_timeout",
	"text-max-length": "validation.text_max_length",
	"list-format":     "display.list_format",
	"toast-duration":  "display.toast_duration",
	"app-timeout":     "application.timeout",
	"verbose":         "application.verbose",
	"log-level":       "logging.level",
	"log-format":      "logging.format",
	"log-file":        "logging.file",
	"config":          "config",
}

// Loader handles loading configuration from multiple sources
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, value := range flatten(NewConfig().Settings()) {
		v.SetDefault(key, value)
	}
	v.SetDefault("config", "")

	return &Loader{v: v}
}

// RegisterFlags defines the global configuration flags on fs and binds them.
func (l *Loader) RegisterFlags(fs *pflag.FlagSet) error {
	defaults := NewConfig()

	fs.String("config", "", "Config file (yaml, toml or json; overrides TODO_CONFIG)")
	fs.String("backend", defaults.Store.Backend, "Task list backend: memory or sqlite (overrides TODO_STORE_BACKEND)")
	fs.String("dsn", defaults.Store.DSN, "In-memory sqlite DSN (overrides TODO_STORE_DSN)")
	fs.Duration("query-timeout", defaults.Store.QueryTimeout, "Store query timeout (overrides TODO_STORE_QUERY_TIMEOUT)")
	fs.Int("text-max-length", defaults.Validation.TextMaxLength, "Maximum task text length, 0 for unlimited (overrides TODO_VALIDATION_TEXT_MAX_LENGTH)")
	fs.String("list-format", defaults.Display.ListFormat, "List format: "+strings.Join(ListFormats, ", ")+" (overrides TODO_DISPLAY_LIST_FORMAT)")
	fs.Duration("toast-duration", defaults.Display.ToastDuration, "How long notifications stay visible (overrides TODO_DISPLAY_TOAST_DURATION)")
	fs.Duration("app-timeout", defaults.Application.Timeout, "Application timeout (overrides TODO_APPLICATION_TIMEOUT)")
	fs.Bool("verbose", defaults.Application.Verbose, "Enable verbose output (overrides TODO_APPLICATION_VERBOSE)")
	fs.String("log-level", defaults.Logging.Level, "Log level: debug, info, warn, error (overrides TODO_LOGGING_LEVEL)")
	fs.String("log-format", defaults.Logging.Format, "Log format: text, json, logfmt (overrides TODO_LOGGING_FORMAT)")
	fs.String("log-file", defaults.Logging.File, "Write logs to this file instead of stderr (overrides TODO_LOGGING_FILE)")

	return l.BindFlags(fs)
}

// BindFlags binds every known flag present in fs to its configuration key.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// BindFlag binds a single command-local flag to a configuration key.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	return l.v.BindPFlag(key, flag)
}

// Load loads configuration using the cascading strategy:
// defaults, then the config file, then environment variables, then flags.
func (l *Loader) Load() (*Config, error) {
	if path := l.v.GetString("config"); path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func flatten(sections map[string]map[string]interface{}) map[string]interface{} {
	flat := make(map[string]interface{})
	for section, values := range sections {
		for key, value := range values {
			flat[section+"."+key] = value
		}
	}
	return flat
}

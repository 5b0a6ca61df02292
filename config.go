package ulog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds the logger configuration values.
type Config struct {
	Level    int64  `toml:"level"`     // Threshold, LevelNone..LevelAll
	File     string `toml:"file"`      // Log file path; empty keeps the console sink
	MaxFiles int64  `toml:"max_files"` // Retention count for numbered rotation
	Console  string `toml:"console"`   // Sink before Open: "stderr", "stdout", or "discard"
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:    LevelInfo,
	File:     "",
	MaxFiles: 1,
	Console:  "stderr",
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Level < LevelNone || c.Level > LevelAll {
		return fmtErrorf("level out of range [%d, %d]: %d", LevelNone, LevelAll, c.Level)
	}
	if c.MaxFiles < 0 {
		return fmtErrorf("max_files cannot be negative: %d", c.MaxFiles)
	}
	if c.Console != "stderr" && c.Console != "stdout" && c.Console != "discard" {
		return fmtErrorf("invalid console target: '%s' (use stderr, stdout, or discard)", c.Console)
	}
	if c.MaxFiles > 1 && c.File != "" && !strings.Contains(c.File, rotationMarker) {
		return fmtErrorf("max_files %d requires a '%s' marker in file name: %s", c.MaxFiles, rotationMarker, c.File)
	}
	return nil
}

// NewConfigFromFile loads configuration from a TOML file under the [ulog]
// table and returns a validated Config. A missing file yields defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()
	if err := loader.RegisterStruct("ulog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "ulog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies values from the loader into the Config struct, keyed
// by toml tag.
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// ApplyConfig applies a validated configuration to the logger: level first,
// then the console sink, then the log file if one is configured. On failure
// the previous level and sink are restored, so a rejected config leaves the
// logger exactly as it was.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	prevLevel := l.GetLevel()
	l.mu.Lock()
	prevSink := l.sink
	l.mu.Unlock()

	l.SetLevel(cfg.Level)

	switch cfg.Console {
	case "stdout":
		l.SetOutput(os.Stdout)
	case "discard":
		l.SetOutput(io.Discard)
	default:
		l.SetOutput(os.Stderr)
	}

	if cfg.File != "" {
		if err := l.Open(cfg.File, int(cfg.MaxFiles)); err != nil {
			l.SetLevel(prevLevel) // Rollback
			l.SetOutput(prevSink)
			return err
		}
	}
	return nil
}

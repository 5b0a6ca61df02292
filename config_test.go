package ulog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Empty(t, cfg.File)
	assert.Equal(t, int64(1), cfg.MaxFiles)
	assert.Equal(t, "stderr", cfg.Console)
	assert.NoError(t, cfg.validate())

	// Mutating the copy must not touch the package defaults
	cfg.Level = LevelAll
	assert.Equal(t, LevelInfo, DefaultConfig().Level)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errHas string
	}{
		{"level too low", func(c *Config) { c.Level = -1 }, "level out of range"},
		{"level too high", func(c *Config) { c.Level = LevelAll + 1 }, "level out of range"},
		{"negative max_files", func(c *Config) { c.MaxFiles = -2 }, "max_files"},
		{"bad console", func(c *Config) { c.Console = "tty" }, "console"},
		{"rotation without marker", func(c *Config) { c.MaxFiles = 3; c.File = "plain.log" }, "marker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errHas)
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Level = LevelDebug
	clone.File = "phy-0.log"

	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Empty(t, cfg.File)
}

func TestNewConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "phy-0.log")

	tomlContent := `
[ulog]
level = 4
file = "` + strings.ReplaceAll(logPath, `\`, `\\`) + `"
max_files = 3
console = "discard"
`
	configPath := filepath.Join(dir, "ulog.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(tomlContent), 0644))

	cfg, err := NewConfigFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, logPath, cfg.File)
	assert.Equal(t, int64(3), cfg.MaxFiles)
	assert.Equal(t, "discard", cfg.Console)
}

func TestNewConfigFromFileMissingUsesDefaults(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, *DefaultConfig(), *cfg)
}

func TestNewConfigFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "ulog.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[ulog]\nconsole = \"tty\"\n"), 0644))

	_, err := NewConfigFromFile(configPath)
	assert.Error(t, err)
}

func TestApplyConfig(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "phy-0.log")

	cfg := DefaultConfig()
	cfg.Level = LevelDebug
	cfg.File = logPath
	cfg.MaxFiles = 2
	cfg.Console = "discard"

	l := NewLogger()
	require.NoError(t, l.ApplyConfig(cfg))
	defer l.Close()

	assert.Equal(t, LevelDebug, l.GetLevel())

	l.DebugAt("mod.c", 1, "configured")
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "|DEBUG|mod.c:1|configured")
}

func TestApplyConfigNil(t *testing.T) {
	l := NewLogger()
	assert.Error(t, l.ApplyConfig(nil))
}

func TestApplyConfigConsoleOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = "discard"

	l := NewLogger()
	require.NoError(t, l.ApplyConfig(cfg))
	assert.Equal(t, io.Discard, l.sink)
}

func TestApplyConfigOpenFailureRollsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = LevelDebug
	cfg.File = filepath.Join(t.TempDir(), "no", "dir", "phy.log")
	cfg.Console = "discard"

	l, buf := newTestLogger()
	err := l.ApplyConfig(cfg)
	require.Error(t, err)

	assert.Equal(t, LevelInfo, l.GetLevel(), "level must be rolled back on failure")
	assert.Same(t, buf, l.sink.(*bytes.Buffer), "previous sink must be restored on failure")

	buf.Reset()
	l.DebugAt("mod.c", 1, "must stay suppressed")
	l.InfoAt("mod.c", 2, "still on the old sink")
	assert.NotContains(t, buf.String(), "must stay suppressed")
	assert.Contains(t, buf.String(), "still on the old sink")
}

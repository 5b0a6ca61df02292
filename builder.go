package ulog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Level sets the log level threshold.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the log level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// File sets the log file path.
func (b *Builder) File(path string) *Builder {
	b.cfg.File = path
	return b
}

// MaxFiles sets the rotation retention count.
func (b *Builder) MaxFiles(n int64) *Builder {
	b.cfg.MaxFiles = n
	return b
}

// Console sets the sink used before a file is opened.
func (b *Builder) Console(target string) *Builder {
	b.cfg.Console = target
	return b
}

// Example usage:
// logger, err := ulog.NewBuilder().
//
//	LevelString("debug").
//	File("phy-0.log").
//	MaxFiles(4).
//	Build()
//
// if err == nil {
//
//	 defer logger.Close()
//	 logger.Infof("logger initialized")
//
// }

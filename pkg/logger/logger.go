package logger

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface injected into every airdrop component.
//
// Loggers should be injected and scoped to the work they describe: e.g.
// lggr.Named("convert").With("run_id", id). There is no package level logger.
//
// Tests
//   - Tests should use a [Test] or [TestObserved] logger, with [New] being reserved for the CLI.
//
// Levels
//   - Error: a run failed. The operator has to fix the input or the environment.
//   - Warn: the run continues but something looks off.
//   - Info: run milestones. Example: rows read, totals computed, manifest written.
//   - Debug: per row detail.
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string

	// Named returns a child logger with name appended to the current name.
	Named(name string) Logger

	// With returns a child logger carrying the given key/value pairs on every entry.
	With(keysAndValues ...any) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	Debugf(format string, values ...any)
	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	// Some insignificant errors are suppressed.
	Sync() error
}

// Config describes the process logger built by the CLI.
type Config struct {
	Level zapcore.Level

	// Console switches the stderr encoder from JSON to a colored, human readable layout.
	Console bool

	// File, when set, additionally writes JSON entries to a size rotated log file.
	File string

	// MaxSizeMB bounds the log file before it is rotated. Defaults to 10.
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept. Defaults to 3.
	MaxBackups int
}

var defaultConfig Config

// New returns a new Logger with the default configuration.
func New() (Logger, error) { return defaultConfig.New() }

// New returns a new Logger for Config.
func (c *Config) New() (Logger, error) {
	lggr, err := NewWith(func(cfg *zap.Config) {
		if c.Console {
			*cfg = zap.NewDevelopmentConfig()
			cfg.DisableStacktrace = true
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		cfg.Level.SetLevel(c.Level)
	})
	if err != nil {
		return nil, err
	}
	if c.File == "" {
		return lggr, nil
	}

	return c.withFile(lggr.(*logger)), nil
}

// withFile tees the core of l into a rotated JSON file.
func (c *Config) withFile(l *logger) Logger {
	maxSize := c.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	maxBackups := c.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
	})
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		c.Level,
	)

	tee := l.Desugar().WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))

	return &logger{tee.Sugar()}
}

// NewWith returns a new Logger from a modified [zap.Config].
func NewWith(cfgFn func(*zap.Config)) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfgFn(&cfg)
	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

// NewCLI returns a Logger for interactive use. LOG_FORMAT=json keeps the
// production encoder, any other value selects the console encoder.
func NewCLI(level zapcore.Level, file string) (Logger, error) {
	c := Config{
		Level:   level,
		Console: os.Getenv("LOG_FORMAT") != "json",
		File:    file,
	}

	return c.New()
}

// Test returns a new test Logger for tb.
func Test(tb testing.TB) Logger {
	tb.Helper()
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000000")
	lggr := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zaptest.NewTestingWriter(tb),
			zapcore.DebugLevel,
		),
	)

	return &logger{lggr.Sugar()}
}

// TestObserved returns a new test Logger for tb and ObservedLogs at the given Level.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return &logger{zaptest.NewLogger(tb, zaptest.WrapOptions(observe, zap.AddCaller())).Sugar()}, logs
}

// Nop returns a no-op Logger.
func Nop() Logger {
	return &logger{zap.New(zapcore.NewNopCore()).Sugar()}
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Name() string {
	return l.Desugar().Name()
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{l.SugaredLogger.With(keysAndValues...)}
}

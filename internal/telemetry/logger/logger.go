package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
)

// Logger is the application logger interface.
//
// Arguments after msg are alternating keys and values, attached to the
// entry as structured fields.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithContext(ctx context.Context) Logger
}

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is the output format (json, text).
	Format string
	// Output is the output writer (defaults to os.Stderr).
	Output io.Writer
	// AddSource adds the caller to log entries.
	AddSource bool
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
		Output: os.Stderr,
	}
}

type zeroLogger struct {
	logger zerolog.Logger
	ctx    context.Context
}

// New creates a new logger with the given configuration. Empty fields are
// taken from DefaultConfig.
func New(cfg Config) (Logger, error) {
	out := cfg.Output
	cfg.Output = nil
	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		return nil, fmt.Errorf("merge logger config: %w", err)
	}
	if out != nil {
		cfg.Output = out
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var w io.Writer
	switch strings.ToLower(cfg.Format) {
	case "text", "console":
		w = zerolog.ConsoleWriter{Out: cfg.Output, NoColor: true, TimeFormat: time.RFC3339}
	case "json":
		w = cfg.Output
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.AddSource {
		zctx = zctx.Caller()
	}

	return &zeroLogger{
		logger: zctx.Logger(),
		ctx:    context.Background(),
	}, nil
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zeroLogger{logger: zerolog.Nop(), ctx: context.Background()}
}

func (l *zeroLogger) Debug(msg string, args ...any) {
	l.emit(l.logger.Debug(), msg, args)
}

func (l *zeroLogger) Info(msg string, args ...any) {
	l.emit(l.logger.Info(), msg, args)
}

func (l *zeroLogger) Warn(msg string, args ...any) {
	l.emit(l.logger.Warn(), msg, args)
}

func (l *zeroLogger) Error(msg string, args ...any) {
	l.emit(l.logger.Error(), msg, args)
}

func (l *zeroLogger) emit(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}
	if len(args) > 0 {
		e = e.Fields(args)
	}
	e.Ctx(l.ctx).Msg(msg)
}

func (l *zeroLogger) With(args ...any) Logger {
	return &zeroLogger{
		logger: l.logger.With().Fields(args).Logger(),
		ctx:    l.ctx,
	}
}

func (l *zeroLogger) WithContext(ctx context.Context) Logger {
	return &zeroLogger{
		logger: l.logger,
		ctx:    ctx,
	}
}

// parseLevel converts a string level to a zerolog level.
func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

var defaultLogger atomic.Pointer[zeroLogger]

func init() {
	l, _ := New(DefaultConfig())
	defaultLogger.Store(l.(*zeroLogger))
}

// SetDefault sets the default global logger.
func SetDefault(l Logger) {
	if zl, ok := l.(*zeroLogger); ok {
		defaultLogger.Store(zl)
	}
}

// Default returns the default global logger.
func Default() Logger {
	return defaultLogger.Load()
}

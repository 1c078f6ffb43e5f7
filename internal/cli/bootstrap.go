// Package cli provides CLI commands for the stockroom application.
package cli

import (
	gocontext "context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/stockroom/internal/config"
	"github.com/example/stockroom/internal/ctxutil"
	"github.com/example/stockroom/internal/wire"
)

// globalActorID stores the actor recorded in the stock ledger for this invocation.
// Set once at startup by Bootstrap().
var globalActorID string

// logger is the process logger, built by Bootstrap().
var logger = zap.NewNop()

// BootstrapOptions carry the global flags.
type BootstrapOptions struct {
	File    string // inventory path override
	Verbose bool
}

// Bootstrap loads configuration, builds the logger and configures wiring.
// Should be called once at CLI startup in PersistentPreRunE.
func Bootstrap(o BootstrapOptions) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.File != "" {
		cfg.InventoryFile = o.File
	}

	logger, err = loggerFromConfig(cfg.LogLevel, o.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalActorID = cfg.ResolveActor()
	wire.Configure(wire.Options{
		Dir:    dir,
		Config: cfg,
		Logger: logger,
	})
	return nil
}

// Shutdown flushes buffered log entries.
// Should be called in PersistentPostRun.
func Shutdown() {
	_ = logger.Sync()
}

// loggerFromConfig builds the process logger from the configured level.
// An unknown level falls back to info with a warning.
func loggerFromConfig(level string, verbose bool) (*zap.Logger, error) {
	l, err := newLogger(level, verbose)
	if err == nil {
		return l, nil
	}
	l, fallbackErr := newLogger(zapcore.InfoLevel.String(), verbose)
	if fallbackErr != nil {
		return nil, fallbackErr
	}
	l.Warn("ignoring log_level from config, using info", zap.String("log_level", level), zap.Error(err))
	return l, nil
}

// newLogger builds a production logger writing to stderr.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = !verbose
	return cfg.Build()
}

// GetActorID returns the stored actor ID from CLI startup.
// Returns empty string if Bootstrap() was not called.
func GetActorID() string {
	return globalActorID
}

// NewContext creates a context.Background() with the current actor ID embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	ctx := gocontext.Background()
	if globalActorID != "" {
		return ctxutil.WithActorID(ctx, globalActorID)
	}
	return ctx
}

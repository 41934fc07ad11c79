package sheaf

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/pkg/config"
	"github.com/aretw0/sheaf/pkg/core"
	"github.com/aretw0/sheaf/pkg/notebook"
)

// --- Types ---

// Config is the explicit configuration of a notebook.
type Config = config.Config

// Notebook is the service running the creation and update flows.
type Notebook = notebook.Service

// --- Configuration ---

// Option defines a functional option for configuring sheaf.
type Option = platform.Option

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return config.Default()
}

// WithLogger sets the logger for the notebook.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithAutoInit creates the notes directory (and git repository) when opening.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist fails opening when the notes directory is missing.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithWatcherErrorHandler registers a callback for errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens the notebook described by cfg.
func New(ctx context.Context, cfg Config, opts ...Option) (*Notebook, error) {
	return platform.New(ctx, cfg, opts...)
}

// Init returns the repository described by cfg without the notebook service.
func Init(ctx context.Context, cfg Config, opts ...Option) (core.Repository, error) {
	return platform.Init(ctx, cfg, opts...)
}

// FindRoot looks upwards for a directory holding a sheaf config file or a .git directory.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/sheaf/pkg/core"
)

// options holds the internal configuration for a sheaf notebook.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	clock        func() time.Time
	autoInit     bool
	mustExist    bool
	errorHandler func(error)
}

// Option defines a functional option for configuring sheaf.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
		clock:  time.Now,
	}
}

// WithLogger sets the logger for the notebook and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a fake in tests).
// If provided, the filesystem adapter is skipped and Config.Dir is ignored.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithClock replaces time.Now for created timestamps and the index footer.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithAutoInit prepares the notes directory while opening the notebook:
// it is created when missing and, with versioning on, git initialized.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist fails opening the notebook with core.ErrNotesDirMissing
// when the notes directory does not exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while watching.
// They are logged either way.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

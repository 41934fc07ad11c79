// Package fs implements core.Repository on top of a notes directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/sheaf/pkg/core"
	"github.com/aretw0/sheaf/pkg/git"
)

// NoteExt is the extension of note files.
const NoteExt = ".md"

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	IndexFile string   // e.g. "INDEX.md", never listed as a note
	Ignore    []string // doublestar patterns matched against file names
	MustExist bool     // fail Initialize instead of creating the directory
	AutoInit  bool     // git init the directory when Versioning is on
	// Versioning commits created notes and the index with git.
	Versioning bool
	Debounce   time.Duration
	Logger     *slog.Logger
	// ErrorHandler receives errors raised while watching.
	ErrorHandler func(error)
}

// Repository implements core.Repository using the filesystem and, optionally, Git.
type Repository struct {
	Path   string
	git    *git.Client
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastIndexed   *time.Time
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.IndexFile == "" {
		config.IndexFile = "INDEX.md"
	}
	if config.Debounce <= 0 {
		config.Debounce = 100 * time.Millisecond
	}
	return &Repository{
		Path:   config.Path,
		git:    git.NewClient(config.Path, ".sheaf.lock", config.Logger),
		config: config,
	}
}

// Initialize performs the necessary setup for the repository (mkdir, git init).
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrNotesDirMissing, r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("notes path is not a directory: %s", r.Path)
		}
	} else {
		if err := os.MkdirAll(r.Path, 0755); err != nil {
			return fmt.Errorf("failed to create notes directory: %w", err)
		}
	}

	if !r.config.Versioning {
		return nil
	}
	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}
	if r.git.IsRepo(ctx) {
		return nil
	}
	if !r.config.AutoInit {
		return fmt.Errorf("path is not a git repository: %s", r.Path)
	}
	if err := r.git.Init(ctx); err != nil {
		return fmt.Errorf("failed to git init: %w", err)
	}
	r.config.Logger.Debug("initialized git repository", "path", r.Path)
	return nil
}

// List returns note file names in directory (lexical) order.
//
// Only regular ".md" files directly inside the notes directory are notes;
// the index file and names matching an ignore pattern are skipped.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", core.ErrNotesDirMissing, r.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	var files []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.Type().IsRegular() {
			continue
		}
		if !r.isNote(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// isNote reports whether a base file name designates a note.
func (r *Repository) isNote(name string) bool {
	if filepath.Ext(name) != NoteExt || name == r.config.IndexFile {
		return false
	}
	for _, pattern := range r.config.Ignore {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			r.config.Logger.Debug("ignoring note", "file", name, "pattern", pattern)
			return false
		}
	}
	return true
}

// Read returns the raw content of a note.
func (r *Repository) Read(ctx context.Context, file string) ([]byte, error) {
	path, err := r.resolve(file)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Create writes a new note without ever replacing an existing file.
func (r *Repository) Create(ctx context.Context, file string, data []byte) error {
	path, err := r.resolve(file)
	if err != nil {
		return err
	}
	if err := writeFileExclusive(path, data, 0644); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", core.ErrNoteExists, file)
		}
		return err
	}
	r.config.Logger.Debug("note written", "file", file)
	return nil
}

// ReadIndex returns the current index document, or nil if there is none.
func (r *Repository) ReadIndex(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(r.Location(""))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

// WriteIndex atomically replaces the index document.
func (r *Repository) WriteIndex(ctx context.Context, data []byte) error {
	if err := writeFileAtomic(r.Location(""), data, 0644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	r.recordIndexed()
	return nil
}

// Location returns the path of a file inside the notes directory.
// An empty name designates the index.
func (r *Repository) Location(file string) string {
	if file == "" {
		file = r.config.IndexFile
	}
	return filepath.Join(r.Path, file)
}

// Commit records files in git when versioning is enabled; otherwise it does nothing.
func (r *Repository) Commit(ctx context.Context, reason string, files ...string) error {
	if !r.config.Versioning {
		return nil
	}

	unlock, err := r.git.Lock(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if err := r.git.Add(ctx, files...); err != nil {
		return err
	}
	return r.git.Commit(ctx, reason, files...)
}

// resolve maps a note file name to its path, rejecting anything that is not
// a plain file name.
func (r *Repository) resolve(file string) (string, error) {
	if file == "" || file != filepath.Base(file) || strings.ContainsAny(file, `/\`) || file == ".." {
		return "", fmt.Errorf("invalid note file name: %q", file)
	}
	return filepath.Join(r.Path, file), nil
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Versioned  = (*Repository)(nil)
	_ core.Watchable  = (*Repository)(nil)
)

package core

import "context"

// Repository defines the contract for the storage holding the notes.
// Adhering to this interface keeps the notebook independent of the
// underlying storage (a directory on disk, an in-memory fake in tests).
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g. creates the directory).
	Initialize(ctx context.Context) error

	// List returns the file names of all notes, index excluded, in storage order.
	// A missing notes directory yields ErrNotesDirMissing.
	List(ctx context.Context) ([]string, error)

	// Read returns the raw content of a note.
	Read(ctx context.Context, file string) ([]byte, error)

	// Create writes a new note. It never overwrites: ErrNoteExists if present.
	Create(ctx context.Context, file string, data []byte) error

	// ReadIndex returns the current index document, or nil if there is none.
	ReadIndex(ctx context.Context) ([]byte, error)

	// WriteIndex replaces the index document.
	WriteIndex(ctx context.Context, data []byte) error

	// Location returns a human readable location for a file (e.g. its path).
	// An empty file name designates the index.
	Location(file string) string
}

// Watchable is implemented by repositories that can report changes.
type Watchable interface {
	// Watch emits an event for every change to a note until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Versioned is implemented by repositories that record changes in version control.
type Versioned interface {
	// Commit records the given files with a change reason.
	Commit(ctx context.Context, reason string, files ...string) error
}

package core

import "errors"

// Common errors.
var (
	// ErrCancelled is returned by the creation flow when no title was given.
	ErrCancelled = errors.New("note creation cancelled: title is empty")
	// ErrNoValidNotes marks a rebuild that found nothing to index.
	ErrNoValidNotes = errors.New("no valid notes to index")
	// ErrNoteExists is returned instead of overwriting an existing note.
	ErrNoteExists = errors.New("note already exists")
	// ErrNotesDirMissing is returned when the notes directory does not exist.
	ErrNotesDirMissing = errors.New("notes directory does not exist")
)

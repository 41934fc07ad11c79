package core

import "context"

// Prompter supplies the user input needed to create a note.
// Implementations range from interactive terminal forms to fixed values.
type Prompter interface {
	// Title returns the raw note title. Blank means the user cancelled.
	Title(ctx context.Context) (string, error)
	// Tags returns the raw, whitespace separated tag list.
	Tags(ctx context.Context) (string, error)
}

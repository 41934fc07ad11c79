package prompt

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/huh"
)

// Form asks for the title and the tags in a single terminal form.
// The form runs on the first call and both answers are kept for the second.
type Form struct {
	hint string

	once  sync.Once
	title string
	tags  string
	err   error
}

// NewForm creates an interactive form prompter.
func NewForm(hint string) *Form {
	return &Form{hint: hint}
}

// Title implements core.Prompter. Aborting the form yields an empty title.
func (f *Form) Title(ctx context.Context) (string, error) {
	f.once.Do(func() { f.run(ctx) })
	return f.title, f.err
}

// Tags implements core.Prompter.
func (f *Form) Tags(ctx context.Context) (string, error) {
	f.once.Do(func() { f.run(ctx) })
	return f.tags, f.err
}

func (f *Form) run(ctx context.Context) {
	tagsDescription := "Separated by spaces, empty for the default tag"
	if f.hint != "" {
		tagsDescription += "\nSuggestions: " + f.hint
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Note title, also used for the file name").
				Placeholder("e.g., Goroutines and channels").
				Value(&f.title),

			huh.NewInput().
				Title("Tags").
				Description(tagsDescription).
				Placeholder("e.g., Go 服务端").
				Value(&f.tags),
		),
	).WithTheme(huh.ThemeDracula())

	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		f.title, f.tags = "", ""
		return
	}
	f.err = err
}

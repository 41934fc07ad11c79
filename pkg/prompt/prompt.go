// Package prompt provides core.Prompter implementations for the note creation flow.
package prompt

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/sheaf/pkg/core"
)

// DefaultTagHint lists tag suggestions shown while asking for tags.
const DefaultTagHint = "前端 服务端 Go Python Node RN 产品思维 AI Web3 React Vue Angular"

// Static answers with fixed values, e.g. taken from command line flags.
type Static struct {
	TitleValue string
	TagsValue  string
}

func (s Static) Title(context.Context) (string, error) { return s.TitleValue, nil }
func (s Static) Tags(context.Context) (string, error)  { return s.TagsValue, nil }

// Auto picks the interactive form when in is a terminal and line prompts otherwise.
func Auto(in *os.File, out io.Writer, hint string) core.Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return NewForm(hint)
	}
	return NewLine(in, out, hint)
}

var (
	_ core.Prompter = Static{}
	_ core.Prompter = (*Line)(nil)
	_ core.Prompter = (*Form)(nil)
)

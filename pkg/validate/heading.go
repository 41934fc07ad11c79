package validate

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// atxMarker matches the opening sequence of an ATX heading line.
var atxMarker = regexp.MustCompile(`^ {0,3}#{1,6}(?:[ \t]+|$)`)

// headingFinder locates level 1 headings using the goldmark AST, so that
// lines inside code blocks are never mistaken for headings.
type headingFinder struct {
	md goldmark.Markdown
}

func newHeadingFinder() *headingFinder {
	return &headingFinder{md: goldmark.New()}
}

// first returns the text of the first level 1 heading in body.
func (h *headingFinder) first(body []byte) (string, bool) {
	doc := h.md.Parser().Parse(text.NewReader(body))

	var (
		title string
		found bool
	)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = headingText(heading, body)
		found = true
		return ast.WalkStop, nil
	})

	return title, found
}

// headingText returns the text of a heading. For ATX headings the whole
// source line is used minus the opening marker, so a trailing " #" stays part
// of the text.
func headingText(h *ast.Heading, source []byte) string {
	lines := h.Lines()
	if lines.Len() == 0 {
		return ""
	}
	start := lines.At(0).Start
	lineStart := bytes.LastIndexByte(source[:start], '\n') + 1
	lineEnd := len(source)
	if i := bytes.IndexByte(source[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	line := source[lineStart:lineEnd]

	if loc := atxMarker.FindIndex(line); loc != nil && lineStart+loc[1] <= start {
		return string(bytes.TrimSpace(line[loc[1]:]))
	}
	return rawText(h, source)
}

// rawText returns the source text of a block node, trimmed.
func rawText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}

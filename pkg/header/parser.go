package header

import (
	"bytes"
	"errors"
	"strings"
)

// Marker delimits the header block.
const Marker = "---"

var (
	// ErrMissing is returned when the content does not start with a header block.
	ErrMissing = errors.New("missing header block (file must start with ---)")
	// ErrUnterminated is returned when the closing marker line cannot be found.
	ErrUnterminated = errors.New("malformed header block (no closing --- line)")
)

// Block is the parsed header of a note.
type Block struct {
	// Fields maps each key to its trimmed value. The first occurrence wins.
	Fields map[string]string
	// Keys lists the keys in order of first appearance.
	Keys []string
	// Body is everything after the closing marker line.
	Body string
}

// Lookup returns the value of a field and whether the field is present.
func (b *Block) Lookup(key string) (string, bool) {
	v, ok := b.Fields[key]
	return v, ok
}

// Parse extracts the header block from raw note content.
// CRLF line endings are normalized before parsing.
func Parse(content []byte) (*Block, error) {
	text := string(bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")))

	first, rest, found := strings.Cut(text, "\n")
	if strings.TrimRight(first, " \t") != Marker {
		return nil, ErrMissing
	}
	if !found {
		return nil, ErrUnterminated
	}

	block := &Block{Fields: make(map[string]string)}
	for {
		line, next, more := strings.Cut(rest, "\n")
		if strings.TrimRight(line, " \t") == Marker {
			block.Body = next
			return block, nil
		}
		block.add(line)
		if !more {
			return nil, ErrUnterminated
		}
		rest = next
	}
}

func (b *Block) add(line string) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if _, seen := b.Fields[key]; seen {
		return
	}
	b.Fields[key] = strings.TrimSpace(value)
	b.Keys = append(b.Keys, key)
}

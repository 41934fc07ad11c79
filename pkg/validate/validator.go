// Package validate checks the structure of a note and reports errors and warnings.
package validate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/sheaf/pkg/core"
	"github.com/aretw0/sheaf/pkg/header"
)

// Required header fields.
const (
	FieldTitle   = "title"
	FieldTags    = "tags"
	FieldCreated = "created"
)

// Default section markers expected in the body of a note.
const (
	DefaultTagsMarker    = "## 📌 标签"
	DefaultContentMarker = "## 📝 内容"
)

var seqPrefix = regexp.MustCompile(`^(\d+)`)

// Validator applies the structural rules to a note.
// It is stateless and safe to reuse.
type Validator struct {
	tagsMarker    string
	contentMarker string
	headings      *headingFinder
}

// Option configures a Validator.
type Option func(*Validator)

// WithMarkers overrides the section markers. Empty values keep the defaults.
func WithMarkers(tags, content string) Option {
	return func(v *Validator) {
		if tags != "" {
			v.tagsMarker = tags
		}
		if content != "" {
			v.contentMarker = content
		}
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		tagsMarker:    DefaultTagsMarker,
		contentMarker: DefaultContentMarker,
		headings:      newHeadingFinder(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks a single note.
//
// Checks:
//  1. Header block present and terminated (fatal, stops here).
//  2. title present (error).
//  3. tags present (error); empty after parsing (warning).
//  4. created present (error).
//  5. Body has a level 1 heading (warning).
//  6. Heading text equals title (warning).
//  7. Body has the tags and content section markers (warning each).
//
// Only checks 1-4 affect validity.
func (v *Validator) Validate(file string, content []byte) core.Result {
	res := core.Result{File: file, Seq: Seq(file), Valid: true}

	block, err := header.Parse(content)
	if err != nil {
		res.Fail(err.Error())
		return res
	}

	if title, ok := block.Lookup(FieldTitle); ok && title != "" {
		res.Metadata.Title = title
	} else {
		res.Fail(missing(FieldTitle))
	}

	if raw, ok := block.Lookup(FieldTags); ok {
		tags, parsed := header.ParseTags(raw)
		res.Metadata.Tags = tags
		if !parsed {
			res.Warn("tags field is empty or malformed (expected an array such as [frontend, React])")
		}
	} else {
		res.Fail(missing(FieldTags))
	}

	if created, ok := block.Lookup(FieldCreated); ok && created != "" {
		res.Metadata.Created = created
	} else {
		res.Fail(missing(FieldCreated))
	}

	body := []byte(block.Body)
	if heading, ok := v.headings.first(body); !ok {
		res.Warn("content has no level 1 heading (# title)")
	} else if res.Metadata.Title != "" && heading != res.Metadata.Title {
		res.Warn(fmt.Sprintf("content heading %q does not match title %q", heading, res.Metadata.Title))
	}

	if !strings.Contains(block.Body, v.tagsMarker) {
		res.Warn(fmt.Sprintf("missing tags section (%s)", v.tagsMarker))
	}
	if !strings.Contains(block.Body, v.contentMarker) {
		res.Warn(fmt.Sprintf("missing content section (%s)", v.contentMarker))
	}

	return res
}

// ReadError builds the invalid result for a note that could not be read.
func ReadError(file string, err error) core.Result {
	res := core.Result{File: file, Seq: Seq(file)}
	res.Fail(fmt.Sprintf("failed to read file: %v", err))
	return res
}

// Seq returns the numeric prefix of a note file name, or 0 if it has none
// or it does not fit in an int.
func Seq(file string) int {
	m := seqPrefix.FindString(filepath.Base(file))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Digits only, so this is an overflow.
		return 0
	}
	return n
}

func missing(field string) string {
	return fmt.Sprintf("missing %s field", field)
}

// Markers returns the section markers the validator looks for.
func (v *Validator) Markers() (tags, content string) {
	return v.tagsMarker, v.contentMarker
}

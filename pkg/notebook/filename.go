package notebook

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/sheaf/pkg/validate"
)

// FallbackTitle is used as file name part when nothing of the title survives sanitizing.
const FallbackTitle = "untitled"

// maxNameBytes keeps generated file names below common filesystem limits.
const maxNameBytes = 200

var (
	unsafeChars = strings.NewReplacer(
		"/", "-", `\`, "-",
		":", "", "*", "", "?", "", `"`, "", "<", "", ">", "", "|", "",
	)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// SanitizeTitle turns a title into a safe file name component.
//
//	SanitizeTitle(`Go/TS: "Intro"?`) == "Go-TS Intro"
func SanitizeTitle(title string) string {
	s := unsafeChars.Replace(title)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.Trim(s, ". ")
	s = truncate(s, maxNameBytes)
	s = strings.TrimRight(s, ". ")
	if s == "" {
		return FallbackTitle
	}
	return s
}

// FileName returns the note file name for a sequence number and a title,
// the sequence zero padded to width digits.
func FileName(seq int, title string, width int) string {
	return fmt.Sprintf("%0*d-%s.md", width, seq, SanitizeTitle(title))
}

// ErrSequenceExhausted is returned when no sequence number is left above the existing notes.
var ErrSequenceExhausted = errors.New("note sequence exhausted")

// NextSequence returns one more than the highest numeric prefix among files,
// or 1 when there is none. Prefixes too large for an int are ignored.
func NextSequence(files []string) (int, error) {
	highest := 0
	for _, f := range files {
		if n := validate.Seq(f); n > highest {
			highest = n
		}
	}
	if highest == math.MaxInt {
		return 0, ErrSequenceExhausted
	}
	return highest + 1, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}

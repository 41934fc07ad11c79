package notebook

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`Go/TS: "Intro"?`, "Go-TS Intro"},
		{`a\b`, "a-b"},
		{"  spaced   out  ", "spaced out"},
		{"tab\tand\nnewline", "tab and newline"},
		{"...dots...", "dots"},
		{"<>|*?", FallbackTitle},
		{"", FallbackTitle},
		{"中文 标题", "中文 标题"},
	}

	for _, tt := range tests {
		if got := SanitizeTitle(tt.in); got != tt.want {
			t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeTitle_Truncates(t *testing.T) {
	got := SanitizeTitle(strings.Repeat("笔", 200))
	if len(got) > maxNameBytes {
		t.Fatalf("len = %d, want <= %d", len(got), maxNameBytes)
	}
	if !strings.HasPrefix(strings.Repeat("笔", 200), got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(3, "Hello", 3); got != "003-Hello.md" {
		t.Errorf("got %q", got)
	}
	if got := FileName(1234, "x", 3); got != "1234-x.md" {
		t.Errorf("got %q", got)
	}
}

func TestNextSequence(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  int
	}{
		{"Empty", nil, 1},
		{"Sequential", []string{"001-a.md", "002-b.md"}, 3},
		{"Gap", []string{"001-a.md", "007-b.md"}, 8},
		{"Unprefixed Ignored", []string{"notes.md", "002-b.md"}, 3},
		{"Only Unprefixed", []string{"readme.md"}, 1},
		{"Oversized Prefix Ignored", []string{"99999999999999999999-x.md", "004-b.md"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextSequence(tt.files)
			if err != nil {
				t.Fatalf("NextSequence(%v) error = %v", tt.files, err)
			}
			if got != tt.want {
				t.Errorf("NextSequence(%v) = %d, want %d", tt.files, got, tt.want)
			}
		})
	}
}

func TestNextSequence_Exhausted(t *testing.T) {
	_, err := NextSequence([]string{fmt.Sprintf("%d-x.md", math.MaxInt)})
	if !errors.Is(err, ErrSequenceExhausted) {
		t.Fatalf("error = %v, want ErrSequenceExhausted", err)
	}
}

func TestParseTagInput(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"go cli", []string{"go", "cli"}},
		{"  ", []string{DefaultTag}},
		{"", []string{DefaultTag}},
		{"a,b， c", []string{"a", "b", "c"}},
		{"[x] `y`", []string{"x", "y"}},
	}

	for _, tt := range tests {
		got := ParseTagInput(tt.raw, DefaultTag)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("ParseTagInput(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

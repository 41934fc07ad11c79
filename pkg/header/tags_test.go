package header

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   []string
		wantOK bool
	}{
		{"Bracketed", "[a, b]", []string{"a", "b"}, true},
		{"Backticks", "`a` `b`", []string{"a", "b"}, true},
		{"Comma List", "a, b", []string{"a", "b"}, true},
		{"Bracketed Unicode", "[前端, React]", []string{"前端", "React"}, true},
		{"Bracketed Drops Empty", "[a, , b,]", []string{"a", "b"}, true},
		{"Bracketed Keeps Duplicates", "[a, a]", []string{"a", "a"}, true},
		{"Backticks With Noise", "tags `x` and `y z`", []string{"x", "y z"}, true},
		{"Empty Brackets", "[]", nil, false},
		{"Single Plain Word", "go", nil, false},
		{"Empty", "", nil, false},
		{"Unclosed Backtick", "`a", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTags(tt.raw)
			if ok != tt.wantOK {
				t.Errorf("ParseTags(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatTags(t *testing.T) {
	got := FormatTags([]string{"go", "未分类"})
	if got != "[go, 未分类]" {
		t.Errorf("FormatTags() = %q", got)
	}

	parsed, ok := ParseTags(got)
	if !ok || !reflect.DeepEqual(parsed, []string{"go", "未分类"}) {
		t.Errorf("formatted tags do not parse back: %v", parsed)
	}
}

package header

import (
	"regexp"
	"strings"
)

var backtickToken = regexp.MustCompile("`([^`]+)`")

// ParseTags parses a raw tags value. Three syntaxes are tried in order:
//
//	[a, b, c]   bracketed list
//	`a` `b`     backtick tokens (legacy notes)
//	a, b, c     plain comma separated list
//
// Elements are trimmed and empty elements dropped. ok is false when no
// syntax matched or nothing remained.
func ParseTags(raw string) (tags []string, ok bool) {
	raw = strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]"):
		tags = splitList(raw[1 : len(raw)-1])
	case strings.Contains(raw, "`"):
		for _, m := range backtickToken.FindAllStringSubmatch(raw, -1) {
			if tag := strings.TrimSpace(m[1]); tag != "" {
				tags = append(tags, tag)
			}
		}
	case strings.Contains(raw, ","):
		tags = splitList(raw)
	}

	return tags, len(tags) > 0
}

// FormatTags renders tags in the bracketed form written into new notes.
func FormatTags(tags []string) string {
	return "[" + strings.Join(tags, ", ") + "]"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Package header parses the structured header block at the top of a note.
//
// A header block starts with a "---" marker on the very first line and ends
// at the next line consisting only of "---". Between the markers, each line
// of the form "key: value" defines a field:
//
//	---
//	title: Learning Go
//	tags: [go, backend]
//	created: 2024-01-02 15:04:05
//	---
//
// The parser is deliberately small: it produces a flat field record and does
// not interpret YAML, so legacy values such as backtick-quoted tag lists
// survive parsing untouched.
package header

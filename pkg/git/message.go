package git

import "strings"

// Conventional commit types used by sheaf.
const (
	TypeDocs  = "docs"
	TypeChore = "chore"
)

// Trailer marks commits made by sheaf.
const Trailer = "Managed-by: sheaf"

// FormatMessage builds a conventional commit message:
//
//	<type>(<scope>): <subject>
//
//	<body>
//
//	Managed-by: sheaf
func FormatMessage(ctype, scope, subject, body string) string {
	var sb strings.Builder

	if ctype == "" {
		ctype = TypeChore
	}
	sb.WriteString(ctype)
	if scope != "" {
		sb.WriteString("(" + scope + ")")
	}
	sb.WriteString(": ")
	sb.WriteString(subject)

	if body = strings.TrimSpace(body); body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(body)
	}

	sb.WriteString("\n\n")
	sb.WriteString(Trailer)
	return sb.String()
}

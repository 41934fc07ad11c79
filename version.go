package sheaf

import _ "embed"

// Version is the sheaf release version.
//
//go:embed VERSION
var Version string

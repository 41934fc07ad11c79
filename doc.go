// Package sheaf is the composition root of the sheaf notes tool.
//
// sheaf keeps a directory of numbered Markdown notes in shape. Every note
// starts with a small header block (title, tags, created) followed by a body
// with a level 1 heading and fixed section markers. sheaf can:
//
//   - create a new note from a template with the next sequence number;
//   - validate every note and report errors and warnings;
//   - regenerate an index document grouping the valid notes by date and tag.
//
// The core types live in pkg/core and the storage is abstracted behind
// core.Repository, the default adapter being a plain directory with optional
// git versioning.
//
// Usage:
//
//	cfg := sheaf.DefaultConfig()
//	cfg.Dir = "./notes"
//
//	nb, err := sheaf.New(ctx, cfg, sheaf.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//
//	report, err := nb.Rebuild(ctx)
package sheaf

// Package notebook ties the pieces of sheaf together.
//
// A Service owns a core.Repository and runs the two workflows of the tool:
//
//   - Rebuild scans every note, validates it and regenerates the index from
//     the valid ones (the "update" flow).
//   - Create asks a core.Prompter for a title and tags, writes a new note from
//     the template and then runs Rebuild (the "new" flow).
//
// Index regeneration lives only in Rebuild, so both flows always produce the
// same document for the same notes.
package notebook

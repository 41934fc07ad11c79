package core

// Result is the outcome of validating a single note.
// It is derived data: recomputed on every scan and never persisted.
type Result struct {
	File     string   `json:"file"`
	Seq      int      `json:"seq"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Fail records an error and marks the result invalid.
func (r *Result) Fail(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// Warn records a warning. Warnings never affect validity.
func (r *Result) Warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Note converts the result into an indexable note.
func (r Result) Note() Note {
	return Note{File: r.File, Seq: r.Seq, Metadata: r.Metadata}
}

// Report aggregates the results of one scan of the notes directory.
type Report struct {
	// Results are ordered by ascending numeric file prefix.
	Results []Result

	// IndexPath is where the index was (or would have been) written.
	IndexPath string
	// IndexWritten is false when no note was valid.
	IndexWritten bool
	// IndexChanged is false when the regenerated index only differs
	// from the previous one by its timestamp footer.
	IndexChanged bool
	// Skipped explains why the index was not written, if it was not.
	Skipped error
}

// Total returns the number of scanned notes.
func (r *Report) Total() int { return len(r.Results) }

// Valid returns the results that passed validation.
func (r *Report) Valid() []Result {
	return r.filter(func(res Result) bool { return res.Valid })
}

// Invalid returns the results that failed validation.
func (r *Report) Invalid() []Result {
	return r.filter(func(res Result) bool { return !res.Valid })
}

// WithWarnings returns the results that carry at least one warning.
func (r *Report) WithWarnings() []Result {
	return r.filter(func(res Result) bool { return len(res.Warnings) > 0 })
}

// Notes returns the valid results as notes, in report order.
func (r *Report) Notes() []Note {
	valid := r.Valid()
	notes := make([]Note, 0, len(valid))
	for _, res := range valid {
		notes = append(notes, res.Note())
	}
	return notes
}

func (r *Report) filter(keep func(Result) bool) []Result {
	var out []Result
	for _, res := range r.Results {
		if keep(res) {
			out = append(out, res)
		}
	}
	return out
}

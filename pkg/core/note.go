package core

// Metadata holds the fields extracted from a note's header block.
type Metadata struct {
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Created string   `json:"created"`
}

// HasTag reports whether the metadata carries the given tag.
func (m Metadata) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Note is a note that passed validation and can be indexed.
// It is identified by its file name inside the notes directory.
type Note struct {
	File string `json:"file"`
	// Seq is the numeric file name prefix, 0 when the name has none.
	Seq int `json:"seq"`
	Metadata
}

// Created describes a note written by the creation flow.
type Created struct {
	File string
	Path string
	Note Note
	// Report is the outcome of the index rebuild that followed the write.
	Report *Report
}

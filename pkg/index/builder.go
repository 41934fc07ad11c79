// Package index renders the aggregated index document of a notes directory.
//
// The index is always regenerated from scratch: a chronological listing of
// every valid note followed by a cross-reference of notes grouped by tag.
// Apart from the trailing timestamp, the output is a pure function of the
// input notes, so rebuilding an unchanged directory yields identical bytes.
package index

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/sheaf/pkg/core"
)

// TimeLayout is the format of the regeneration timestamp.
const TimeLayout = "2006-01-02 15:04:05"

const (
	separator     = "---\n\n"
	footerPrefix  = "*最后更新: "
	timelineTitle = "## 📅 时间线"
	tagsTitle     = "## 🏷️ 标签分类"
)

// Builder renders index documents.
type Builder struct {
	title string
}

// Option configures a Builder.
type Option func(*Builder)

// WithTitle overrides the document heading.
func WithTitle(title string) Option {
	return func(b *Builder) {
		if title != "" {
			b.title = title
		}
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{title: "📚 笔记索引"}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the index for notes, which must already be in chronological
// (ascending file sequence) order. at is rendered in its own location.
func (b *Builder) Build(notes []core.Note, at time.Time) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n> 共 %d 篇笔记\n\n", b.title, len(notes))
	buf.WriteString(separator)

	buf.WriteString(timelineTitle + "\n\n")
	for _, n := range notes {
		fmt.Fprintf(&buf, "- **%s**", link(n))
		if len(n.Tags) > 0 {
			buf.WriteString(" " + codeList(n.Tags))
		}
		fmt.Fprintf(&buf, "\n  - 📅 %s\n\n", n.Created)
	}

	if groups := GroupByTag(notes); len(groups) > 0 {
		buf.WriteString(separator)
		buf.WriteString(tagsTitle + "\n\n")
		for _, g := range groups {
			fmt.Fprintf(&buf, "### %s\n\n", g.Tag)
			for _, n := range g.Notes {
				fmt.Fprintf(&buf, "- %s\n", link(n))
			}
			buf.WriteString("\n")
		}
	}

	buf.WriteString(separator)
	fmt.Fprintf(&buf, "%s%s*\n", footerPrefix, at.Format(TimeLayout))

	return buf.Bytes()
}

// Group is the list of notes carrying one tag.
type Group struct {
	Tag   string
	Notes []core.Note
}

// GroupByTag groups notes by tag. Groups are sorted by tag in byte order;
// inside a group notes keep their input order. A note appears at most once
// per group even if it repeats the tag.
func GroupByTag(notes []core.Note) []Group {
	byTag := make(map[string][]core.Note)
	for _, n := range notes {
		seen := make(map[string]bool, len(n.Tags))
		for _, tag := range n.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			byTag[tag] = append(byTag[tag], n)
		}
	}

	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	groups := make([]Group, 0, len(tags))
	for _, tag := range tags {
		groups = append(groups, Group{Tag: tag, Notes: byTag[tag]})
	}
	return groups
}

// StripFooter returns doc without its regeneration timestamp, so that two
// builds of the same notes can be compared.
func StripFooter(doc []byte) []byte {
	i := bytes.LastIndex(doc, []byte(footerPrefix))
	if i < 0 {
		return doc
	}
	return doc[:i]
}

func link(n core.Note) string {
	target := n.File
	if strings.ContainsAny(target, " ()") {
		target = "<" + target + ">"
	}
	return fmt.Sprintf("[%s](%s)", n.Title, target)
}

func codeList(tags []string) string {
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = "`" + t + "`"
	}
	return strings.Join(quoted, " ")
}

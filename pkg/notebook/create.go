package notebook

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/sheaf/pkg/core"
	"github.com/aretw0/sheaf/pkg/git"
	"github.com/aretw0/sheaf/pkg/index"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Create asks p for a title and tags, writes a new note and rebuilds the index.
//
// A blank title returns core.ErrCancelled and writes nothing. The returned
// Created carries the rebuild report; a rebuild failure is returned together
// with the Created value since the note itself was written.
func (s *Service) Create(ctx context.Context, p core.Prompter) (*core.Created, error) {
	rawTitle, err := p.Title(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read title: %w", err)
	}
	title := strings.TrimSpace(lineBreaks.Replace(rawTitle))
	if title == "" {
		return nil, core.ErrCancelled
	}

	rawTags, err := p.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	tags := ParseTagInput(rawTags, s.defaultTag)

	if err := s.repo.Initialize(ctx); err != nil {
		return nil, err
	}
	files, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seq, err := NextSequence(files)
	if err != nil {
		return nil, err
	}
	file := FileName(seq, title, s.seqWidth)
	created := s.now().Format(index.TimeLayout)

	data, err := render(s.template, s.templateData(file, seq, title, tags, created))
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, file, data); err != nil {
		return nil, err
	}
	s.logger.Debug("note created", "file", file, "tags", tags)

	if err := s.commit(ctx, git.FormatMessage(git.TypeDocs, "notes", "add "+file, ""), file); err != nil {
		return nil, err
	}

	out := &core.Created{
		File: file,
		Path: s.repo.Location(file),
		Note: core.Note{
			File:     file,
			Seq:      seq,
			Metadata: core.Metadata{Title: title, Tags: tags, Created: created},
		},
	}

	report, err := s.Rebuild(ctx)
	out.Report = report
	if err != nil {
		return out, fmt.Errorf("note created but index rebuild failed: %w", err)
	}
	return out, nil
}

// ParseTagInput splits user tag input on whitespace and commas. Characters
// that would break the header tag list are dropped. An empty result yields
// the default tag.
func ParseTagInput(raw, defaultTag string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '，'
	})

	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "[]`")
		if f != "" {
			tags = append(tags, f)
		}
	}
	if len(tags) == 0 && defaultTag != "" {
		tags = append(tags, defaultTag)
	}
	return tags
}

package notebook

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"text/template"
	"time"

	"github.com/aretw0/sheaf/pkg/core"
	"github.com/aretw0/sheaf/pkg/git"
	"github.com/aretw0/sheaf/pkg/index"
	"github.com/aretw0/sheaf/pkg/validate"
)

// Service handles the business logic of a notes directory.
type Service struct {
	repo       core.Repository
	validator  *validate.Validator
	builder    *index.Builder
	template   *template.Template
	logger     *slog.Logger
	now        func() time.Time
	defaultTag string
	seqWidth   int

	mu       sync.RWMutex
	lastScan *scanStats
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now, e.g. to make generated output deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithValidator sets the note validator.
func WithValidator(v *validate.Validator) Option {
	return func(s *Service) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithBuilder sets the index builder.
func WithBuilder(b *index.Builder) Option {
	return func(s *Service) {
		if b != nil {
			s.builder = b
		}
	}
}

// WithTemplate sets the template used for new notes.
func WithTemplate(t *template.Template) Option {
	return func(s *Service) {
		if t != nil {
			s.template = t
		}
	}
}

// WithDefaultTag sets the tag given to notes created without tags.
func WithDefaultTag(tag string) Option {
	return func(s *Service) {
		if tag != "" {
			s.defaultTag = tag
		}
	}
}

// WithSeqWidth sets the minimum number of digits of the file sequence prefix.
func WithSeqWidth(width int) Option {
	return func(s *Service) {
		if width > 0 {
			s.seqWidth = width
		}
	}
}

// New creates a Service on top of repo.
func New(repo core.Repository, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		validator:  validate.New(),
		builder:    index.New(),
		template:   DefaultTemplate(),
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
		defaultTag: DefaultTag,
		seqWidth:   3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repository returns the underlying repository.
func (s *Service) Repository() core.Repository {
	return s.repo
}

// Scan validates every note. Unreadable notes become invalid results; the
// scan itself only fails when the notes cannot be listed.
// Results are ordered by ascending file sequence, ties keeping listing order.
func (s *Service) Scan(ctx context.Context) (*core.Report, error) {
	files, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]core.Result, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := s.repo.Read(ctx, file)
		if err != nil {
			s.logger.Warn("failed to read note", "file", file, "error", err)
			results = append(results, validate.ReadError(file, err))
			continue
		}

		res := s.validator.Validate(file, data)
		s.logger.Debug("note validated", "file", file, "valid", res.Valid,
			"errors", len(res.Errors), "warnings", len(res.Warnings))
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Seq < results[j].Seq
	})

	report := &core.Report{
		Results:   results,
		IndexPath: s.repo.Location(""),
	}
	s.recordScan(report)
	return report, nil
}

// Rebuild scans the notes and regenerates the index from the valid ones.
// When no note is valid the index is left untouched and report.Skipped is
// core.ErrNoValidNotes.
func (s *Service) Rebuild(ctx context.Context) (*core.Report, error) {
	report, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}

	notes := report.Notes()
	if len(notes) == 0 {
		report.Skipped = core.ErrNoValidNotes
		s.logger.Debug("index not written", "reason", report.Skipped)
		return report, nil
	}

	doc := s.builder.Build(notes, s.now())

	previous, err := s.repo.ReadIndex(ctx)
	if err != nil {
		s.logger.Warn("failed to read previous index", "error", err)
		previous = nil
	}

	if err := s.repo.WriteIndex(ctx, doc); err != nil {
		return report, err
	}
	report.IndexWritten = true
	report.IndexChanged = previous == nil ||
		!bytes.Equal(index.StripFooter(previous), index.StripFooter(doc))

	s.logger.Debug("index written", "path", report.IndexPath,
		"notes", len(notes), "changed", report.IndexChanged)

	if report.IndexChanged {
		indexFile := filepath.Base(report.IndexPath)
		msg := git.FormatMessage(git.TypeDocs, "index", "regenerate "+indexFile,
			fmt.Sprintf("%d notes indexed", len(notes)))
		if err := s.commit(ctx, msg, indexFile); err != nil {
			return report, err
		}
	}
	return report, nil
}

// Notes returns the valid notes in chronological order, optionally only
// those carrying tag.
func (s *Service) Notes(ctx context.Context, tag string) ([]core.Note, error) {
	report, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}

	notes := report.Notes()
	if tag == "" {
		return notes, nil
	}

	filtered := notes[:0]
	for _, n := range notes {
		if n.HasTag(tag) {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func (s *Service) commit(ctx context.Context, reason string, files ...string) error {
	v, ok := s.repo.(core.Versioned)
	if !ok {
		return nil
	}
	if err := v.Commit(ctx, reason, files...); err != nil {
		return fmt.Errorf("failed to commit %v: %w", files, err)
	}
	return nil
}

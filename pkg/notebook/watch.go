package notebook

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/sheaf/pkg/core"
)

// ErrNotWatchable is returned by Watch when the repository cannot report changes.
var ErrNotWatchable = errors.New("repository does not support watching")

// Watch rebuilds the index on every change to the notes until ctx is done.
// Events arriving while a rebuild runs are coalesced into the next one.
// The returned channel is closed when watching stops.
func (s *Service) Watch(ctx context.Context) (<-chan *core.Report, error) {
	w, ok := s.repo.(core.Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	reports := make(chan *core.Report)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(reports)
		return s.rebuildLoop(ctx, events, reports)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watch stopped", "error", fmt.Errorf("rebuild loop: %w", err))
	}))
	return reports, nil
}

func (s *Service) rebuildLoop(ctx context.Context, events <-chan core.Event, reports chan<- *core.Report) error {
	for e := range events {
		s.logger.Debug("change detected", "event", e.String())
		if !drain(events) {
			return nil
		}

		report, err := s.Rebuild(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Error("rebuild failed", "error", err)
			continue
		}

		select {
		case reports <- report:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// drain discards queued events. It reports false once events is closed.
func drain(events <-chan core.Event) bool {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return false
			}
		default:
			return true
		}
	}
}

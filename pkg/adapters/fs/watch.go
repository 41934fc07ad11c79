package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/sheaf/pkg/core"
)

// Watch emits an event for every change to a note until ctx is done.
// Events for the same file are debounced; the channel is closed on shutdown.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.Path, err)
	}

	events := make(chan core.Event, 16)
	debounce := newDebouncer(r.config.Debounce)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer debounce.stopAndWait()
		defer watcher.Close()
		defer r.setWatcherActive(false)

		return r.watchLoop(ctx, watcher, debounce, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.handleWatchError(fmt.Errorf("watcher stopped: %w", err))
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, debounce *debouncer, events chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			r.processEvent(ctx, event, debounce, events)

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.handleWatchError(err)
		}
	}
}

// processEvent filters and maps a filesystem event, then hands it to the debouncer.
func (r *Repository) processEvent(ctx context.Context, event fsnotify.Event, debounce *debouncer, events chan<- core.Event) {
	name := filepath.Base(event.Name)
	if !r.isNote(name) {
		return
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return
	}

	r.config.Logger.Debug("note changed", "file", name, "op", event.Op.String())

	debounce.add(core.Event{
		Type:      eType,
		File:      name,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		select {
		case events <- e:
		case <-ctx.Done():
		}
	})
}

func (r *Repository) handleWatchError(err error) {
	r.config.Logger.Error("watch error", "error", err)
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}

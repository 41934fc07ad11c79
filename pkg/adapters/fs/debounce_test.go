package fs

import (
	"sync"
	"testing"
	"time"

	"github.com/aretw0/sheaf/pkg/core"
)

func TestDebouncer_CoalescesPerFile(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var (
		mu    sync.Mutex
		fired []core.Event
	)
	record := func(e core.Event) {
		mu.Lock()
		defer mu.Unlock()
		fired = append(fired, e)
	}

	d.add(core.Event{Type: core.EventCreate, File: "001-a.md"}, record)
	d.add(core.Event{Type: core.EventModify, File: "001-a.md"}, record)
	d.add(core.Event{Type: core.EventCreate, File: "002-b.md"}, record)

	time.Sleep(150 * time.Millisecond)
	d.stopAndWait()

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 2 {
		t.Fatalf("expected 2 events, got %d: %v", len(fired), fired)
	}
	for _, e := range fired {
		if e.File == "001-a.md" && e.Type != core.EventModify {
			t.Errorf("expected last event to win for 001-a.md, got %s", e.Type)
		}
	}
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	d := newDebouncer(time.Hour)

	called := false
	d.add(core.Event{File: "001-a.md"}, func(core.Event) { called = true })

	done := make(chan struct{})
	go func() {
		d.stopAndWait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stopAndWait blocked on a pending timer")
	}
	if called {
		t.Error("pending event fired after stop")
	}

	// Adding after stop is ignored.
	d.add(core.Event{File: "002-b.md"}, func(core.Event) { called = true })
	if called {
		t.Error("event fired after stop")
	}
}

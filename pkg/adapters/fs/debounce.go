package fs

import (
	"sync"
	"time"

	"github.com/aretw0/sheaf/pkg/core"
)

// debouncer delays events per file so that a burst of writes to the same
// note yields a single event carrying the last change.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire(e) after the delay, replacing any pending event for the same file.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if pending, ok := d.timers[e.File]; ok && pending.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[e.File] == timer {
			delete(d.timers, e.File)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			fire(e)
		}
	})
	d.timers[e.File] = timer
}

// stopAndWait drops pending events and waits for in-flight callbacks.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	for file, timer := range d.timers {
		if timer.Stop() {
			d.wg.Done()
		}
		delete(d.timers, file)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

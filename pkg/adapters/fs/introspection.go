package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	IndexFile     string     `json:"index_file"`
	Ignore        []string   `json:"ignore,omitempty"`
	Versioning    bool       `json:"versioning"`
	WatcherActive bool       `json:"watcher_active"`
	LastIndexed   *time.Time `json:"last_indexed,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.Path,
		IndexFile:     r.config.IndexFile,
		Ignore:        r.config.Ignore,
		Versioning:    r.config.Versioning,
		WatcherActive: r.watcherActive,
		LastIndexed:   r.lastIndexed,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordIndexed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastIndexed = &now
}

package fs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sheaf/pkg/adapters/fs"
	"github.com/aretw0/sheaf/pkg/core"
)

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, path := setupRepo(t)
	require.NoError(t, repo.Initialize(ctx))

	events, err := repo.Watch(ctx)
	require.NoError(t, err)
	assert.True(t, repo.State().(fs.RepositoryState).WatcherActive)

	// The index and non-notes are filtered out.
	writeFile(t, path, "INDEX.md", "index")
	writeFile(t, path, "scratch.txt", "x")
	writeFile(t, path, "001-a.md", "a")

	select {
	case e := <-events:
		assert.Equal(t, "001-a.md", e.File)
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}

	cancel()

	// The channel is closed once the watcher shuts down.
	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after cancel")
		}
	}
}

func TestWatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo, _ := setupRepo(t)
	_, err := repo.Watch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "", nil)

	unlock, err := client.Lock(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}

	lockPath := filepath.Join(tmpDir, ".sheaf.lock")
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		t.Error("Lock file not created")
	}

	unlock()

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("Lock file not removed after unlock")
	}
}

func TestClient_LockTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "held.lock", nil)
	client.LockTimeout = 30 * time.Millisecond

	unlock, err := client.Lock(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	defer unlock()

	if _, err := client.Lock(context.Background()); !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("expected ErrLockTimeout, got %v", err)
	}
}

func TestClient_LockCancelled(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "", nil)

	unlock, err := client.Lock(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Lock(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClient_InitAndCommit(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_AUTHOR_NAME", "sheaf")
	t.Setenv("GIT_AUTHOR_EMAIL", "sheaf@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "sheaf")
	t.Setenv("GIT_COMMITTER_EMAIL", "sheaf@example.com")

	ctx := context.Background()
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, "", nil)

	if err := client.Init(ctx); err != nil {
		t.Fatalf("Failed to init: %v", err)
	}
	if !client.IsRepo(ctx) {
		t.Fatal("expected a git work tree after init")
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "001-a.md"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := client.Add(ctx, "001-a.md"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := client.Commit(ctx, "docs: add 001-a", "001-a.md"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	status, err := client.Status(ctx, "001-a.md")
	if err != nil {
		t.Fatal(err)
	}
	if status != "" {
		t.Errorf("expected clean status after commit, got %q", status)
	}

	// Committing an unchanged file is a no-op.
	if err := client.Commit(ctx, "docs: noop", "001-a.md"); err != nil {
		t.Errorf("expected no-op commit, got %v", err)
	}
}

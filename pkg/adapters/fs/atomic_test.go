package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "INDEX.md")
		content := []byte("hello atomic")

		if err := writeFileAtomic(filename, content, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		if _, err := os.Stat(filename); os.IsNotExist(err) {
			t.Fatal("File was not created")
		}

		// No temp file may survive the rename.
		entries, _ := os.ReadDir(tmpDir)
		if len(entries) != 1 {
			t.Errorf("Expected only the target file, got %d entries", len(entries))
		}

		// Verify content
		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content 'hello atomic', got '%s'", string(got))
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.txt")

		// Initial write
		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		// Overwrite
		newContent := []byte("overwritten")
		if err := writeFileAtomic(filename, newContent, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		// Verify content
		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(newContent) {
			t.Errorf("Expected content 'overwritten', got '%s'", string(got))
		}
	})

	t.Run("Respects Permissions", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "perm.txt")

		if err := writeFileAtomic(filename, []byte("secret"), 0600); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		info, err := os.Stat(filename)
		if err != nil {
			t.Fatal(err)
		}

		t.Logf("File permissions: %v", info.Mode())
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "missing_folder", "test.txt")

		err := writeFileAtomic(filename, []byte("fail"), 0644)
		if err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})
}

func TestWriteFileExclusive(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "001-a.md")

		if err := writeFileExclusive(filename, []byte("note"), 0644); err != nil {
			t.Fatalf("writeFileExclusive failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "note" {
			t.Errorf("Expected 'note', got '%s'", got)
		}
	})

	t.Run("Refuses To Overwrite", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "001-a.md")
		if err := os.WriteFile(filename, []byte("original"), 0644); err != nil {
			t.Fatal(err)
		}

		err := writeFileExclusive(filename, []byte("replacement"), 0644)
		if !errors.Is(err, os.ErrExist) {
			t.Fatalf("Expected os.ErrExist, got %v", err)
		}

		got, _ := os.ReadFile(filename)
		if string(got) != "original" {
			t.Errorf("Existing file was modified: %s", got)
		}
	})
}

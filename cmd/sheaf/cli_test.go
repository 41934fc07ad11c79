package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sheaf/pkg/core"
)

// setupWorkspace writes a sheaf.yaml pointing at a notes directory next to it.
func setupWorkspace(t *testing.T) (configPath, notesDir string) {
	t.Helper()
	root := t.TempDir()
	configPath = filepath.Join(root, "sheaf.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("dir: notes\n"), 0644))
	return configPath, filepath.Join(root, "notes")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCLI_NewUpdateList(t *testing.T) {
	configPath, notesDir := setupWorkspace(t)

	output, err := run(t, "new", "--config", configPath, "--title", "First Note", "--tags", "go cli")
	require.NoError(t, err)
	assert.Contains(t, output, "文件名: 001-First Note.md")
	assert.FileExists(t, filepath.Join(notesDir, "001-First Note.md"))
	assert.FileExists(t, filepath.Join(notesDir, "INDEX.md"))

	output, err = run(t, "update", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, output, "  - 总文件数: 1")
	assert.Contains(t, output, "索引文件无需更新")

	output, err = run(t, "list", "--config", configPath, "--json", "--tag", "cli")
	require.NoError(t, err)
	var notes []core.Note
	require.NoError(t, json.Unmarshal([]byte(output), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "First Note", notes[0].Title)
}

func TestCLI_Check(t *testing.T) {
	configPath, notesDir := setupWorkspace(t)
	require.NoError(t, os.MkdirAll(notesDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(notesDir, "001-bad.md"), []byte("no header\n"), 0644))

	output, err := run(t, "check", "--config", configPath)
	assert.ErrorIs(t, err, errInvalidNotes)
	assert.Contains(t, output, "001-bad.md")
	assert.NoFileExists(t, filepath.Join(notesDir, "INDEX.md"))
}

func TestCLI_CheckMissingDir(t *testing.T) {
	configPath, notesDir := setupWorkspace(t)

	_, err := run(t, "check", "--config", configPath)
	assert.ErrorIs(t, err, core.ErrNotesDirMissing)
	assert.NoDirExists(t, notesDir)
}

func TestCLI_UpdateMissingDir(t *testing.T) {
	configPath, notesDir := setupWorkspace(t)

	output, err := run(t, "update", "--config", configPath)
	require.NoError(t, err, "update reports problems and exits 0")
	assert.Contains(t, output, "没有找到笔记文件")
	assert.NoDirExists(t, notesDir)
}

func TestCLI_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheaf.yaml")

	_, err := run(t, "init", "--config", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = run(t, "init", "--config", path)
	assert.Error(t, err, "existing config must not be replaced without --force")
}

func TestCLI_Version(t *testing.T) {
	output, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "sheaf version ")
}

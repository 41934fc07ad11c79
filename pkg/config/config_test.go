package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Empty Dir", func(c *Config) { c.Dir = "" }},
		{"Empty Index File", func(c *Config) { c.IndexFile = "" }},
		{"Index File With Path", func(c *Config) { c.IndexFile = "sub/INDEX.md" }},
		{"Index File Not Markdown", func(c *Config) { c.IndexFile = "INDEX.txt" }},
		{"Default Tag With Comma", func(c *Config) { c.DefaultTag = "a,b" }},
		{"Default Tag With Space", func(c *Config) { c.DefaultTag = "a b" }},
		{"Zero Seq Width", func(c *Config) { c.SeqWidth = 0 }},
		{"Huge Seq Width", func(c *Config) { c.SeqWidth = 12 }},
		{"Bad Glob", func(c *Config) { c.Ignore = []string{"[unclosed"} }},
		{"Negative Debounce", func(c *Config) { c.Debounce = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{SearchDirs: []string{t.TempDir()}})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	content := `dir: journal
index_file: README.md
seq_width: 4
ignore:
  - "draft-*"
debounce: 1s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheaf.yaml"), []byte(content), 0644))
	t.Setenv("SHEAF_DEFAULT_TAG", "inbox")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("seq-width", 3, "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--seq-width=5"}))

	cfg, err := Load(LoadOptions{SearchDirs: []string{dir}, Flags: flags})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "journal"), cfg.Dir, "relative dir resolves against the config file")
	assert.Equal(t, "README.md", cfg.IndexFile)
	assert.Equal(t, "inbox", cfg.DefaultTag, "environment overrides defaults")
	assert.Equal(t, 5, cfg.SeqWidth, "changed flag overrides the file")
	assert.Equal(t, []string{"draft-*"}, cfg.Ignore)
	assert.Equal(t, time.Second, cfg.Debounce)
}

func TestLoad_UnchangedFlagDoesNotOverrideFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheaf.yaml"), []byte("seq_width: 4\n"), 0644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("seq-width", 3, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(LoadOptions{SearchDirs: []string{dir}, Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.SeqWidth)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("index_file: INDEX.txt\n"), 0644))

	_, err := Load(LoadOptions{File: path})
	assert.ErrorContains(t, err, "invalid config")
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheaf.yaml")

	want := Default()
	want.Ignore = []string{"draft-*"}
	require.NoError(t, Write(path, want, false))

	assert.Error(t, Write(path, want, false), "refuses to overwrite")
	assert.NoError(t, Write(path, want, true))

	got, err := Load(LoadOptions{File: path})
	require.NoError(t, err)

	want.Dir = filepath.Join(dir, "notes")
	assert.Equal(t, want, got)
}

// Package config defines the configuration object shared by every sheaf
// component and loads it from a sheaf.yaml file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the base name of the configuration file, without extension.
const FileName = "sheaf"

// EnvPrefix prefixes environment overrides, e.g. SHEAF_DIR.
const EnvPrefix = "SHEAF"

// Config holds everything a sheaf notebook needs to know.
type Config struct {
	// Dir is the notes directory.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// IndexFile is the name of the generated index inside Dir.
	IndexFile string `mapstructure:"index_file" yaml:"index_file"`
	// IndexTitle is the heading of the generated index.
	IndexTitle string `mapstructure:"index_title" yaml:"index_title"`
	// DefaultTag is used when a new note is created without tags.
	DefaultTag string `mapstructure:"default_tag" yaml:"default_tag"`
	// SeqWidth is the minimum number of digits of the file sequence prefix.
	SeqWidth int `mapstructure:"seq_width" yaml:"seq_width"`
	// Ignore lists glob patterns of note file names to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty"`
	// Template is an optional text/template file for new notes.
	Template      string `mapstructure:"template" yaml:"template,omitempty"`
	TagsMarker    string `mapstructure:"tags_marker" yaml:"tags_marker"`
	ContentMarker string `mapstructure:"content_marker" yaml:"content_marker"`
	// Versioning commits new notes and the index with git.
	Versioning bool `mapstructure:"versioning" yaml:"versioning"`
	// Debounce delays index rebuilds in watch mode.
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dir:           "notes",
		IndexFile:     "INDEX.md",
		IndexTitle:    "📚 笔记索引",
		DefaultTag:    "未分类",
		SeqWidth:      3,
		TagsMarker:    "## 📌 标签",
		ContentMarker: "## 📝 内容",
		Debounce:      200 * time.Millisecond,
	}
}

// Validate checks the configuration for values the notebook cannot work with.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.IndexFile, validation.Required, validation.By(markdownFileName)),
		validation.Field(&c.DefaultTag, validation.Required, validation.By(tagSafe)),
		validation.Field(&c.SeqWidth, validation.Required, validation.Min(1), validation.Max(9)),
		validation.Field(&c.Ignore, validation.Each(validation.By(globPattern))),
		validation.Field(&c.TagsMarker, validation.Required),
		validation.Field(&c.ContentMarker, validation.Required),
		validation.Field(&c.Debounce, validation.Min(time.Duration(0))),
	)
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// File is an explicit config file. When empty, sheaf.yaml is searched
	// in SearchDirs and a missing file is not an error.
	File       string
	SearchDirs []string
	// Flags are bound by key name (e.g. a "dir" flag overrides dir).
	Flags *pflag.FlagSet
}

// Load builds a Config from defaults, the config file, SHEAF_* environment
// variables and changed flags, in increasing order of precedence.
// Relative paths found in the config file resolve against the file's directory.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		dirs := opts.SearchDirs
		if len(dirs) == 0 {
			dirs = []string{"."}
		}
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.Ignore) == 0 {
		cfg.Ignore = nil
	}

	if used := v.ConfigFileUsed(); used != "" {
		base := filepath.Dir(used)
		if v.InConfig("dir") && !flagChanged(opts.Flags, "dir") {
			cfg.Dir = resolve(base, cfg.Dir)
		}
		if v.InConfig("template") {
			cfg.Template = resolve(base, cfg.Template)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Write saves cfg as YAML to path. It refuses to replace an existing file
// unless force is set.
func Write(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return encoder.Close()
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("dir", d.Dir)
	v.SetDefault("index_file", d.IndexFile)
	v.SetDefault("index_title", d.IndexTitle)
	v.SetDefault("default_tag", d.DefaultTag)
	v.SetDefault("seq_width", d.SeqWidth)
	v.SetDefault("ignore", append([]string{}, d.Ignore...))
	v.SetDefault("template", d.Template)
	v.SetDefault("tags_marker", d.TagsMarker)
	v.SetDefault("content_marker", d.ContentMarker)
	v.SetDefault("versioning", d.Versioning)
	v.SetDefault("debounce", d.Debounce)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !isKey(key) || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	return bindErr
}

func isKey(key string) bool {
	switch key {
	case "dir", "index_file", "index_title", "default_tag", "seq_width", "ignore",
		"template", "tags_marker", "content_marker", "versioning", "debounce":
		return true
	}
	return false
}

func flagChanged(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func markdownFileName(value any) error {
	s, _ := value.(string)
	if filepath.Base(s) != s || strings.ContainsAny(s, `/\`) {
		return errors.New("must be a plain file name")
	}
	if filepath.Ext(s) != ".md" {
		return errors.New("must have the .md extension")
	}
	return nil
}

func tagSafe(value any) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, ",[]` \t") {
		return errors.New("must be a single word without commas, brackets or backticks")
	}
	return nil
}

func globPattern(value any) error {
	s, _ := value.(string)
	if !doublestar.ValidatePattern(s) {
		return fmt.Errorf("invalid glob pattern %q", s)
	}
	return nil
}

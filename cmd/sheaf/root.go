package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/internal/ui"
	"github.com/aretw0/sheaf/pkg/config"
	"github.com/aretw0/sheaf/pkg/notebook"
)

// skipConfig marks commands that run without loading sheaf.yaml.
const skipConfig = "skip-config"

var (
	verbose    bool
	noColor    bool
	configFile string

	cfg    config.Config
	out    *ui.Printer
	errOut *ui.Printer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sheaf",
	Short: "Create, validate and index numbered Markdown notes",
	Long: `sheaf keeps a directory of Markdown notes in shape.

Each note carries a header block (title, tags, created) and a fixed body layout.
sheaf creates notes from a template, checks every note and regenerates an index
grouping the valid notes by date and by tag.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
		out = ui.NewPrinter(stdout, ui.ColorEnabled(stdout, noColor))
		errOut = ui.NewPrinter(stderr, ui.ColorEnabled(stderr, noColor))

		if cmd.Annotations[skipConfig] != "" {
			return nil
		}

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		loaded, err := config.Load(config.LoadOptions{
			File:       configFile,
			SearchDirs: platform.SearchDirs(wd),
			Flags:      cmd.Flags(),
		})
		if err != nil {
			return err
		}
		cfg = loaded
		slog.Debug("config loaded", "dir", cfg.Dir, "index", cfg.IndexFile)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errOut == nil {
			errOut = ui.NewPrinter(os.Stderr, false)
		}
		if !errors.Is(err, errInvalidNotes) {
			errOut.Error(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: sheaf.yaml in the working directory or project root)")
	rootCmd.PersistentFlags().String("dir", config.Default().Dir, "Notes directory")
}

// openNotebook builds the notebook service from the loaded configuration.
func openNotebook(ctx context.Context, opts ...platform.Option) (*notebook.Service, error) {
	opts = append([]platform.Option{platform.WithLogger(slog.Default())}, opts...)
	return platform.New(ctx, cfg, opts...)
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the index whenever a note changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		nb, err := openNotebook(ctx,
			platform.WithAutoInit(true),
			platform.WithWatcherErrorHandler(func(err error) {
				errOut.Error(err)
			}),
		)
		if err != nil {
			return err
		}

		report, err := nb.Rebuild(ctx)
		if err != nil {
			return err
		}
		printWatchReport(report)

		reports, err := nb.Watch(ctx)
		if err != nil {
			return err
		}
		out.Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", cfg.Dir))

		for report := range reports {
			printWatchReport(report)
		}
		slog.Debug("watch stopped")
		return nil
	},
}

func printWatchReport(r *core.Report) {
	stamp := out.Muted(time.Now().Format(time.TimeOnly))
	line := fmt.Sprintf("%d notes, %d valid, %d invalid, %d with warnings",
		r.Total(), len(r.Valid()), len(r.Invalid()), len(r.WithWarnings()))

	switch {
	case errors.Is(r.Skipped, core.ErrNoValidNotes):
		out.Warning(fmt.Sprintf("%s %s, index not written", stamp, line))
	case r.IndexChanged:
		out.Success(fmt.Sprintf("%s %s, index updated", stamp, line))
	default:
		out.Info(fmt.Sprintf("%s %s, index unchanged", stamp, line))
	}
	for _, res := range r.Invalid() {
		for _, e := range res.Errors {
			fmt.Fprintf(out.Writer(), "   %s %s: %s\n", out.Fail("✗"), res.File, e)
		}
	}
}

func init() {
	watchCmd.Flags().Duration("debounce", 0, "Delay before rebuilding after a change (default from config)")
	rootCmd.AddCommand(watchCmd)
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/internal/platform"
)

// errInvalidNotes makes check exit non-zero. The report already explains it.
var errInvalidNotes = errors.New("invalid notes found")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate all notes without touching the index",
	Long:  `Validate all notes and print the report. Exits with status 1 when a note is invalid.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		nb, err := openNotebook(ctx, platform.WithMustExist(true))
		if err != nil {
			return err
		}

		report, err := nb.Scan(ctx)
		if err != nil {
			return err
		}
		if report.Total() == 0 {
			out.Warning("没有找到笔记文件")
			return nil
		}

		out.Counters(report)
		out.Problems(report)
		out.Summary(report)

		if n := len(report.Invalid()); n > 0 {
			return fmt.Errorf("%w: %d", errInvalidNotes, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/pkg/core"
)

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"index"},
	Short:   "Validate all notes and rebuild the index",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out.Banner("🔄 笔记更新器")
		out.Step(1, 2, "扫描笔记文件并检查格式...")
		fmt.Fprintln(out.Writer())

		nb, err := openNotebook(ctx)
		if err != nil {
			errOut.Error(err)
			return nil
		}

		report, err := nb.Rebuild(ctx)
		if errors.Is(err, core.ErrNotesDirMissing) {
			errOut.Error(err)
			out.Warning("没有找到笔记文件")
			return nil
		}
		if report == nil {
			errOut.Error(err)
			return nil
		}
		if report.Total() == 0 {
			out.Warning("没有找到笔记文件")
			return nil
		}

		out.Counters(report)
		out.Problems(report)
		if len(report.Valid()) > 0 {
			out.Step(2, 2, "更新索引文件...")
			fmt.Fprintln(out.Writer())
		}
		if err != nil {
			errOut.Error(fmt.Errorf("更新索引文件失败: %w", err))
		} else {
			out.IndexOutcome(report)
		}
		out.Summary(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

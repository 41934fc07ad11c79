package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/pkg/core"
	"github.com/aretw0/sheaf/pkg/prompt"
)

var (
	newTitle string
	newTags  string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new note",
	Long: `Create a new note from the template and rebuild the index.

Without --title the title and tags are asked interactively: a form on a
terminal, plain line prompts when input is piped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out.Banner("📝 笔记生成器")

		nb, err := openNotebook(ctx, platform.WithAutoInit(true))
		if err != nil {
			errOut.Error(err)
			return nil
		}

		var p core.Prompter
		if cmd.Flags().Changed("title") {
			p = prompt.Static{TitleValue: newTitle, TagsValue: newTags}
		} else {
			p = prompt.Auto(os.Stdin, cmd.OutOrStdout(), prompt.DefaultTagHint)
		}

		created, err := nb.Create(ctx, p)
		if errors.Is(err, core.ErrCancelled) {
			out.Warning("标题不能为空，已取消")
			return nil
		}
		if created == nil {
			errOut.Error(err)
			return nil
		}

		out.Created(created)
		if err != nil {
			errOut.Error(err)
			return nil
		}
		if created.Report != nil {
			out.IndexOutcome(created.Report)
		}
		out.Success("🎉 完成！")
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title (skips the interactive prompt)")
	newCmd.Flags().StringVar(&newTags, "tags", "", `Space separated tags, e.g. "Go 服务端"`)
	rootCmd.AddCommand(newCmd)
}

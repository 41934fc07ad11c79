package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/pkg/core"
)

var (
	listJSON  bool
	filterTag string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List valid notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		nb, err := openNotebook(ctx, platform.WithMustExist(true))
		if err != nil {
			return err
		}

		notes, err := nb.Notes(ctx, filterTag)
		if err != nil {
			return err
		}

		if listJSON {
			if notes == nil {
				notes = []core.Note{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(notes)
		}

		out.Notes(notes)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterTag, "tag", "", "Filter notes by tag")
	rootCmd.AddCommand(listCmd)
}

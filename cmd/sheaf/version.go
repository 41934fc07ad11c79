package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version number of sheaf",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfig: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sheaf version %s\n", strings.TrimSpace(sheaf.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

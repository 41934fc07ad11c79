package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/pkg/config"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a default sheaf.yaml",
	Long:        `Write a sheaf.yaml holding the default configuration in the current directory, or at --config.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			path = config.FileName + ".yaml"
		}

		defaults := config.Default()
		if f := cmd.Flags().Lookup("dir"); f != nil && f.Changed {
			defaults.Dir = f.Value.String()
		}

		if err := config.Write(path, defaults, initForce); err != nil {
			return err
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		out.Success(fmt.Sprintf("Wrote %s", abs))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bloodmagesoftware/foldout/project"
	"github.com/spf13/cobra"
)

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a foldout.yaml with the default settings",
	Long:  `Writes a foldout.yaml holding every setting with its default value into the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		configPath := filepath.Join(cwd, project.FileName())
		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("%s already exists, use --force to overwrite it", configPath)
		}

		path, err := project.Default().Save(cwd)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing foldout.yaml")
}

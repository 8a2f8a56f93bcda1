package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foldout",
	Short: "Foldout - Paper craft patterns from 3D models",
	Long: `Foldout turns a triangulated STL model into printable paper craft patterns.
It unfolds the surface along a spanning tree of its facets, cuts the net
wherever it overlaps itself and packs the pieces onto as few sheets as it can.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

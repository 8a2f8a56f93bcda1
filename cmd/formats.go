package cmd

import (
	"fmt"

	"github.com/bloodmagesoftware/foldout/packing"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the known paper formats",
	Long:  `Lists the ISO 216 A series. Any other size can be given as <width>x<height> in millimeters, and every format takes a -landscape suffix.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, f := range packing.ISOASeries() {
			fmt.Printf("%-4s %5.0f x %5.0f mm\n", f.Name, f.Width, f.Height)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

package cmd

import (
	"fmt"

	"github.com/bloodmagesoftware/foldout/meshio"
	"github.com/bloodmagesoftware/foldout/pipeline"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info {model.stl}",
	Short: "Print the facet tree statistics of a model",
	Long: `Links the facets of an STL model into a spanning tree, unfolds and slices it
with the same settings as unfold, then prints how healthy the tree is and
how large the pieces of the net are.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, projectRoot, err := loadConfig()
		if err != nil {
			return err
		}
		if err := applyPatternFlags(cmd, config, projectRoot); err != nil {
			return err
		}

		triangles, err := meshio.ReadFile(args[0])
		if err != nil {
			return err
		}

		result, err := pipeline.Unfold(cmd.Context(), triangles, config)
		if err != nil {
			return fmt.Errorf("unfolding %s: %w", args[0], err)
		}

		fmt.Println(result.Mesh)
		fmt.Printf("islands:   %d\n", len(result.Islands))
		for _, island := range result.Islands {
			fmt.Printf("  island %d: %d facets, %.1fx%.1f\n",
				island.Root, len(result.Pool.IslandFacets(island.Root)), island.Width(), island.Height())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	addPatternFlags(infoCmd)
}

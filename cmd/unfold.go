package cmd

import (
	"fmt"
	"log"

	"github.com/bloodmagesoftware/foldout/pipeline"
	"github.com/spf13/cobra"
)

var (
	unfoldVerbose bool
)

var unfoldCmd = &cobra.Command{
	Use:   "unfold {model.stl}",
	Short: "Unfold a model into paper sheets",
	Long: `Reads an STL model, unfolds it into flat pieces without overlaps and
writes one SVG sheet per page into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, projectRoot, err := loadConfig()
		if err != nil {
			return err
		}
		if err := applyPatternFlags(cmd, config, projectRoot); err != nil {
			return err
		}

		fmt.Printf("Unfolding %s onto %s paper...\n", args[0], config.Paper)
		result, err := pipeline.RunFile(cmd.Context(), args[0], config)
		if err != nil {
			return fmt.Errorf("unfolding %s: %w", args[0], err)
		}

		if result.Mesh.Isolated > 0 {
			log.Printf("warning: %d facets share no edge with the rest of the model and were left out", result.Mesh.Isolated)
		}
		if result.Mesh.Unfolded < result.Mesh.Linked {
			log.Printf("warning: max depth %d left %d facets folded", config.MaxDepth, result.Mesh.Linked-result.Mesh.Unfolded)
		}

		if unfoldVerbose {
			fmt.Println(result.Mesh)
			for _, t := range result.Timings {
				fmt.Printf("  %-9s %v\n", t.Stage+":", t.Duration)
			}
			fmt.Printf("  %-9s %v\n", "total:", result.Total())
		}

		fmt.Printf("%d pieces, %d cuts\n", len(result.Islands), result.Mesh.Cuts)
		fmt.Println(result.Packing)

		written, err := result.Write(config)
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		for _, path := range written.Sheets {
			fmt.Printf("  Wrote: %s\n", path)
		}
		for _, path := range written.Rasters {
			fmt.Printf("  Wrote: %s\n", path)
		}
		for _, path := range written.Projections {
			fmt.Printf("  Wrote: %s\n", path)
		}

		fmt.Printf("✅ Unfolded %s onto %d sheets\n", result.Name, len(result.Bins))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unfoldCmd)
	addPatternFlags(unfoldCmd)
	unfoldCmd.Flags().BoolVarP(&unfoldVerbose, "verbose", "v", false, "Print pool statistics and stage timings")
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bloodmagesoftware/foldout/project"
	"github.com/spf13/cobra"
)

// getProjectRoot returns the project root directory by looking for foldout.yaml.
func getProjectRoot() (string, error) {
	return project.FindProjectRoot()
}

// loadConfig loads foldout.yaml from the project root. Without one, the
// defaults apply and the working directory acts as project root.
func loadConfig() (*project.Config, string, error) {
	projectRoot, err := getProjectRoot()
	if errors.Is(err, project.ErrConfigNotFound) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("getting current directory: %w", err)
		}
		return project.Default(), cwd, nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting project root: %w", err)
	}

	config, err := project.LoadConfig(projectRoot)
	if err != nil {
		return nil, "", fmt.Errorf("loading project config: %w", err)
	}
	fmt.Printf("Using %s\n", filepath.Join(projectRoot, project.FileName()))
	return config, projectRoot, nil
}

// patternFlags are the configuration overrides shared by the commands that
// run the pipeline.
var patternFlags struct {
	paper      string
	scale      float64
	resolution float64
	maxDepth   int
	output     string
	svgDebug   bool
	raster     bool
	archive    bool
	projection bool
}

func addPatternFlags(cmd *cobra.Command) {
	defaults := project.Default()
	cmd.Flags().StringVarP(&patternFlags.paper, "paper", "p", defaults.Paper, "Paper format (A<n> or <width>x<height> in mm, optionally -landscape)")
	cmd.Flags().Float64VarP(&patternFlags.scale, "scale", "s", defaults.WorldScaling, "Scale applied to the model")
	cmd.Flags().Float64VarP(&patternFlags.resolution, "resolution", "f", defaults.Resolution, "Coordinate multiplier of the written sheets")
	cmd.Flags().IntVarP(&patternFlags.maxDepth, "max-depth", "d", defaults.MaxDepth, "Maximum depth of the unfolded facet tree (negative for unlimited)")
	cmd.Flags().StringVarP(&patternFlags.output, "output", "o", defaults.Output.Directory, "Output directory")
	cmd.Flags().BoolVar(&patternFlags.svgDebug, "svg-debug", false, "Draw piece outlines and corner candidates on the sheets")
	cmd.Flags().BoolVar(&patternFlags.raster, "raster", false, "Also write a QOI raster of every sheet")
	cmd.Flags().BoolVar(&patternFlags.archive, "archive", false, "Bundle all written files into a zip archive")
	cmd.Flags().BoolVar(&patternFlags.projection, "projection", false, "Also write front, top and side views of the model")
}

// applyPatternFlags overrides the configuration with every flag that was set
// explicitly and resolves the output directory against projectRoot.
func applyPatternFlags(cmd *cobra.Command, config *project.Config, projectRoot string) error {
	flags := cmd.Flags()
	if flags.Changed("paper") {
		config.Paper = patternFlags.paper
	}
	if flags.Changed("scale") {
		config.WorldScaling = patternFlags.scale
	}
	if flags.Changed("resolution") {
		config.Resolution = patternFlags.resolution
	}
	if flags.Changed("max-depth") {
		config.MaxDepth = patternFlags.maxDepth
	}
	if flags.Changed("output") {
		config.Output.Directory = patternFlags.output
	}
	if flags.Changed("svg-debug") {
		config.Output.SVGDebug = patternFlags.svgDebug
	}
	if flags.Changed("raster") {
		config.Output.Raster = patternFlags.raster
	}
	if flags.Changed("archive") {
		config.Output.Archive = patternFlags.archive
	}
	if flags.Changed("projection") {
		config.Output.Projection = patternFlags.projection
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !filepath.IsAbs(config.Output.Directory) {
		config.Output.Directory = filepath.Join(projectRoot, config.Output.Directory)
	}
	return nil
}

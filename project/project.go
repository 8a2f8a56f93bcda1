package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bloodmagesoftware/foldout/geom"
	"github.com/bloodmagesoftware/foldout/mesh"
	"github.com/bloodmagesoftware/foldout/packing"
	"gopkg.in/yaml.v3"
)

const configFileName = "foldout.yaml"

// ErrConfigNotFound is returned when no foldout.yaml exists in the working
// directory or any of its parents.
var ErrConfigNotFound = errors.New(configFileName + " not found")

// Config represents the project configuration from foldout.yaml.
type Config struct {
	// Name is used for the sheet files and the archive. Defaults to the
	// model file name.
	Name string `yaml:"name,omitempty"`
	// Paper is "A<n>" or "<width>x<height>" in millimeters, optionally
	// followed by "-landscape".
	Paper string `yaml:"paper"`
	// WorldScaling multiplies the model size before slicing.
	WorldScaling float64 `yaml:"world_scaling"`
	// Resolution multiplies the sheet coordinates when writing them.
	Resolution float64 `yaml:"resolution"`
	// MaxDepth limits how many levels of the facet tree get unfolded.
	// Negative means unlimited.
	MaxDepth   int             `yaml:"max_depth"`
	Tolerances geom.Tolerances `yaml:"tolerances"`
	Output     Output          `yaml:"output"`
}

// Output selects what gets written next to the sheets.
type Output struct {
	Directory string `yaml:"directory"`
	// SVGDebug draws box outlines and corner candidates on every sheet.
	SVGDebug bool `yaml:"svg_debug"`
	// Raster writes a QOI preview of every sheet.
	Raster bool `yaml:"raster"`
	// Archive zips all written files.
	Archive bool `yaml:"archive"`
	// Projection writes front, top and side views of the model.
	Projection bool `yaml:"projection"`
}

// Default returns the configuration used when no foldout.yaml exists.
func Default() *Config {
	return &Config{
		Paper:        "A4",
		WorldScaling: 1,
		Resolution:   1,
		MaxDepth:     mesh.Unlimited,
		Tolerances:   geom.DefaultTolerances(),
		Output: Output{
			Directory: "out",
		},
	}
}

// FindProjectRoot walks up from the current working directory looking for foldout.yaml.
// Returns the directory containing foldout.yaml, or an error wrapping ErrConfigNotFound.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return findFrom(cwd)
}

func findFrom(start string) (string, error) {
	dir := start
	for {
		configPath := filepath.Join(dir, configFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("searching parents of %s: %w", start, ErrConfigNotFound)
		}
		dir = parent
	}
}

// LoadConfig loads and parses the foldout.yaml file from the given project root.
// Missing keys keep their default value.
func LoadConfig(projectRoot string) (*Config, error) {
	configPath := filepath.Join(projectRoot, configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", configFileName, err)
	}

	return config, nil
}

// Validate checks the values that the pipeline cannot work with.
func (c *Config) Validate() error {
	if _, err := c.PaperFormat(); err != nil {
		return fmt.Errorf("'paper': %w", err)
	}
	if !(c.WorldScaling > 0) {
		return fmt.Errorf("'world_scaling' must be positive, got %g", c.WorldScaling)
	}
	if !(c.Resolution > 0) {
		return fmt.Errorf("'resolution' must be positive, got %g", c.Resolution)
	}
	t := c.Tolerances
	if !(t.VertexDistance > 0) || !(t.OverlapMargin > 0) || !(t.Simplify > 0) || !(t.Parallel > 0) {
		return fmt.Errorf("'tolerances' must all be positive, got %+v", t)
	}
	if t.OverlapMargin >= 0.5 {
		return fmt.Errorf("'tolerances.overlap_margin' must be below 0.5, got %g", t.OverlapMargin)
	}
	if c.Output.Directory == "" {
		return fmt.Errorf("'output.directory' is required")
	}
	return nil
}

// PaperFormat parses the configured paper.
func (c *Config) PaperFormat() (packing.Format, error) {
	return packing.ParseFormat(c.Paper)
}

// Marshal encodes the configuration the way foldout.yaml is written.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", configFileName, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", configFileName, err)
	}
	return buf.Bytes(), nil
}

// Save writes the configuration as foldout.yaml into dir.
func (c *Config) Save(dir string) (string, error) {
	data, err := c.Marshal()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", configFileName, err)
	}
	return path, nil
}

// FileName is the name of the configuration file.
func FileName() string {
	return configFileName
}

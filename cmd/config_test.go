package cmd

import (
	"path/filepath"
	"testing"

	"github.com/bloodmagesoftware/foldout/project"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatternCmd() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	addPatternFlags(c)
	return c
}

func TestApplyPatternFlagsOverridesOnlySetFlags(t *testing.T) {
	c := newPatternCmd()
	require.NoError(t, c.ParseFlags([]string{"-p", "A3-landscape", "--raster", "-d", "4"}))

	config := project.Default()
	config.WorldScaling = 2
	require.NoError(t, applyPatternFlags(c, config, "/models"))

	assert.Equal(t, "A3-landscape", config.Paper)
	assert.True(t, config.Output.Raster)
	assert.Equal(t, 4, config.MaxDepth)
	assert.Equal(t, 2.0, config.WorldScaling)
	assert.Equal(t, filepath.Join("/models", "out"), config.Output.Directory)
}

func TestApplyPatternFlagsValidates(t *testing.T) {
	c := newPatternCmd()
	require.NoError(t, c.ParseFlags([]string{"--scale", "0"}))

	assert.Error(t, applyPatternFlags(c, project.Default(), "/models"))
}

func TestInfoSharesPatternFlags(t *testing.T) {
	for _, c := range []*cobra.Command{unfoldCmd, infoCmd, previewCmd} {
		for _, name := range []string{"paper", "scale", "max-depth", "output"} {
			assert.NotNil(t, c.Flags().Lookup(name), "%s --%s", c.Name(), name)
		}
	}
}

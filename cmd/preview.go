package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/widget/material"
	"github.com/bloodmagesoftware/foldout/export"
	"github.com/bloodmagesoftware/foldout/pipeline"
	"github.com/bloodmagesoftware/foldout/preview"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview {model.stl | sheet-directory}",
	Short: "Show the sheets of a model in a window",
	Long: `Unfolds an STL model in memory and shows its sheets in a window. Given a
directory instead, shows the QOI sheets written there by "unfold --raster".
Use the arrow keys or the buttons to page through the sheets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sheets []preview.Sheet

		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			log.Printf("loading sheets from %s", args[0])
			sheets, err = preview.LoadDir(args[0])
			if err != nil {
				return err
			}
		} else {
			config, projectRoot, err := loadConfig()
			if err != nil {
				return err
			}
			if err := applyPatternFlags(cmd, config, projectRoot); err != nil {
				return err
			}

			result, err := pipeline.RunFile(cmd.Context(), args[0], config)
			if err != nil {
				return fmt.Errorf("unfolding %s: %w", args[0], err)
			}
			opts := export.Options{Resolution: config.Resolution, Debug: config.Output.SVGDebug}
			for _, bin := range result.Bins {
				sheets = append(sheets, preview.Sheet{
					Name:  export.SheetName(result.Name, bin),
					Image: export.Rasterize(result.Pool, bin, opts),
				})
			}
		}

		if len(sheets) == 0 {
			return fmt.Errorf("no sheets to show in %s", args[0])
		}
		log.Printf("showing %d sheets", len(sheets))

		go func() {
			window := new(app.Window)
			window.Option(app.Title("foldout"))
			window.Perform(system.ActionMaximize)
			err := run(window, sheets)
			if err != nil {
				log.Fatal(err)
			}
			os.Exit(0)
		}()
		app.Main()

		return nil
	},
}

func run(window *app.Window, sheets []preview.Sheet) error {
	theme := material.NewTheme()
	viewer := preview.New(theme, sheets)

	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			// This graphics context is used for managing the rendering state.
			gtx := app.NewContext(&ops, e)

			viewer.Layout(gtx)

			// Pass the drawing operations to the GPU.
			e.Frame(gtx.Ops)
		}
	}
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addPatternFlags(previewCmd)
}

// Package preview shows rasterized sheets in a desktop window.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	barColor     = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	deskColor    = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	textColor    = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	buttonColor  = color.NRGBA{R: 60, G: 120, B: 200, A: 255}
	iconColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	barHeightDp  = unit.Dp(40)
	deskMarginDp = unit.Dp(16)
)

// Sheet is one page of the preview.
type Sheet struct {
	Name  string
	Image image.Image
}

// Viewer pages through sheets, one at a time.
type Viewer struct {
	theme  *material.Theme
	sheets []Sheet
	images []paint.ImageOp // uploaded once, reused every frame

	current int

	prevButton widget.Clickable
	nextButton widget.Clickable
	prevIcon   *widget.Icon
	nextIcon   *widget.Icon
}

// New creates a viewer showing the first sheet.
func New(theme *material.Theme, sheets []Sheet) *Viewer {
	prevIcon, err := widget.NewIcon(icons.NavigationChevronLeft)
	if err != nil {
		log.Printf("Failed to load previous icon: %v", err)
	}
	nextIcon, err := widget.NewIcon(icons.NavigationChevronRight)
	if err != nil {
		log.Printf("Failed to load next icon: %v", err)
	}

	images := make([]paint.ImageOp, len(sheets))
	for i, s := range sheets {
		images[i] = paint.NewImageOp(s.Image)
	}

	return &Viewer{
		theme:    theme,
		sheets:   sheets,
		images:   images,
		prevIcon: prevIcon,
		nextIcon: nextIcon,
	}
}

// Current returns the index of the shown sheet.
func (v *Viewer) Current() int {
	return v.current
}

// Next shows the following sheet, wrapping around after the last one.
func (v *Viewer) Next() {
	if len(v.sheets) == 0 {
		return
	}
	v.current = (v.current + 1) % len(v.sheets)
}

// Prev shows the preceding sheet, wrapping around before the first one.
func (v *Viewer) Prev() {
	if len(v.sheets) == 0 {
		return
	}
	v.current = (v.current + len(v.sheets) - 1) % len(v.sheets)
}

// Title describes the shown sheet.
func (v *Viewer) Title() string {
	if len(v.sheets) == 0 {
		return "No sheets"
	}
	return fmt.Sprintf("Sheet %d/%d: %s", v.current+1, len(v.sheets), v.sheets[v.current].Name)
}

// Layout renders the top bar and the current sheet.
func (v *Viewer) Layout(gtx layout.Context) layout.Dimensions {
	event.Op(gtx.Ops, v)

	// arrow keys page as well
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameLeftArrow},
			key.Filter{Name: key.NameRightArrow},
		)
		if !ok {
			break
		}
		if ev, ok := ev.(key.Event); ok && ev.State == key.Press {
			switch ev.Name {
			case key.NameLeftArrow:
				v.Prev()
			case key.NameRightArrow:
				v.Next()
			}
		}
	}

	if v.prevButton.Clicked(gtx) {
		v.Prev()
	}
	if v.nextButton.Clicked(gtx) {
		v.Next()
	}

	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(v.layoutTopBar),
		layout.Flexed(1, v.layoutSheet),
	)
}

func (v *Viewer) layoutTopBar(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min = gtx.Constraints.Max
	gtx.Constraints.Min.Y = gtx.Dp(barHeightDp)
	gtx.Constraints.Max.Y = gtx.Constraints.Min.Y

	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
			paint.ColorOp{Color: barColor}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{
				Axis:      layout.Horizontal,
				Alignment: layout.Middle,
			}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return v.iconButton(gtx, &v.prevButton, v.prevIcon, "Previous sheet")
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return v.iconButton(gtx, &v.nextButton, v.nextIcon, "Next sheet")
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						label := material.Body1(v.theme, v.Title())
						label.Color = textColor
						return label.Layout(gtx)
					})
				}),
			)
		},
	)
}

func (v *Viewer) iconButton(gtx layout.Context, btn *widget.Clickable, icon *widget.Icon, description string) layout.Dimensions {
	// Only show button if icon loaded successfully
	if icon == nil {
		return layout.Dimensions{}
	}
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		b := material.IconButton(v.theme, btn, icon, description)
		b.Background = buttonColor
		b.Color = iconColor
		b.Size = unit.Dp(20)
		b.Inset = layout.UniformInset(unit.Dp(4))
		return b.Layout(gtx)
	})
}

// layoutSheet draws the current sheet as large as fits, centered.
func (v *Viewer) layoutSheet(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	paint.ColorOp{Color: deskColor}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	if len(v.images) == 0 {
		return layout.Dimensions{Size: size}
	}

	img := v.images[v.current]
	imgSize := img.Size()
	margin := float32(gtx.Dp(deskMarginDp))
	scale := min(
		(float32(size.X)-2*margin)/float32(imgSize.X),
		(float32(size.Y)-2*margin)/float32(imgSize.Y),
	)
	if scale <= 0 {
		return layout.Dimensions{Size: size}
	}

	offsetX := (float32(size.X) - scale*float32(imgSize.X)) / 2
	offsetY := (float32(size.Y) - scale*float32(imgSize.Y)) / 2

	stack := op.Affine(f32.Affine2D{}.Offset(f32.Point{X: offsetX, Y: offsetY})).Push(gtx.Ops)
	scaleOp := op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Point{X: scale, Y: scale})).Push(gtx.Ops)
	imgClip := clip.Rect{Max: imgSize}.Push(gtx.Ops)

	img.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	imgClip.Pop()
	scaleOp.Pop()
	stack.Pop()

	return layout.Dimensions{Size: size}
}

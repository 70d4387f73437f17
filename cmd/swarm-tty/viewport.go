package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/maskecs/internal/swarm"
)

// viewport maps canvas pixels onto terminal cells.
type viewport struct {
	canvasW, canvasH float64
	cols, rows       int
}

func newViewport(screen interface{ Size() (int, int) }, cfg swarm.Config) *viewport {
	v := &viewport{canvasW: cfg.Width, canvasH: cfg.Height}
	v.resize(screen.Size())
	return v
}

func (v *viewport) resize(cols, rows int) {
	v.cols, v.rows = cols, rows
}

func (v *viewport) toCell(x, y float64) (int, int) {
	col := int(math.Floor(x / v.canvasW * float64(v.cols)))
	row := int(math.Floor(y / v.canvasH * float64(v.rows)))
	return col, row
}

// toCanvas returns the canvas point at the center of a cell.
func (v *viewport) toCanvas(col, row int) (float64, float64) {
	if v.cols == 0 || v.rows == 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) / float64(v.cols) * v.canvasW
	y := (float64(row) + 0.5) / float64(v.rows) * v.canvasH
	return x, y
}

func (v *viewport) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.cols && row < v.rows
}

type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// draw replays the display list. Rings are hitbox outlines too faint to be
// useful at cell resolution and are skipped.
func (v *viewport) draw(screen cellSetter, shapes []swarm.Shape) {
	for _, s := range shapes {
		if s.Kind != swarm.ShapeDisc {
			continue
		}
		col, row := v.toCell(s.X, s.Y)
		if !v.inside(col, row) {
			continue
		}
		r, style, ok := glyph(s.Color)
		if !ok {
			continue
		}
		screen.SetContent(col, row, r, nil, style)
	}
}

// glyph picks a rune and style for a disc colour. Black discs are agents,
// premultiplied white ones are trail points fading with their alpha.
// Fully transparent discs are not drawn.
func glyph(c color.RGBA) (rune, tcell.Style, bool) {
	switch {
	case c.A == 0:
		return 0, tcell.StyleDefault, false
	case c.R == 0 && c.G == 0 && c.B == 0:
		return '●', tcell.StyleDefault.Foreground(tcell.ColorRed), true
	}
	gray := int32(c.A)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(gray, gray, gray))
	if c.A > 128 {
		return '•', style, true
	}
	return '·', style, true
}

package main

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/maskecs/internal/swarm"
)

type fixedSize struct{ cols, rows int }

func (f fixedSize) Size() (int, int) { return f.cols, f.rows }

type recordedCell struct {
	col, row int
	r        rune
}

type cellRecorder struct{ cells []recordedCell }

func (c *cellRecorder) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c.cells = append(c.cells, recordedCell{x, y, primary})
}

func TestViewportMapping(t *testing.T) {
	cfg := swarm.DefaultConfig()
	v := newViewport(fixedSize{80, 30}, cfg)

	col, row := v.toCell(0, 0)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	col, row = v.toCell(cfg.Width-1, cfg.Height-1)
	assert.Equal(t, 79, col)
	assert.Equal(t, 29, row)

	x, y := v.toCanvas(40, 15)
	assert.InDelta(t, 405, x, 0.001)
	assert.InDelta(t, 310, y, 0.001)

	col, row = v.toCell(x, y)
	assert.Equal(t, 40, col)
	assert.Equal(t, 15, row)

	v.resize(0, 0)
	x, y = v.toCanvas(3, 3)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestViewportDraw(t *testing.T) {
	v := newViewport(fixedSize{80, 30}, swarm.DefaultConfig())

	var list swarm.DisplayList
	list.Ring(100, 100, 50, color.RGBA{A: 20})
	list.Disc(100, 100, 5, color.RGBA{A: 100})
	list.Disc(10, 10, 5, color.RGBA{R: 200, G: 200, B: 200, A: 200})
	list.Disc(20, 20, 5, color.RGBA{R: 50, G: 50, B: 50, A: 50})
	list.Disc(30, 30, 5, color.RGBA{})
	list.Disc(-10, 900, 5, color.RGBA{A: 100})

	rec := &cellRecorder{}
	v.draw(rec, list.Shapes)

	assert.Equal(t, []recordedCell{
		{10, 5, '●'},
		{1, 0, '•'},
		{2, 1, '·'},
	}, rec.cells)
}

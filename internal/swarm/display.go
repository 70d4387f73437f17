package swarm

import "image/color"

// ShapeKind selects how a Shape is drawn.
type ShapeKind int

const (
	// ShapeDisc is a filled circle.
	ShapeDisc ShapeKind = iota
	// ShapeRing is a circle outline.
	ShapeRing
)

// Shape is one drawing instruction, in canvas pixels.
type Shape struct {
	Kind  ShapeKind
	X, Y  float64
	R     float64
	Color color.RGBA
}

// DisplayList collects the shapes emitted by the render systems of one tick.
// Drivers replay it onto their own surface.
type DisplayList struct {
	Shapes []Shape
}

// Disc appends a filled circle.
func (d *DisplayList) Disc(x, y, r float64, c color.RGBA) {
	d.Shapes = append(d.Shapes, Shape{Kind: ShapeDisc, X: x, Y: y, R: r, Color: c})
}

// Ring appends a circle outline.
func (d *DisplayList) Ring(x, y, r float64, c color.RGBA) {
	d.Shapes = append(d.Shapes, Shape{Kind: ShapeRing, X: x, Y: y, R: r, Color: c})
}

// Reset empties the list, keeping its capacity.
func (d *DisplayList) Reset() {
	clear(d.Shapes)
	d.Shapes = d.Shapes[:0]
}

package grapheditor

// BoundingBox is an axis-aligned rectangle in content coordinates. Width and
// height are not required to be positive by the type itself.
type BoundingBox struct {
	X, Y          float64
	Width, Height float64
}

// Contains returns true if the point lies within the box, edges included.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X && y >= b.Y && x <= b.X+b.Width && y <= b.Y+b.Height
}

// Center returns the center point of the box.
func (b BoundingBox) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Inset returns the box shrunk by d on every side.
func (b BoundingBox) Inset(d float64) BoundingBox {
	return BoundingBox{X: b.X + d, Y: b.Y + d, Width: b.Width - 2*d, Height: b.Height - 2*d}
}

// boxFromExtremes builds a box from its top-left and bottom-right corners.
func boxFromExtremes(topX, topY, bottomX, bottomY float64) BoundingBox {
	return BoundingBox{X: topX, Y: topY, Width: bottomX - topX, Height: bottomY - topY}
}

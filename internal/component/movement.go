// component/movement.go
package component

import "math"

// Position is a point in arena space, in percent (0-100) of the arena's
// width and height. Towers and enemies share this space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Arena is the pixel size of the render surface as last reported by the
// presentation layer.
type Arena struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether the arena can be used for pixel conversions.
func (a Arena) Valid() bool {
	return a.Width > 0 && a.Height > 0 &&
		!math.IsInf(a.Width, 0) && !math.IsInf(a.Height, 0) &&
		!math.IsNaN(a.Width) && !math.IsNaN(a.Height)
}

// ToPixel converts a percent position to pixels.
func (a Arena) ToPixel(p Position) (float64, float64) {
	return p.X / 100 * a.Width, p.Y / 100 * a.Height
}

// FromPixel converts pixels to a percent position. The arena must be valid.
func (a Arena) FromPixel(x, y float64) Position {
	return Position{X: x / a.Width * 100, Y: y / a.Height * 100}
}

// Distance is the Euclidean pixel distance between two positions.
func (a Arena) Distance(p, q Position) float64 {
	dx := (q.X - p.X) / 100 * a.Width
	dy := (q.Y - p.Y) / 100 * a.Height
	return math.Hypot(dx, dy)
}

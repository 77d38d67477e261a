package render

import "image"

// Row splits the horizontal strip starting at (x, y) into n equal cells of
// the given height, separated by gap pixels.
func Row(n, x, y, width, height, gap int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	cell := (width - gap*(n-1)) / n
	if cell <= 0 {
		return nil
	}
	out := make([]image.Rectangle, n)
	for i := range out {
		left := x + i*(cell+gap)
		out[i] = image.Rect(left, y, left+cell, y+height)
	}
	return out
}

// HitIndex returns the index of the rectangle containing (px, py), or -1.
func HitIndex(rects []image.Rectangle, px, py int) int {
	p := image.Pt(px, py)
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}

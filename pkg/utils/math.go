// pkg/utils/math.go
package utils

import "math"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// MoveToward moves (x, y) toward (tx, ty) by at most step and returns the
// new point. It stops on the target rather than overshooting.
func MoveToward(x, y, tx, ty, step float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= step || dist == 0 {
		return tx, ty
	}
	return x + dx/dist*step, y + dy/dist*step
}

// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Fade returns an alpha in [0, 255] that falls linearly from 255 at
// elapsed=0 to 0 at elapsed>=lifetime.
func Fade(elapsed, lifetime float64) uint8 {
	if lifetime <= 0 || elapsed >= lifetime {
		return 0
	}
	if elapsed <= 0 {
		return 255
	}
	return uint8(Lerp(255, 0, float32(elapsed/lifetime)))
}

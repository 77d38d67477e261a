// internal/ui/network_health_indicator.go
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthCells         = 20
	HealthCols          = 10
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 3.0
)

// NetworkHealthIndicatorRL отображает здоровье сети сеткой кружков; each
// cell stands for 1/HealthCells of the maximum.
type NetworkHealthIndicatorRL struct {
	Position rl.Vector2
}

func NewNetworkHealthIndicatorRL(x, y float32) *NetworkHealthIndicatorRL {
	return &NetworkHealthIndicatorRL{
		Position: rl.NewVector2(x, y),
	}
}

// FilledCells returns how many cells are lit for health out of maxHealth.
// Any health above zero lights at least one cell.
func FilledCells(health, maxHealth float64) int {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	n := int(health / maxHealth * HealthCells)
	if n == 0 {
		n = 1
	}
	return min(n, HealthCells)
}

func (i *NetworkHealthIndicatorRL) Draw(health, maxHealth float64) {
	filled := FilledCells(health, maxHealth)
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < HealthCells; j++ {
		x := i.Position.X + float32(j%HealthCols)*step + HealthCircleRadius
		y := i.Position.Y + float32(j/HealthCols)*step + HealthCircleRadius

		color := rl.Black
		if j < filled {
			color = rl.Blue
			if filled <= HealthCells/4 {
				color = rl.Red
			}
		}
		rl.DrawCircle(int32(x), int32(y), HealthCircleRadius, color)
		rl.DrawCircleLines(int32(x), int32(y), HealthCircleRadius, rl.White)
	}

	healthText := fmt.Sprintf("NETWORK %.0f/%.0f", health, maxHealth)
	rl.DrawText(healthText, int32(i.Position.X), int32(i.Position.Y)-22, 18, rl.White)
}

// internal/ui/budget_indicator.go
package ui

import (
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BudgetIndicatorRL отображает бюджет текстом с обводкой.
type BudgetIndicatorRL struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

func NewBudgetIndicatorRL(x, y, fontSize float32) *BudgetIndicatorRL {
	return &BudgetIndicatorRL{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            colorToRL(config.BudgetColor),
		OutlineColor:     rl.Black,
		OutlineThickness: 2,
	}
}

// Draw рисует бюджет; below a quarter of the initial budget the text turns red.
func (i *BudgetIndicatorRL) Draw(budget, initial int64, font rl.Font) {
	text := render.FormatBudget(budget)
	textColor := i.Color
	if initial > 0 && budget*4 < initial {
		textColor = rl.Red
	}

	pos := rl.NewVector2(i.X, i.Y)
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(pos.X+float32(x), pos.Y+float32(y)), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, pos, i.FontSize, 1, textColor)
}

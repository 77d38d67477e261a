package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct{ x, want float64 }{{-1, 0}, {0.5, 0.5}, {2, 1}}
	for _, tt := range tests {
		if got := Clamp(tt.x, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestMoveToward(t *testing.T) {
	x, y := MoveToward(0, 0, 3, 4, 1)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("MoveToward = %v,%v want 0.6,0.8", x, y)
	}
	x, y = MoveToward(0, 0, 0.3, 0.4, 1)
	if x != 0.3 || y != 0.4 {
		t.Errorf("MoveToward did not stop on target: %v,%v", x, y)
	}
}

package render

import (
	"image"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff8800", color.RGBA{255, 136, 0, 255}, true},
		{"ff8800", color.RGBA{255, 136, 0, 255}, true},
		{"#f80", color.RGBA{255, 136, 0, 255}, true},
		{"#10203040", color.RGBA{16, 32, 48, 64}, true},
		{"#12345", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseHexColor(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	fallback := color.RGBA{1, 2, 3, 4}
	if got := ColorOr("nope", fallback); got != fallback {
		t.Errorf("ColorOr fallback = %v", got)
	}
}

func TestHealthColor(t *testing.T) {
	low := color.RGBA{200, 0, 0, 255}
	good := color.RGBA{0, 200, 0, 255}
	if got := HealthColor(0, low, good); got != low {
		t.Errorf("ratio 0 = %v", got)
	}
	if got := HealthColor(2, low, good); got != good {
		t.Errorf("ratio above 1 = %v", got)
	}
	if got := HealthColor(0.5, low, good); got.R != 100 || got.G != 100 {
		t.Errorf("ratio 0.5 = %v", got)
	}
}

func TestFormatBudget(t *testing.T) {
	tests := map[int64]string{
		5_300_000: "$5.30M",
		250_000:   "$250K",
		900:       "$900",
		0:         "$0",
		-15_000:   "-$15K",
	}
	for in, want := range tests {
		if got := FormatBudget(in); got != want {
			t.Errorf("FormatBudget(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestAbbreviate(t *testing.T) {
	if got := Abbreviate("Firewall", 10); got != "Firewall" {
		t.Errorf("short = %q", got)
	}
	if got := Abbreviate("Intrusion Detection", 10); got != "Intrusion." {
		t.Errorf("long = %q", got)
	}
	if got := Abbreviate("abc", 0); got != "" {
		t.Errorf("zero = %q", got)
	}
}

func TestRowAndHitIndex(t *testing.T) {
	rects := Row(3, 10, 0, 100, 20, 5)
	if len(rects) != 3 {
		t.Fatalf("len = %d", len(rects))
	}
	if rects[0] != image.Rect(10, 0, 40, 20) || rects[2] != image.Rect(80, 0, 110, 20) {
		t.Errorf("rects = %v", rects)
	}
	if i := HitIndex(rects, 45, 10); i != 1 {
		t.Errorf("HitIndex = %d, want 1", i)
	}
	if i := HitIndex(rects, 42, 10); i != -1 {
		t.Errorf("gap hit = %d", i)
	}
	if Row(0, 0, 0, 100, 10, 0) != nil || Row(5, 0, 0, 4, 10, 1) != nil {
		t.Error("degenerate rows should be nil")
	}
}

func TestNewFace(t *testing.T) {
	face, err := NewFace(12)
	if err != nil {
		t.Fatal(err)
	}
	if face.Metrics().Height <= 0 {
		t.Error("face has no height")
	}
}

package render

import (
	"image/color"
	"testing"

	"alchemy/internal/alchemy"
)

func TestEveryTypeHasDistinctColor(t *testing.T) {
	seen := make(map[color.RGBA]alchemy.ElementType)
	for _, typ := range alchemy.ElementTypes() {
		c := TileColor(typ)
		if c == fallbackColor {
			t.Fatalf("%s uses the fallback colour", typ)
		}
		if other, dup := seen[c]; dup {
			t.Fatalf("%s and %s share colour %v", typ, other, c)
		}
		seen[c] = typ
	}
	if got := TileColor(alchemy.ElementType(200)); got != fallbackColor {
		t.Fatalf("expected fallback for invalid type, got %v", got)
	}
}

func TestLabelColorContrast(t *testing.T) {
	dark := LabelColor(TileColor(alchemy.Cloud))
	light := LabelColor(TileColor(alchemy.Ocean))
	if dark.R > 64 {
		t.Fatalf("expected dark label on CLOUD, got %v", dark)
	}
	if light.R < 192 {
		t.Fatalf("expected light label on OCEAN, got %v", light)
	}
}

func TestDarken(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 128}
	if got := Darken(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 25, A: 128}) {
		t.Fatalf("unexpected half darken %v", got)
	}
	if got := Darken(c, 2); got != c {
		t.Fatalf("factor above 1 should clamp, got %v", got)
	}
	if got := Darken(c, -1); got != (color.RGBA{A: 128}) {
		t.Fatalf("factor below 0 should clamp, got %v", got)
	}
}

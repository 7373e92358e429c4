package ui

import (
	"image"
	"testing"
)

func TestButtonRectsGrid(t *testing.T) {
	rects := buttonRects(3, 220)
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	expected := []image.Rectangle{
		image.Rect(12, 88, 107, 110),
		image.Rect(113, 88, 208, 110),
		image.Rect(12, 116, 107, 138),
	}
	for i, r := range rects {
		if r != expected[i] {
			t.Fatalf("rect %d: got %v, expected %v", i, r, expected[i])
		}
	}
	if buttonRects(0, 220) != nil || buttonRects(4, 0) != nil {
		t.Fatal("expected nil for empty layouts")
	}
}

func TestHitButton(t *testing.T) {
	rects := buttonRects(4, 220)
	cases := []struct {
		x, y     int
		expected int
	}{
		{12, 88, 0},
		{106, 109, 0},
		{107, 95, -1},
		{150, 120, 3},
		{0, 0, -1},
	}
	for _, tc := range cases {
		if got := hitButton(rects, tc.x, tc.y); got != tc.expected {
			t.Fatalf("hit (%d, %d): got %d, expected %d", tc.x, tc.y, got, tc.expected)
		}
	}
}

package ui

import "image"

const (
	panelPadding   = 12
	headerBaseline = 18
	lineSpacing    = 16
	statLines      = 3
	buttonHeight   = 22
	buttonGap      = 6
	buttonColumns  = 2
	buttonsTop     = panelPadding + headerBaseline + statLines*lineSpacing + 10
)

// buttonRects lays out count spawn buttons in a grid inside a panel of the
// given width. Rectangles are in panel coordinates.
func buttonRects(count, width int) []image.Rectangle {
	if count <= 0 || width <= 0 {
		return nil
	}
	usable := width - 2*panelPadding - (buttonColumns-1)*buttonGap
	colWidth := usable / buttonColumns
	if colWidth <= 0 {
		colWidth = 1
	}
	rects := make([]image.Rectangle, count)
	for i := range rects {
		col := i % buttonColumns
		row := i / buttonColumns
		x := panelPadding + col*(colWidth+buttonGap)
		y := buttonsTop + row*(buttonHeight+buttonGap)
		rects[i] = image.Rect(x, y, x+colWidth, y+buttonHeight)
	}
	return rects
}

// hitButton returns the index of the rectangle containing (x, y), or -1.
func hitButton(rects []image.Rectangle, x, y int) int {
	for i, r := range rects {
		if pointInRect(x, y, r) {
			return i
		}
	}
	return -1
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

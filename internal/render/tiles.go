//go:build ebiten

package render

import (
	"image/color"

	"alchemy/internal/alchemy"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// TilePainter draws board tiles as labelled rectangles.
type TilePainter struct {
	background color.RGBA
	border     float32
}

// NewTilePainter constructs a painter with the default board background.
func NewTilePainter() *TilePainter {
	return &TilePainter{
		background: color.RGBA{R: 24, G: 26, B: 32, A: 255},
		border:     2,
	}
}

// Draw paints the board background and every tile in store order, so later
// tiles end up on top. The dragged tile, if any, is outlined.
func (p *TilePainter) Draw(dst *ebiten.Image, boardW, boardH float64, elements []alchemy.Element, dragged alchemy.ElementID, dragging bool) {
	vector.DrawFilledRect(dst, 0, 0, float32(boardW), float32(boardH), p.background, false)
	face := basicfont.Face7x13
	for _, e := range elements {
		fill := TileColor(e.Type)
		x, y := float32(e.Left), float32(e.Top)
		w, h := float32(e.Width), float32(e.Height)
		vector.DrawFilledRect(dst, x, y, w, h, fill, false)

		edge := Darken(fill, 0.6)
		stroke := p.border
		if dragging && e.ID == dragged {
			edge = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			stroke = p.border * 1.5
		}
		vector.StrokeRect(dst, x, y, w, h, stroke, edge, false)

		label := e.Type.String()
		bounds := text.BoundString(face, label)
		tx := int(e.Left + (e.Width-float64(bounds.Dx()))/2)
		ty := int(e.Top + (e.Height+float64(bounds.Dy()))/2)
		text.Draw(dst, label, face, tx, ty, LabelColor(fill))
	}
}

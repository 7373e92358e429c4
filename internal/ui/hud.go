//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"alchemy/internal/alchemy"
	"alchemy/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the discovery panel to the right of the board. Clicking a
// discovered type spawns a tile of it.
type HUD struct {
	store      *alchemy.Store
	width      int
	panel      *ebiten.Image
	lastHeight int

	types        []alchemy.ElementType
	rects        []image.Rectangle
	panelOffsetX int
	status       string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided store and panel width.
func NewHUD(store *alchemy.Store, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{store: store, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// SetStatus replaces the one-line message under the counters.
func (h *HUD) SetStatus(msg string) {
	if h == nil {
		return
	}
	h.status = msg
}

// Update refreshes the button list from the store and handles clicks. It
// reports whether the click landed on the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.types = h.store.Discovered()
	if len(h.types) != len(h.rects) {
		h.rects = buttonRects(len(h.types), h.width)
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	idx := hitButton(h.rects, mx-h.panelOffsetX, my)
	if idx < 0 {
		return true
	}
	t := h.types[idx]
	if _, err := h.store.AddElement(t); err != nil {
		h.status = err.Error()
		return true
	}
	h.status = "spawned " + t.String()
	return true
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStats()
	h.drawButtons()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Elements", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	y += lineSpacing
	text.Draw(h.panel, fmt.Sprintf("tiles: %d", h.store.Count()), face, panelPadding, y, dim)
	y += lineSpacing
	total := len(alchemy.ElementTypes())
	text.Draw(h.panel, fmt.Sprintf("discovered: %d/%d", len(h.types), total), face, panelPadding, y, dim)
	if h.status != "" {
		y += lineSpacing
		text.Draw(h.panel, h.status, face, panelPadding, y, color.RGBA{R: 220, G: 200, B: 120, A: 255})
	}
}

func (h *HUD) drawButtons() {
	for i, r := range h.rects {
		if i >= len(h.types) {
			return
		}
		h.drawButton(r, h.types[i])
	}
}

func (h *HUD) drawButton(rect image.Rectangle, t alchemy.ElementType) {
	if h.pixel == nil {
		return
	}
	bg := render.TileColor(t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	label := t.String()
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, render.LabelColor(bg))
}

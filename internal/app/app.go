//go:build ebiten

package app

import (
	"errors"

	"alchemy/internal/alchemy"
	"alchemy/internal/render"
	"alchemy/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an element store to the ebiten.Game interface.
type Game struct {
	store   *alchemy.Store
	drag    *alchemy.DragController
	painter *render.TilePainter
	hud     *ui.HUD
	events  *eventLog
	logger  alchemy.Logger

	boardW, boardH int
	panelW         int

	cursorX, cursorY int
}

// New constructs a Game for the provided store.
func New(store *alchemy.Store, panelWidth int, logger alchemy.Logger) *Game {
	cfg := store.Config()
	events := newEventLog(logger)
	store.SetListener(events)
	store.SetLogger(logger)
	return &Game{
		store:   store,
		drag:    alchemy.NewDragController(store),
		painter: render.NewTilePainter(),
		hud:     ui.NewHUD(store, panelWidth),
		events:  events,
		logger:  events.logger,
		boardW:  int(cfg.Width),
		boardH:  int(cfg.Height),
		panelW:  panelWidth,
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	defer g.refreshStatus()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.drag.EndDrag()
		g.store.Reset()
		g.hud.SetStatus("board reset")
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	moved := mx != g.cursorX || my != g.cursorY
	g.cursorX, g.cursorY = mx, my

	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if e, ok := g.store.ElementAt(x, y); ok {
			if err := g.store.Remove(e.ID); err != nil {
				g.logger.Warnf("remove failed: %v", err)
			}
		}
	}

	if g.hud.Update(g.boardW) {
		return nil
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.drag.StartDrag(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.drag.EndDrag()
	case moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.dragTo(x, y)
	}
	return nil
}

// refreshStatus shows the latest discovery, if any, in the panel.
func (g *Game) refreshStatus() {
	if msg := g.events.takeLatest(); msg != "" {
		g.hud.SetStatus(msg)
	}
}

func (g *Game) dragTo(x, y float64) {
	if _, dragging := g.drag.Dragging(); !dragging {
		return
	}
	combo, err := g.drag.Drag(x, y)
	if err != nil {
		if !errors.Is(err, alchemy.ErrOutOfBounds) {
			g.logger.Warnf("drag failed: %v", err)
		}
		return
	}
	if combo != nil && len(combo.Discovered) == 0 {
		g.hud.SetStatus(combo.Moved.Type.String() + " + " + combo.Partner.Type.String())
	}
}

// Draw renders the board and the discovery panel.
func (g *Game) Draw(screen *ebiten.Image) {
	id, dragging := g.drag.Dragging()
	g.painter.Draw(screen, float64(g.boardW), float64(g.boardH), g.store.Elements(), id, dragging)
	g.hud.Draw(screen, g.boardW, g.boardH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardW + g.panelW, g.boardH
}

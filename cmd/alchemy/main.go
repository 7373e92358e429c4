//go:build ebiten

package main

import (
	"errors"
	"flag"

	"alchemy/internal/alchemy"
	"alchemy/internal/app"
	"alchemy/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.New(cfg.LogLevel)
	board := cfg.Board()
	store := alchemy.NewStore(board)
	logger.Infof("board %.0fx%.0f, tiles %.0fx%.0f, overlap=%s", board.Width, board.Height, board.ElementWidth, board.ElementHeight, board.Overlap)

	game := app.New(store, cfg.PanelWidth, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("alchemy")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("%v", err)
	}
}

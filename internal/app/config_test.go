package app

import (
	"flag"
	"testing"

	"alchemy/internal/alchemy"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "640", "-h", "480", "-tile", "40", "-overlap", "aabb", "-seed-base=false"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	board := cfg.Board()
	expected := alchemy.Config{Width: 640, Height: 480, ElementWidth: 40, ElementHeight: 40, Overlap: alchemy.OverlapAABB}
	if board != expected {
		t.Fatalf("got %+v, expected %+v", board, expected)
	}
}

func TestConfigBoardFallsBackOnBadValues(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = -5
	cfg.Overlap = "triangles"
	board := cfg.Board()
	if board.Width != 800 || board.Overlap != alchemy.OverlapCorners {
		t.Fatalf("expected defaults, got %+v", board)
	}
}

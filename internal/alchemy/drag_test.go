package alchemy

import (
	"errors"
	"testing"
)

func TestStartDragMissesEmptySpace(t *testing.T) {
	d := NewDragController(NewStore(emptyBoard()))
	if d.StartDrag(10, 10) {
		t.Fatal("expected no tile to grab")
	}
	if _, active := d.Dragging(); active {
		t.Fatal("controller should be idle")
	}
	combo, err := d.Drag(100, 100)
	if combo != nil || err != nil {
		t.Fatalf("idle drag should be a no-op, got %v %v", combo, err)
	}
}

func TestDragKeepsGripOffset(t *testing.T) {
	s := NewStore(emptyBoard())
	e := spawnAt(t, s, Fire, 100, 100)
	d := NewDragController(s)

	if !d.StartDrag(110, 120) {
		t.Fatal("expected to grab the tile")
	}
	if id, active := d.Dragging(); !active || id != e.ID {
		t.Fatalf("expected to drag %d, got %d (%v)", e.ID, id, active)
	}
	if _, err := d.Drag(210, 220); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := s.Element(e.ID)
	if got.Left != 200 || got.Top != 200 {
		t.Fatalf("expected tile at (200, 200), got (%g, %g)", got.Left, got.Top)
	}

	d.EndDrag()
	if _, active := d.Dragging(); active {
		t.Fatal("drag should have ended")
	}
}

func TestDragOutOfBoundsKeepsTileAndGrip(t *testing.T) {
	s := NewStore(emptyBoard())
	e := spawnAt(t, s, Fire, 0, 0)
	d := NewDragController(s)
	d.StartDrag(5, 5)

	if _, err := d.Drag(2, 5); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if got, _ := s.Element(e.ID); got != e {
		t.Fatalf("tile moved: %+v", got)
	}
	if _, active := d.Dragging(); !active {
		t.Fatal("drag should continue after a rejected move")
	}
}

func TestDragEndsOnCombination(t *testing.T) {
	s := NewStore(emptyBoard())
	spawnAt(t, s, Fire, 0, 0)
	water := spawnAt(t, s, Water, 200, 0)
	d := NewDragController(s)
	d.StartDrag(200, 0)

	combo, err := d.Drag(40, 0)
	if err != nil || combo == nil {
		t.Fatalf("expected reaction, got %v %v", combo, err)
	}
	if combo.Moved.ID != water.ID {
		t.Fatalf("expected WATER to be the moved tile, got %s", combo.Moved.Type)
	}
	if _, active := d.Dragging(); active {
		t.Fatal("drag should end once the tile is consumed")
	}
}

func TestDragEndsWhenTileVanishes(t *testing.T) {
	s := NewStore(emptyBoard())
	e := spawnAt(t, s, Fire, 0, 0)
	d := NewDragController(s)
	d.StartDrag(10, 10)
	s.Remove(e.ID)

	if _, err := d.Drag(20, 20); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, active := d.Dragging(); active {
		t.Fatal("drag should end for a removed tile")
	}
}

func TestHeldPointerDoesNotCombine(t *testing.T) {
	s := NewStore(DefaultConfig())
	d := NewDragController(s)
	if !d.StartDrag(350, 300) {
		t.Fatal("expected to grab the seeded FIRE tile")
	}

	combo, err := d.Drag(350, 300)
	if err != nil || combo != nil {
		t.Fatalf("stationary pointer should not move the tile, got %v %v", combo, err)
	}
	if s.Count() != 4 || s.IsDiscovered(Lava) {
		t.Fatalf("board changed: count=%d discovered=%v", s.Count(), s.Discovered())
	}
	if _, active := d.Dragging(); !active {
		t.Fatal("drag should still be active")
	}

	if combo, err := d.Drag(340, 300); err != nil || combo != nil {
		t.Fatalf("expected a plain move, got %v %v", combo, err)
	}
	if got, _ := s.Element(0); got.Left != 315 || got.Top != 275 {
		t.Fatalf("expected FIRE to follow the pointer, got %+v", got)
	}
}

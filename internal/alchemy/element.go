package alchemy

import (
	"fmt"
	"strings"
)

// ElementType enumerates the kinds of tiles that can exist on the board.
type ElementType uint8

const (
	Water ElementType = iota
	Fire
	Air
	Earth
	Dust
	Energy
	Lava
	Mud
	Pressure
	Rain
	Sea
	Steam
	Cloud
	Gunpowder
	Ocean
	Plant
	Salt
	Stone
	Explosion
	Smoke
	Metal
	Sand
	Storm
	Electricity
	Wind
	Wave
	AtomicBomb
	Beach
	Desert
	Glass
	Sound

	elementTypeCount
)

var elementTypeNames = [elementTypeCount]string{
	Water:       "WATER",
	Fire:        "FIRE",
	Air:         "AIR",
	Earth:       "EARTH",
	Dust:        "DUST",
	Energy:      "ENERGY",
	Lava:        "LAVA",
	Mud:         "MUD",
	Pressure:    "PRESSURE",
	Rain:        "RAIN",
	Sea:         "SEA",
	Steam:       "STEAM",
	Cloud:       "CLOUD",
	Gunpowder:   "GUNPOWDER",
	Ocean:       "OCEAN",
	Plant:       "PLANT",
	Salt:        "SALT",
	Stone:       "STONE",
	Explosion:   "EXPLOSION",
	Smoke:       "SMOKE",
	Metal:       "METAL",
	Sand:        "SAND",
	Storm:       "STORM",
	Electricity: "ELECTRICITY",
	Wind:        "WIND",
	Wave:        "WAVE",
	AtomicBomb:  "ATOMIC_BOMB",
	Beach:       "BEACH",
	Desert:      "DESERT",
	Glass:       "GLASS",
	Sound:       "SOUND",
}

// BaseTypes are the types every new board starts with.
var BaseTypes = []ElementType{Water, Fire, Air, Earth}

// ElementTypes returns every known type in enum order.
func ElementTypes() []ElementType {
	out := make([]ElementType, 0, elementTypeCount)
	for t := ElementType(0); t < elementTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is a member of the enum.
func (t ElementType) Valid() bool { return t < elementTypeCount }

func (t ElementType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ElementType(%d)", uint8(t))
	}
	return elementTypeNames[t]
}

// ParseElementType resolves a type name case-insensitively.
func ParseElementType(name string) (ElementType, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for t, n := range elementTypeNames {
		if n == upper {
			return ElementType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown element type %q", name)
}

// ElementID identifies a tile for as long as it lives on the board.
type ElementID uint64

// Element is a placed tile.
type Element struct {
	ID     ElementID
	Type   ElementType
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (e Element) Right() float64 { return e.Left + e.Width }

// Bottom returns the y coordinate of the bottom edge.
func (e Element) Bottom() float64 { return e.Top + e.Height }

// Contains reports whether (x, y) lies inside the tile, edges included.
func (e Element) Contains(x, y float64) bool {
	return e.Left <= x && x <= e.Right() && e.Top <= y && y <= e.Bottom()
}

// Corners returns the four corners in top-left, top-right, bottom-left,
// bottom-right order.
func (e Element) Corners() [4][2]float64 {
	return [4][2]float64{
		{e.Left, e.Top},
		{e.Right(), e.Top},
		{e.Left, e.Bottom()},
		{e.Right(), e.Bottom()},
	}
}

package alchemy

import (
	"fmt"
	"strconv"
	"strings"
)

// OverlapPolicy selects how two tiles are judged to touch.
type OverlapPolicy uint8

const (
	// OverlapCorners treats tiles as touching when any corner of either lies
	// inside the other. Crossing tiles with no corner inside are missed.
	OverlapCorners OverlapPolicy = iota
	// OverlapAABB is a full axis-aligned rectangle intersection test.
	OverlapAABB
)

func (p OverlapPolicy) String() string {
	switch p {
	case OverlapCorners:
		return "corners"
	case OverlapAABB:
		return "aabb"
	default:
		return "unknown"
	}
}

// ParseOverlapPolicy accepts "corners" or "aabb".
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corners", "corner":
		return OverlapCorners, nil
	case "aabb":
		return OverlapAABB, nil
	default:
		return OverlapCorners, fmt.Errorf("unknown overlap policy %q", s)
	}
}

// Config controls the board and tile dimensions.
type Config struct {
	Width         float64
	Height        float64
	ElementWidth  float64
	ElementHeight float64

	Overlap OverlapPolicy

	// SeedBaseTiles places one tile of each base type around the centre.
	SeedBaseTiles bool
}

// DefaultConfig returns the standard 800x600 board with 50x50 tiles.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		ElementWidth:  50,
		ElementHeight: 50,
		Overlap:       OverlapCorners,
		SeedBaseTiles: true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tile_w"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.ElementWidth = parsed
		}
	}
	if v, ok := cfg["tile_h"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.ElementHeight = parsed
		}
	}
	if c.ElementWidth > c.Width {
		c.ElementWidth = c.Width
	}
	if c.ElementHeight > c.Height {
		c.ElementHeight = c.Height
	}
	if v, ok := cfg["overlap"]; ok {
		if parsed, err := ParseOverlapPolicy(v); err == nil {
			c.Overlap = parsed
		}
	}
	if v, ok := cfg["seed_base"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.SeedBaseTiles = parsed
		}
	}
	return c
}

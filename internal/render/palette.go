package render

import (
	"image/color"

	"alchemy/internal/alchemy"
)

var tilePalette = map[alchemy.ElementType]color.RGBA{
	alchemy.Water:       {R: 64, G: 132, B: 230, A: 255},
	alchemy.Fire:        {R: 232, G: 76, B: 40, A: 255},
	alchemy.Air:         {R: 210, G: 232, B: 240, A: 255},
	alchemy.Earth:       {R: 120, G: 86, B: 52, A: 255},
	alchemy.Dust:        {R: 176, G: 160, B: 130, A: 255},
	alchemy.Energy:      {R: 250, G: 220, B: 60, A: 255},
	alchemy.Lava:        {R: 255, G: 110, B: 20, A: 255},
	alchemy.Mud:         {R: 96, G: 72, B: 44, A: 255},
	alchemy.Pressure:    {R: 150, G: 150, B: 180, A: 255},
	alchemy.Rain:        {R: 110, G: 160, B: 210, A: 255},
	alchemy.Sea:         {R: 30, G: 100, B: 180, A: 255},
	alchemy.Steam:       {R: 225, G: 225, B: 225, A: 255},
	alchemy.Cloud:       {R: 240, G: 244, B: 250, A: 255},
	alchemy.Gunpowder:   {R: 60, G: 60, B: 60, A: 255},
	alchemy.Ocean:       {R: 16, G: 60, B: 140, A: 255},
	alchemy.Plant:       {R: 70, G: 160, B: 80, A: 255},
	alchemy.Salt:        {R: 245, G: 245, B: 235, A: 255},
	alchemy.Stone:       {R: 130, G: 130, B: 130, A: 255},
	alchemy.Explosion:   {R: 255, G: 160, B: 40, A: 255},
	alchemy.Smoke:       {R: 100, G: 100, B: 110, A: 255},
	alchemy.Metal:       {R: 170, G: 180, B: 195, A: 255},
	alchemy.Sand:        {R: 230, G: 205, B: 140, A: 255},
	alchemy.Storm:       {R: 70, G: 70, B: 110, A: 255},
	alchemy.Electricity: {R: 180, G: 220, B: 255, A: 255},
	alchemy.Wind:        {R: 190, G: 215, B: 205, A: 255},
	alchemy.Wave:        {R: 50, G: 150, B: 200, A: 255},
	alchemy.AtomicBomb:  {R: 140, G: 220, B: 40, A: 255},
	alchemy.Beach:       {R: 240, G: 215, B: 170, A: 255},
	alchemy.Desert:      {R: 215, G: 170, B: 90, A: 255},
	alchemy.Glass:       {R: 200, G: 235, B: 235, A: 255},
	alchemy.Sound:       {R: 200, G: 120, B: 200, A: 255},
}

var fallbackColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// TileColor returns the fill colour for a tile type.
func TileColor(t alchemy.ElementType) color.RGBA {
	if c, ok := tilePalette[t]; ok {
		return c
	}
	return fallbackColor
}

// LabelColor picks black or white text, whichever reads better on fill.
func LabelColor(fill color.RGBA) color.RGBA {
	// Rec. 601 luma, integer form.
	luma := (299*int(fill.R) + 587*int(fill.G) + 114*int(fill.B)) / 1000
	if luma >= 150 {
		return color.RGBA{R: 16, G: 16, B: 20, A: 255}
	}
	return color.RGBA{R: 245, G: 245, B: 250, A: 255}
}

// Darken scales the colour channels by factor, keeping alpha.
func Darken(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R)*factor + 0.5),
		G: uint8(float64(c.G)*factor + 0.5),
		B: uint8(float64(c.B)*factor + 0.5),
		A: c.A,
	}
}

package app

import (
	"flag"
	"strconv"

	"alchemy/internal/alchemy"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int
	Height     int
	Tile       int
	Overlap    string
	SeedBase   bool
	PanelWidth int
	TPS        int
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      800,
		Height:     600,
		Tile:       50,
		Overlap:    alchemy.OverlapCorners.String(),
		SeedBase:   true,
		PanelWidth: 220,
		TPS:        60,
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "board height in pixels")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile edge length in pixels")
	fs.StringVar(&c.Overlap, "overlap", c.Overlap, "overlap test: corners or aabb")
	fs.BoolVar(&c.SeedBase, "seed-base", c.SeedBase, "start with the four base tiles on the board")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "width of the discovery panel")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Board converts the flags into a store configuration. Invalid values fall
// back to the store defaults.
func (c *Config) Board() alchemy.Config {
	return alchemy.FromMap(map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"tile_w":    strconv.Itoa(c.Tile),
		"tile_h":    strconv.Itoa(c.Tile),
		"overlap":   c.Overlap,
		"seed_base": strconv.FormatBool(c.SeedBase),
	})
}

package core

import "math"

// Simulation pixels per terminal cell. The runner simulates in a pixel
// canvas and the platform projects it onto cells.
const (
	CellPixelsW = 12
	CellPixelsH = 24
)

// RuntimeConfig contains configuration passed to the runner by its host.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the host schedules (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// CanvasSize returns the simulation canvas in pixels for the screen size.
func (c RuntimeConfig) CanvasSize() (float64, float64) {
	return float64(c.ScreenW * CellPixelsW), float64(c.ScreenH * CellPixelsH)
}

// ToCell projects a canvas pixel position to a screen cell.
func ToCell(px, py float64) (int, int) {
	return int(math.Floor(px / CellPixelsW)), int(math.Floor(py / CellPixelsH))
}

// CellSpan returns how many cells a pixel length covers, at least one.
func CellSpan(pixels float64, perCell int) int {
	n := int(pixels+float64(perCell)-1) / perCell
	if n < 1 {
		return 1
	}
	return n
}

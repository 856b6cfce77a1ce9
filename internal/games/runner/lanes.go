package runner

import "github.com/vovakirdan/lane-runner/internal/config"

// Lanes is the lane geometry derived from the canvas size.
// X holds each lane's centre; GroundY is the ground line.
type Lanes struct {
	X       []float64
	GroundY float64
}

// ComputeLanes lays the lanes out centred on the canvas.
func ComputeLanes(cfg config.LanesConfig, canvasW, canvasH float64) Lanes {
	laneW := canvasW * cfg.WidthRatio
	totalW := laneW * float64(cfg.Count)
	startX := (canvasW-totalW)/2 + laneW/2

	xs := make([]float64, cfg.Count)
	for i := range xs {
		xs[i] = startX + laneW*float64(i)
	}
	return Lanes{X: xs, GroundY: canvasH * cfg.GroundRatio}
}

// Count returns the number of lanes.
func (l Lanes) Count() int {
	return len(l.X)
}

// Center returns the index of the middle lane.
func (l Lanes) Center() int {
	return len(l.X) / 2
}

// Offset returns how far a lane sits from the middle lane.
// Spawners shift entities by this so each lane has its own column.
func (l Lanes) Offset(lane int) float64 {
	if lane < 0 || lane >= len(l.X) {
		return 0
	}
	return l.X[lane] - l.X[l.Center()]
}

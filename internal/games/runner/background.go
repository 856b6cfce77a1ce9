package runner

import (
	"math"
	"math/rand"
)

// Layer is one parallax band. Offset wraps at the canvas width.
type Layer struct {
	Offset float64
	Factor float64 // Fraction of world speed
}

// Cloud drifts across the sky independent of the run speed.
type Cloud struct {
	X, Y  float64
	W, H  float64
	Drift float64
}

// Building is a mid-layer skyline block.
type Building struct {
	X, Y  float64
	W, H  float64
	Light bool
}

// Speck is ground decoration.
type Speck struct {
	X     float64
	Size  float64
	Green bool
}

// Background is the cosmetic scenery. It has its own RNG so it never
// consumes gameplay randomness.
type Background struct {
	Layers    [3]Layer
	Clouds    []Cloud
	Buildings []Building
	Specks    []Speck

	canvasW, canvasH, groundY float64
	rng                       *rand.Rand
}

// NewBackground creates scenery for the given canvas.
func NewBackground(seed int64, canvasW, canvasH, groundY float64) *Background {
	b := &Background{rng: rand.New(rand.NewSource(seed))}
	b.Resize(canvasW, canvasH, groundY)
	return b
}

// Resize regenerates the scenery for a new canvas.
func (b *Background) Resize(canvasW, canvasH, groundY float64) {
	b.canvasW, b.canvasH, b.groundY = canvasW, canvasH, groundY
	b.Layers = [3]Layer{{Factor: 0.2}, {Factor: 0.5}, {Factor: 1.0}}

	b.Clouds = b.Clouds[:0]
	for i := 0; i < 6; i++ {
		b.Clouds = append(b.Clouds, Cloud{
			X:     b.rng.Float64() * canvasW,
			Y:     20 + b.rng.Float64()*100,
			W:     60 + b.rng.Float64()*80,
			H:     20 + b.rng.Float64()*20,
			Drift: 0.3 + b.rng.Float64()*0.3,
		})
	}

	b.Buildings = b.Buildings[:0]
	for i := 0; i < 15; i++ {
		h := 80 + b.rng.Float64()*150
		b.Buildings = append(b.Buildings, Building{
			X:     float64(i)*90 + b.rng.Float64()*30,
			Y:     groundY - h,
			W:     40 + b.rng.Float64()*40,
			H:     h,
			Light: b.rng.Float64() > 0.5,
		})
	}

	b.Specks = b.Specks[:0]
	for i := 0; i < 40; i++ {
		b.Specks = append(b.Specks, Speck{
			X:     b.rng.Float64() * canvasW,
			Size:  1 + b.rng.Float64()*2,
			Green: b.rng.Float64() > 0.5,
		})
	}
}

// Update scrolls every layer by the world speed.
func (b *Background) Update(_ float64, speed float64) {
	if b.canvasW <= 0 {
		return
	}
	for i := range b.Layers {
		l := &b.Layers[i]
		l.Offset = math.Mod(l.Offset+speed*l.Factor, b.canvasW)
	}

	for i := range b.Clouds {
		c := &b.Clouds[i]
		c.X -= speed*0.15 + c.Drift
		if c.X+c.W < 0 {
			c.X = b.canvasW + c.W
			c.Y = 20 + b.rng.Float64()*100
		}
	}

	for i := range b.Buildings {
		bld := &b.Buildings[i]
		bld.X -= speed * 0.4
		if bld.X+bld.W < 0 {
			bld.X = b.canvasW + b.rng.Float64()*60
			bld.H = 80 + b.rng.Float64()*150
			bld.Y = b.groundY - bld.H
		}
	}

	for i := range b.Specks {
		s := &b.Specks[i]
		s.X -= speed
		if s.X < 0 {
			s.X = b.canvasW
		}
	}
}

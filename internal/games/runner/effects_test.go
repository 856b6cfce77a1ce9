package runner

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

func newTestEffects(maxParticles int) *Effects {
	cfg := config.DefaultRunnerConfig().Effects
	cfg.MaxParticles = maxParticles
	return NewEffects(cfg, 1)
}

func TestEffectsRingOverwrite(t *testing.T) {
	fx := newTestEffects(4)
	for i := 0; i < 6; i++ {
		fx.Add(Particle{X: float64(i), MaxLife: 100})
	}
	if len(fx.P) != 4 {
		t.Fatalf("len = %d, expected 4", len(fx.P))
	}
	// Slots 0 and 1 were overwritten by particles 4 and 5.
	want := []float64{4, 5, 2, 3}
	for i, p := range fx.P {
		if p.X != want[i] {
			t.Errorf("slot %d x = %v, expected %v", i, p.X, want[i])
		}
	}
}

func TestEffectsSpawnIsBounded(t *testing.T) {
	fx := newTestEffects(512)
	for i := 0; i < 100; i++ {
		fx.Spawn(EffectPower, 100, 100, core.ColorDefault)
	}
	if len(fx.P) != 512 {
		t.Errorf("len = %d, expected the 512 cap", len(fx.P))
	}
	for _, p := range fx.P {
		if p.Color != core.ColorPurple || p.Kind != EffectPower {
			t.Fatalf("unexpected particle %+v", p)
		}
	}
}

func TestEffectsExpire(t *testing.T) {
	fx := newTestEffects(64)
	fx.Spawn(EffectCoin, 10, 10, core.ColorDefault)
	if len(fx.P) != 10 {
		t.Fatalf("coin burst = %d particles, expected 10", len(fx.P))
	}

	fx.Update(250)
	if len(fx.P) != 10 {
		t.Errorf("particles expired early: %d", len(fx.P))
	}
	for _, p := range fx.P {
		if p.Fade() != 0.5 {
			t.Errorf("fade = %v, expected 0.5", p.Fade())
		}
	}

	fx.Update(250)
	if len(fx.P) != 0 {
		t.Errorf("particles left after their life: %d", len(fx.P))
	}
}

func TestParticlesFall(t *testing.T) {
	fx := newTestEffects(8)
	fx.Add(Particle{Y: 100, VY: -2, MaxLife: 1000})
	for i := 0; i < 40; i++ {
		fx.Update(1)
	}
	if fx.P[0].VY <= 0 {
		t.Errorf("gravity should turn the particle around, vy=%v", fx.P[0].VY)
	}
}

func TestShakeDecays(t *testing.T) {
	fx := newTestEffects(8)
	if fx.Shaking() {
		t.Fatal("no shake expected at start")
	}
	if x, y := fx.ShakeOffset(); x != 0 || y != 0 {
		t.Errorf("offset without shake = (%v, %v)", x, y)
	}

	fx.Spawn(EffectHit, 0, 0, core.ColorDefault)
	if !fx.Shaking() {
		t.Fatal("hit burst should start a shake")
	}
	for _, p := range fx.P {
		if p.Color != core.ColorBrightRed {
			t.Fatalf("hit particle colour %v", p.Color)
		}
	}

	fx.StartShake(15, 500)
	for i := 0; i < 10; i++ {
		fx.Update(50)
		x, y := fx.ShakeOffset()
		if x < -7.5 || x > 7.5 || y < -7.5 || y > 7.5 {
			t.Fatalf("offset (%v, %v) exceeds the shake amount", x, y)
		}
	}
	if fx.Shaking() {
		t.Error("shake should be over after its duration")
	}

	fx.Clear()
	if len(fx.P) != 0 || fx.Shaking() {
		t.Error("clear should drop everything")
	}
}

package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestRenderBeforeInit(t *testing.T) {
	e, err := New(Options{Width: 960, Height: 576})
	if err != nil {
		t.Fatal(err)
	}
	dst := core.NewScreen(80, 24)
	e.Render(dst)
	if strings.TrimSpace(dst.String()) != "" {
		t.Error("uninitialized engine should render nothing")
	}
}

func TestRenderDrawsScene(t *testing.T) {
	e, _ := newTestEngine(t, CharModi)
	e.Start()
	for i := 0; i < 200; i++ {
		e.Step(16)
	}

	dst := core.NewScreen(80, 24)
	e.Render(dst)
	out := dst.String()

	if !strings.ContainsRune(out, GroundChar) {
		t.Error("ground line missing")
	}
	if !strings.ContainsRune(out, HeadChar) && e.player.Visible {
		t.Error("player missing")
	}
}

func TestRenderDyingScene(t *testing.T) {
	e, _ := newTestEngine(t, CharModi)
	e.Start()
	injectObstacle(e, ObstacleChair)
	e.Step(16)
	if e.State() != EngineDying {
		t.Fatalf("state = %v, expected dying", e.State())
	}

	// Every death frame renders, including tiny screens.
	for _, size := range [][2]int{{80, 24}, {10, 4}, {1, 1}} {
		for i := 0; i < 10; i++ {
			e.Step(50)
			dst := core.NewScreen(size[0], size[1])
			e.Render(dst)
		}
	}
}

func TestRenderScanShowsHiddenCoins(t *testing.T) {
	e, _ := newTestEngine(t, CharKejriwal)
	e.Start()
	s := e.Snapshot()
	s.Hidden = []Coin{{ID: 1, Type: CoinBribe, X: 600, Y: 300, W: 20, H: 20, Hidden: true}}

	dst := core.NewScreen(80, 24)
	Render(dst, s)
	if strings.ContainsRune(dst.String(), HiddenChar) {
		t.Error("hidden coins should stay hidden without the scan")
	}

	s.ScanOn = true
	Render(dst, s)
	if !strings.ContainsRune(dst.String(), HiddenChar) {
		t.Error("scan should outline hidden coins")
	}
}

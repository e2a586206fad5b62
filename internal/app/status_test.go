package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridlife/pkg/core"
	"gridlife/pkg/sims/life"
)

type bareSim struct{}

func (bareSim) Name() string    { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64)     {}
func (bareSim) Step()           {}
func (bareSim) Cells() []uint8  { return []uint8{0} }

func TestStatusLinesBareSim(t *testing.T) {
	got := statusLines(bareSim{}, true)
	if diff := cmp.Diff([]string{"bare [paused]"}, got); diff != "" {
		t.Fatalf("status (-want +got):\n%s", diff)
	}
}

func TestStatusLinesLife(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Wrap = 5, 5, false
	cfg.Pattern, cfg.PatternX, cfg.PatternY = "blinker", 1, 2
	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)
	sim.Step()

	want := []string{
		"life",
		"gen 1  pop 3",
		"Board: w=5 h=5 wrap=false inert_border=false",
		"Evolution: rule=B3/S23 workers=1",
		"Seeding: density=0.5 seed=42 pattern=blinker",
	}
	if diff := cmp.Diff(want, statusLines(sim, false)); diff != "" {
		t.Fatalf("status (-want +got):\n%s", diff)
	}
}

package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
	if NewRNG(1).Chance(0) {
		t.Fatal("Chance(0) must never fire")
	}
	if !NewRNG(1).Chance(1) {
		t.Fatal("Chance(1) must always fire")
	}
	if got := NewRNG(1).IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d", got)
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 1)
	g.Set(3, 0, 1)
	g.Set(-1, 0, 1)
	want := []uint8{0, 0, 0, 0, 0, 1}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want)
	}
	if g.In(3, 0) || !g.In(2, 1) {
		t.Fatal("unexpected In results")
	}
	if idx := g.Index(2, 1); idx != 5 {
		t.Fatalf("Index(2,1) = %d, want 5", idx)
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	if _, ok := Lookup("nil-factory"); ok {
		t.Fatal("nil factories must not register")
	}

	Register("zz-test", func(map[string]string) (Sim, error) { return nil, nil })
	defer delete(sims, "zz-test")
	if _, ok := Lookup("zz-test"); !ok {
		t.Fatal("registered factory not found")
	}
	if !slices.Contains(Names(), "zz-test") {
		t.Fatalf("Names() = %v, missing zz-test", Names())
	}
	if _, ok := Lookup(""); ok {
		t.Fatal("empty names must not register")
	}
}

func TestParameterFlatten(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Board", Params: []Parameter{IntParam("w", "Width", 8), BoolParam("wrap", "Wrap", true)}},
		{Name: "Rule", Params: []Parameter{StringParam("rule", "Rule", "B3/S23")}},
	}}
	want := []any{"w", "8", "wrap", "true", "rule", "B3/S23"}
	if got := snap.Flatten(); !slices.Equal(got, want) {
		t.Fatalf("Flatten = %v, want %v", got, want)
	}
}

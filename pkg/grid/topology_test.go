package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func neighborCoords(topo *Topology, c Coord) map[Direction]Coord {
	out := map[Direction]Coord{}
	for d, cell := range topo.Neighbors(c) {
		out[d] = cell.Coord()
	}
	return out
}

func TestBuildRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		w, h int
		wrap bool
		err  error
	}{
		{0, 4, false, ErrInvalidDimension},
		{4, 0, false, ErrInvalidDimension},
		{-3, 2, true, ErrInvalidDimension},
		{1, 5, true, ErrDegenerateWrap},
		{5, 1, true, ErrDegenerateWrap},
		{1, 1, true, ErrDegenerateWrap},
	}
	for _, tc := range cases {
		topo, err := Build(tc.w, tc.h, tc.wrap)
		require.ErrorIs(t, err, tc.err, "build %dx%d wrap=%v", tc.w, tc.h, tc.wrap)
		require.Nil(t, topo)
	}

	topo, err := Build(1, 1, false)
	require.NoError(t, err)
	require.Equal(t, 0, topo.LinkCount())
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	for w := 1; w <= 6; w++ {
		for h := 1; h <= 6; h++ {
			for _, wrap := range []bool{false, true} {
				if wrap && (w < 2 || h < 2) {
					continue
				}
				topo, err := Build(w, h, wrap)
				require.NoError(t, err)
				require.NoError(t, topo.Validate(), "%dx%d wrap=%v", w, h, wrap)

				for cell := range topo.Cells() {
					for d, nb := range topo.Neighbors(cell.Coord()) {
						back, ok := topo.Neighbor(nb.Coord(), d.Opposite())
						if !ok || back != cell {
							t.Fatalf("%dx%d wrap=%v: %s -%s-> %s has no reverse link", w, h, wrap, cell.Coord(), d, nb.Coord())
						}
					}
				}
			}
		}
	}
}

func TestUnwrappedDegrees(t *testing.T) {
	topo, err := Build(5, 4, false)
	require.NoError(t, err)

	for cell := range topo.Cells() {
		c := cell.Coord()
		want := 8
		switch {
		case topo.Corner(c):
			want = 3
		case topo.OnBorder(c):
			want = 5
		}
		if got := cell.Degree(); got != want {
			t.Fatalf("cell %s degree = %d, want %d", c, got, want)
		}
	}
}

func TestUnwrappedDiagonalsFollowCardinals(t *testing.T) {
	topo, err := Build(4, 3, false)
	require.NoError(t, err)

	for cell := range topo.Cells() {
		for _, d := range Directions {
			a, b, ok := d.Bridges()
			if !ok {
				continue
			}
			_, hasA := cell.Link(a)
			_, hasB := cell.Link(b)
			_, hasD := cell.Link(d)
			if hasD != (hasA && hasB) {
				t.Fatalf("cell %s: %s present=%v but %s=%v %s=%v", cell.Coord(), d, hasD, a, hasA, b, hasB)
			}
		}
	}

	got := neighborCoords(topo, C(0, 0))
	want := map[Direction]Coord{N: {0, 1}, NE: {1, 1}, E: {1, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("corner neighbors mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleRowHasNoDiagonals(t *testing.T) {
	topo, err := Build(4, 1, false)
	require.NoError(t, err)

	got := neighborCoords(topo, C(1, 0))
	want := map[Direction]Coord{E: {2, 0}, W: {0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("neighbors mismatch (-want +got):\n%s", diff)
	}
}

func TestWrappedEveryCellHasEightNeighbors(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {2, 5}, {3, 3}, {7, 4}} {
		topo, err := Build(size[0], size[1], true)
		require.NoError(t, err)
		for cell := range topo.Cells() {
			if got := cell.Degree(); got != NumDirections {
				t.Fatalf("%v: cell %s degree = %d", size, cell.Coord(), got)
			}
		}
		require.Equal(t, NumDirections*topo.Len(), topo.LinkCount())
	}
}

func TestWrappedCornerNeighbors(t *testing.T) {
	topo, err := Build(4, 4, true)
	require.NoError(t, err)

	cases := map[Coord]map[Direction]Coord{
		{0, 0}: {N: {0, 1}, NE: {1, 1}, E: {1, 0}, SE: {1, 3}, S: {0, 3}, SW: {3, 3}, W: {3, 0}, NW: {3, 1}},
		{3, 0}: {N: {3, 1}, NE: {0, 1}, E: {0, 0}, SE: {0, 3}, S: {3, 3}, SW: {2, 3}, W: {2, 0}, NW: {2, 1}},
		{0, 3}: {N: {0, 0}, NE: {1, 0}, E: {1, 3}, SE: {1, 2}, S: {0, 2}, SW: {3, 2}, W: {3, 3}, NW: {3, 0}},
		{3, 3}: {N: {3, 0}, NE: {0, 0}, E: {0, 3}, SE: {0, 2}, S: {3, 2}, SW: {2, 2}, W: {2, 3}, NW: {2, 0}},
	}
	for c, want := range cases {
		if diff := cmp.Diff(want, neighborCoords(topo, c)); diff != "" {
			t.Fatalf("neighbors of %s mismatch (-want +got):\n%s", c, diff)
		}
	}
}

func TestWrappedEdgeNeighbors(t *testing.T) {
	topo, err := Build(5, 4, true)
	require.NoError(t, err)

	got := neighborCoords(topo, C(0, 2))
	want := map[Direction]Coord{N: {0, 3}, NE: {1, 3}, E: {1, 2}, SE: {1, 1}, S: {0, 1}, SW: {4, 1}, W: {4, 2}, NW: {4, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("west edge neighbors mismatch (-want +got):\n%s", diff)
	}

	got = neighborCoords(topo, C(2, 3))
	want = map[Direction]Coord{N: {2, 0}, NE: {3, 0}, E: {3, 3}, SE: {3, 2}, S: {2, 2}, SW: {1, 2}, W: {1, 3}, NW: {1, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("north edge neighbors mismatch (-want +got):\n%s", diff)
	}
}

func TestNoDoubleLinking(t *testing.T) {
	type edge struct{ a, b int }
	for _, size := range [][2]int{{1, 1}, {1, 4}, {3, 3}, {6, 5}} {
		w, h := size[0], size[1]
		topo, err := Build(w, h, false)
		require.NoError(t, err)

		edges := map[edge]struct{}{}
		for i := 0; i < topo.Len(); i++ {
			cell := topo.At(i)
			for _, d := range Directions {
				j, ok := cell.Link(d)
				if !ok {
					continue
				}
				e := edge{a: i, b: j}
				if j < i {
					e = edge{a: j, b: i}
				}
				edges[e] = struct{}{}
			}
		}

		undirected := (w-1)*h + w*(h-1) + 2*max(w-1, 0)*max(h-1, 0)
		require.Len(t, edges, undirected, "%dx%d", w, h)
		require.Equal(t, 2*len(edges), topo.LinkCount(), "%dx%d", w, h)
	}
}

func TestTwoWideTorusSharesEastAndWest(t *testing.T) {
	topo, err := Build(2, 3, true)
	require.NoError(t, err)
	require.NoError(t, topo.Validate())

	east, ok := topo.Neighbor(C(0, 1), E)
	require.True(t, ok)
	west, ok := topo.Neighbor(C(0, 1), W)
	require.True(t, ok)
	require.Same(t, east, west)
	require.Equal(t, C(1, 1), east.Coord())
}

func TestCellsIsStableAndRestartable(t *testing.T) {
	topo, err := Build(3, 2, false)
	require.NoError(t, err)

	collect := func() []Coord {
		var out []Coord
		for cell := range topo.Cells() {
			out = append(out, cell.Coord())
		}
		return out
	}
	first := collect()
	want := []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("iteration order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first, collect()); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}

	seen := 0
	for range topo.Cells() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestLookup(t *testing.T) {
	topo, err := Build(3, 3, false)
	require.NoError(t, err)

	cell, err := topo.Lookup(C(2, 1))
	require.NoError(t, err)
	require.Equal(t, C(2, 1), cell.Coord())

	_, err = topo.Lookup(C(3, 0))
	require.ErrorIs(t, err, ErrUnknownCoordinate)

	_, ok := topo.Cell(C(-1, 0))
	require.False(t, ok)
	require.Nil(t, topo.Neighbors(C(0, 7)))
}

func TestInertBorder(t *testing.T) {
	topo, err := BuildWithOptions(Options{Width: 4, Height: 4, InertBorder: true})
	require.NoError(t, err)

	for cell := range topo.Cells() {
		require.Equal(t, topo.OnBorder(cell.Coord()), cell.Inert(), "cell %s", cell.Coord())
	}

	border, _ := topo.Cell(C(0, 2))
	border.SetState(Alive)
	border.SetNext(Alive)
	border.Commit()
	require.False(t, border.Alive())

	inner, _ := topo.Cell(C(1, 1))
	inner.SetNext(Alive)
	inner.Commit()
	require.True(t, inner.Alive())
}

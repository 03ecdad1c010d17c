package model

import (
	"math/rand/v2"
	"testing"
)

func mustGrid(t *testing.T, columns, rows int) *Grid {
	t.Helper()
	g, err := New(columns, rows)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", columns, rows, err)
	}
	return g
}

func TestNewGridAllDead(t *testing.T) {
	g := mustGrid(t, 7, 4)

	if cols, rows := g.Dimensions(); cols != 7 || rows != 4 {
		t.Fatalf("Dimensions() = (%d, %d), expected (7, 4)", cols, rows)
	}
	for c := 0; c < g.Columns(); c++ {
		for r := 0; r < g.Rows(); r++ {
			if g.Get(c, r) {
				t.Fatalf("fresh grid cell (%d,%d) is alive", c, r)
			}
		}
	}
}

func TestNewGridInvalidDimensions(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -2}, {0, 0}}
	for _, dims := range cases {
		if _, err := New(dims[0], dims[1]); err == nil {
			t.Errorf("New(%d, %d) succeeded, expected error", dims[0], dims[1])
		}
	}
}

func TestSetGetToggle(t *testing.T) {
	g := mustGrid(t, 5, 5)

	g.Set(2, 3, true)
	if !g.Get(2, 3) {
		t.Fatal("cell (2,3) dead after Set(2, 3, true)")
	}
	if g.Get(3, 2) {
		t.Fatal("cell (3,2) alive, only (2,3) was set")
	}

	g.Toggle(2, 3)
	if g.Get(2, 3) {
		t.Fatal("cell (2,3) alive after toggle")
	}
	g.Toggle(2, 3)
	if !g.Get(2, 3) {
		t.Fatal("cell (2,3) dead after second toggle")
	}
}

func TestOutOfRangeAccessPanics(t *testing.T) {
	g := mustGrid(t, 5, 3)

	cases := [][2]int{{5, 0}, {0, 3}, {-1, 0}, {0, -1}, {5, 3}}
	for _, pos := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d, %d) did not panic", pos[0], pos[1])
				}
			}()
			g.Get(pos[0], pos[1])
		}()
	}
}

func TestClearMatchesFreshGrid(t *testing.T) {
	g := mustGrid(t, 6, 6)
	g.AddGlider(1, 1)
	g.Set(5, 5, true)

	g.Clear()

	fresh := mustGrid(t, 6, 6)
	for c := 0; c < 6; c++ {
		for r := 0; r < 6; r++ {
			if g.Get(c, r) != fresh.Get(c, r) {
				t.Fatalf("cleared grid differs from fresh grid at (%d,%d)", c, r)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Set(1, 1, true)

	clone := g.Clone()
	if !clone.Get(1, 1) {
		t.Fatal("clone lost cell (1,1)")
	}

	clone.Set(2, 2, true)
	if g.Get(2, 2) {
		t.Fatal("mutating the clone changed the original")
	}
	g.Set(3, 3, true)
	if clone.Get(3, 3) {
		t.Fatal("mutating the original changed the clone")
	}
}

func TestPopulation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	if g.Population() != 0 {
		t.Fatalf("fresh grid population = %d, expected 0", g.Population())
	}

	g.AddBlinker(1, 2)
	if g.Population() != 3 {
		t.Fatalf("population after blinker = %d, expected 3", g.Population())
	}

	g.AddGlider(0, 0)
	// The glider overlaps the blinker at (1,2) and (2,2), so 3 new cells appear.
	if g.Population() != 6 {
		t.Fatalf("population after glider = %d, expected 6", g.Population())
	}
}

func TestRandomizeDensityBounds(t *testing.T) {
	g := mustGrid(t, 10, 10)
	rng := rand.New(rand.NewPCG(1, 0))

	g.Randomize(rng, 1.0)
	if g.Population() != 100 {
		t.Fatalf("density 1.0 population = %d, expected 100", g.Population())
	}

	g.Randomize(rng, 0.0)
	if g.Population() != 0 {
		t.Fatalf("density 0.0 population = %d, expected 0", g.Population())
	}
}

func TestPoolReturnsZeroedGrid(t *testing.T) {
	pool := NewGridPool()

	dirty := mustGrid(t, 6, 4)
	dirty.AddGlider(1, 1)
	pool.Put(dirty)

	g := pool.Get(6, 4)
	if cols, rows := g.Dimensions(); cols != 6 || rows != 4 {
		t.Fatalf("pooled grid dimensions = (%d, %d), expected (6, 4)", cols, rows)
	}
	if g.Population() != 0 {
		t.Fatalf("pooled grid population = %d, expected 0", g.Population())
	}

	// Reshaping to different dimensions must also yield a dead field.
	pool.Put(g)
	g = pool.Get(3, 9)
	if cols, rows := g.Dimensions(); cols != 3 || rows != 9 {
		t.Fatalf("reshaped pooled grid dimensions = (%d, %d), expected (3, 9)", cols, rows)
	}
	if g.Population() != 0 {
		t.Fatalf("reshaped pooled grid population = %d, expected 0", g.Population())
	}
}

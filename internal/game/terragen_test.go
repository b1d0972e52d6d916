package game

import (
	"math/rand"
	"testing"
)

func TestGenerateTerrain_Dimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr, spawns := GenerateTerrain(rng, 800, 600, []int{200, 600}, Vec2{29, 25})

	if tr.Width() != 800 {
		t.Fatalf("width = %d, want 800", tr.Width())
	}
	if len(spawns) != 2 {
		t.Fatalf("spawns = %d, want 2", len(spawns))
	}
	for x, col := range tr.Columns {
		if len(col) != 2 || col[0] != 0 {
			t.Fatalf("column %d = %v, want a single ground interval", x, col)
		}
	}
}

func TestGenerateTerrain_HeightBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	mapH := 600
	tankSize := Vec2{29, 25}
	tr, _ := GenerateTerrain(rng, 1000, mapH, []int{300, 700}, tankSize)

	maxHeight := float64(mapH) - tankSize.Y*2
	for x := 0; x < tr.Width(); x++ {
		top := tr.TopAt(x)
		if top < 1 || top > maxHeight {
			t.Fatalf("column %d top = %v, want within [1, %v]", x, top, maxHeight)
		}
	}
}

func TestGenerateTerrain_FlatLedges(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tankSize := Vec2{29, 25}
	tankW := int(tankSize.X)
	xs := []int{250, 650}
	tr, spawns := GenerateTerrain(rng, 1000, 600, xs, tankSize)

	for i, x := range xs {
		ledge := tr.TopAt(x)
		if spawns[i] != (Vec2{float64(x), ledge}) {
			t.Fatalf("spawn %d = %v, want (%d, %v)", i, spawns[i], x, ledge)
		}
		for dx := 0; dx < tankW; dx++ {
			if got := tr.TopAt(x + dx); got != ledge {
				t.Fatalf("ledge %d column %d top = %v, want flat at %v", i, x+dx, got, ledge)
			}
		}
	}
}

func TestGenerateTerrain_Deterministic(t *testing.T) {
	gen := func() *Terrain {
		rng := rand.New(rand.NewSource(99))
		tr, _ := GenerateTerrain(rng, 500, 400, []int{150, 350}, Vec2{29, 25})
		return tr
	}
	a, b := gen(), gen()
	for x := 0; x < a.Width(); x++ {
		if a.TopAt(x) != b.TopAt(x) {
			t.Fatalf("column %d differs between identical seeds: %v vs %v",
				x, a.TopAt(x), b.TopAt(x))
		}
	}
}

func TestTopology_CoversMap(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	points := topology(rng, 100, 1000, 600, 550)

	if len(points) == 0 {
		t.Fatal("no waypoints generated")
	}
	last := points[len(points)-1]
	if last.X < 1000 {
		t.Fatalf("last waypoint at x=%v, want >= map width", last.X)
	}
	for i := 1; i < len(points); i++ {
		if points[i].X < points[i-1].X {
			t.Fatalf("waypoints out of order at %d: %v after %v", i, points[i], points[i-1])
		}
	}
}

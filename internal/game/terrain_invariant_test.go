package game

import (
	"testing"

	"pgregory.net/rapid"
)

// Excavation must always leave columns as sorted, even-length interval
// lists, no matter where the craters land.
func TestTerrain_ExcavateInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := NewFlatTerrain(64, 200)
		craters := rapid.IntRange(1, 8).Draw(rt, "craters")
		for i := 0; i < craters; i++ {
			tr.Excavate(Circle{
				Center: Vec2{
					X: rapid.Float64Range(-20, 84).Draw(rt, "cx"),
					Y: rapid.Float64Range(-20, 220).Draw(rt, "cy"),
				},
				Radius: rapid.Float64Range(1, 60).Draw(rt, "r"),
			})
		}

		for x, col := range tr.Columns {
			if len(col)%2 != 0 {
				rt.Fatalf("column %d has odd length: %v", x, col)
			}
			for i := 1; i < len(col); i++ {
				if col[i] < col[i-1] {
					rt.Fatalf("column %d not sorted: %v", x, col)
				}
			}
		}
	})
}

// Craters only remove material.
func TestTerrain_ExcavateNeverAdds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := NewFlatTerrain(64, 200)
		before := solidTotal(tr)

		tr.Excavate(Circle{
			Center: Vec2{
				X: rapid.Float64Range(0, 64).Draw(rt, "cx"),
				Y: rapid.Float64Range(0, 200).Draw(rt, "cy"),
			},
			Radius: rapid.Float64Range(1, 80).Draw(rt, "r"),
		})

		if after := solidTotal(tr); after > before+1e-9 {
			rt.Fatalf("solid material grew: %v -> %v", before, after)
		}
	})
}

func solidTotal(tr *Terrain) float64 {
	total := 0.0
	for _, col := range tr.Columns {
		for i := 0; i < len(col)/2; i++ {
			total += col[2*i+1] - col[2*i]
		}
	}
	return total
}

package game

import "math"

// Terrain is a destructible heightfield with one column per world x unit.
// Each column holds an even number of y values forming solid intervals
// from the bottom up: col[0]..col[1] is solid, col[2]..col[3] is solid,
// and so on. Craters can split a column into several intervals, which is
// how tunnels and overhangs survive repeated shelling.
type Terrain struct {
	Columns [][]float64
}

// NewFlatTerrain builds width columns of uniform height.
func NewFlatTerrain(width int, height float64) *Terrain {
	cols := make([][]float64, width)
	for x := range cols {
		cols[x] = []float64{0, height}
	}
	return &Terrain{Columns: cols}
}

// Width returns the number of columns.
func (t *Terrain) Width() int { return len(t.Columns) }

// TopAt returns the highest solid y in column x, or 0 for an empty or
// out-of-range column.
func (t *Terrain) TopAt(x int) float64 {
	if x < 0 || x >= len(t.Columns) {
		return 0
	}
	col := t.Columns[x]
	if len(col) == 0 {
		return 0
	}
	return col[len(col)-1]
}

// CollideWith reports whether any solid interval intersects the rect.
// Only columns under the rect's horizontal extent are examined.
func (t *Terrain) CollideWith(r OrientedRect) bool {
	min, max := r.BBox()
	lo := int(math.Floor(min.X))
	hi := int(math.Ceil(max.X))
	if lo < 0 {
		lo = 0
	}
	if hi > len(t.Columns) {
		hi = len(t.Columns)
	}
	for x := lo; x < hi; x++ {
		col := t.Columns[x]
		fx := float64(x)
		for i := 0; i < len(col)/2; i++ {
			if r.CollideSegment(Vec2{fx, col[2*i]}, Vec2{fx, col[2*i+1]}) {
				return true
			}
		}
	}
	return false
}

// Excavate removes the disc c from the terrain. Intervals fully inside
// the disc vanish, intervals clipped at one end are shortened, and an
// interval straddling the disc is split in two.
func (t *Terrain) Excavate(c Circle) {
	min, max := c.BBox()
	lo := int(math.Floor(min.X))
	hi := int(math.Ceil(max.X)) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > len(t.Columns) {
		hi = len(t.Columns)
	}
	for x := lo; x < hi; x++ {
		fx := float64(x)
		top, bottom, ok := c.YAt(fx)
		if !ok {
			continue
		}
		col := t.Columns[x]
		// Walk intervals top-down so splices don't disturb lower indices.
		for i := len(col)/2 - 1; i >= 0; i-- {
			bot, tp := col[2*i], col[2*i+1]
			if !c.CollideSegment(Vec2{fx, bot}, Vec2{fx, tp}) {
				continue
			}
			botIn := c.CollidePoint(Vec2{fx, bot})
			topIn := c.CollidePoint(Vec2{fx, tp})
			switch {
			case botIn && topIn:
				col = append(col[:2*i], col[2*i+2:]...)
			case botIn:
				col[2*i] = top
			case topIn:
				col[2*i+1] = bottom
			default:
				// Disc is strictly inside the interval: split it.
				rest := append([]float64{bottom, top}, col[2*i+1:]...)
				col = append(col[:2*i+1], rest...)
			}
		}
		t.Columns[x] = col
	}
}

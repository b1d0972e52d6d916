package game

import "math"

// segmentsIntersect reports whether the closed segments a1-a2 and b1-b2
// cross. Parallel and collinear segments never intersect here; overlapping
// collinear segments are treated as a miss, which is adequate for the
// collision queries the simulation makes.
func segmentsIntersect(a1, a2, b1, b2 Vec2) bool {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	denom := da.X*db.Y - da.Y*db.X
	if denom == 0 {
		return false
	}
	d := b1.Sub(a1)
	t := (d.X*db.Y - d.Y*db.X) / denom
	u := (d.X*da.Y - d.Y*da.X) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// solveQuadratic solves a*x^2 + b*x + c = 0. When real roots exist it
// returns them with t1 >= t2 and ok=true. A double root is returned in
// both positions.
func solveQuadratic(a, b, c float64) (t1, t2 float64, ok bool) {
	disc := b*b - 4*a*c
	if a == 0 || disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	t1 = (-b + sq) / (2 * a)
	t2 = (-b - sq) / (2 * a)
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// OrientedRect is a rectangle that rotates about Center. BLOffset places the
// bottom-left corner relative to Center in the rect's local frame, so the
// pivot need not be the geometric middle (tank barrels pivot at their base).
type OrientedRect struct {
	Center   Vec2
	Size     Vec2
	BLOffset Vec2
	Rotation float64 // degrees CCW
}

// Corners returns the four corners in world space, in bottom-left,
// bottom-right, top-right, top-left order.
func (r OrientedRect) Corners() [4]Vec2 {
	local := [4]Vec2{
		r.BLOffset,
		{r.BLOffset.X + r.Size.X, r.BLOffset.Y},
		{r.BLOffset.X + r.Size.X, r.BLOffset.Y + r.Size.Y},
		{r.BLOffset.X, r.BLOffset.Y + r.Size.Y},
	}
	var out [4]Vec2
	for i, c := range local {
		out[i] = r.Center.Add(c.Rotate(r.Rotation))
	}
	return out
}

// BBox returns the axis-aligned bounds of the rect as (min, max).
func (r OrientedRect) BBox() (Vec2, Vec2) {
	cs := r.Corners()
	min, max := cs[0], cs[0]
	for _, c := range cs[1:] {
		min.X = math.Min(min.X, c.X)
		min.Y = math.Min(min.Y, c.Y)
		max.X = math.Max(max.X, c.X)
		max.Y = math.Max(max.Y, c.Y)
	}
	return min, max
}

// CollidePoint reports whether p lies inside the rect, borders included.
func (r OrientedRect) CollidePoint(p Vec2) bool {
	lp := p.Sub(r.Center).Rotate(-r.Rotation)
	return lp.X >= r.BLOffset.X && lp.X <= r.BLOffset.X+r.Size.X &&
		lp.Y >= r.BLOffset.Y && lp.Y <= r.BLOffset.Y+r.Size.Y
}

// CollideSegment reports whether the segment v1-v2 touches the rect: it
// either crosses a side or lies entirely inside.
func (r OrientedRect) CollideSegment(v1, v2 Vec2) bool {
	cs := r.Corners()
	for i := range cs {
		if segmentsIntersect(v1, v2, cs[i], cs[(i+1)%4]) {
			return true
		}
	}
	return r.CollidePoint(v1) && r.CollidePoint(v2)
}

// CollideRect reports whether r overlaps o. Edges are tested pairwise,
// then containment of o inside r. Note the query is directional: r fully
// inside o is not detected, callers test both orders when they need that.
func (r OrientedRect) CollideRect(o OrientedRect) bool {
	rc := r.Corners()
	oc := o.Corners()
	for i := range rc {
		for j := range oc {
			if segmentsIntersect(rc[i], rc[(i+1)%4], oc[j], oc[(j+1)%4]) {
				return true
			}
		}
	}
	for _, c := range oc {
		if !r.CollidePoint(c) {
			return false
		}
	}
	return true
}

// Circle is a disc used for explosion craters and blast queries.
type Circle struct {
	Center Vec2
	Radius float64
}

func (c Circle) CollidePoint(p Vec2) bool {
	return p.Sub(c.Center).Len2() <= c.Radius*c.Radius
}

// BBox returns the axis-aligned bounds of the circle as (min, max).
func (c Circle) BBox() (Vec2, Vec2) {
	r := Vec2{c.Radius, c.Radius}
	return c.Center.Sub(r), c.Center.Add(r)
}

// CollideSegment reports whether the segment v1-v2 touches the disc.
func (c Circle) CollideSegment(v1, v2 Vec2) bool {
	if c.CollidePoint(v1) || c.CollidePoint(v2) {
		return true
	}
	dir := v2.Sub(v1)
	rel := v1.Sub(c.Center)
	a := dir.Dot(dir)
	b := 2 * dir.Dot(rel)
	k := rel.Dot(rel) - c.Radius*c.Radius
	t1, t2, ok := solveQuadratic(a, b, k)
	if !ok {
		return false
	}
	return (t1 >= 0 && t1 <= 1) || (t2 >= 0 && t2 <= 1)
}

// YAt returns the circle's top and bottom y at vertical line x. ok is
// false when the line misses the circle.
func (c Circle) YAt(x float64) (top, bottom float64, ok bool) {
	dx := x - c.Center.X
	b := -2 * c.Center.Y
	k := c.Center.Y*c.Center.Y + dx*dx - c.Radius*c.Radius
	return solveQuadratic(1, b, k)
}

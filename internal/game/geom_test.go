package game

import (
	"testing"

	"pgregory.net/rapid"
)

func TestSegmentsIntersect_Crossing(t *testing.T) {
	if !segmentsIntersect(Vec2{0, 0}, Vec2{10, 10}, Vec2{0, 10}, Vec2{10, 0}) {
		t.Fatal("expected crossing diagonals to intersect")
	}
}

func TestSegmentsIntersect_Disjoint(t *testing.T) {
	if segmentsIntersect(Vec2{0, 0}, Vec2{1, 1}, Vec2{5, 5}, Vec2{6, 6}) {
		t.Fatal("collinear disjoint segments should not intersect")
	}
	if segmentsIntersect(Vec2{0, 0}, Vec2{10, 0}, Vec2{0, 1}, Vec2{10, 1}) {
		t.Fatal("parallel segments should not intersect")
	}
}

func TestSegmentsIntersect_Touching(t *testing.T) {
	// Shared endpoint counts as an intersection.
	if !segmentsIntersect(Vec2{0, 0}, Vec2{5, 5}, Vec2{5, 5}, Vec2{10, 0}) {
		t.Fatal("segments sharing an endpoint should intersect")
	}
}

func TestSolveQuadratic(t *testing.T) {
	t1, t2, ok := solveQuadratic(1, 0, -25)
	if !ok {
		t.Fatal("expected real roots")
	}
	if t1 != 5 || t2 != -5 {
		t.Fatalf("roots = (%v, %v), want (5, -5)", t1, t2)
	}
}

func TestSolveQuadratic_NoRoots(t *testing.T) {
	if _, _, ok := solveQuadratic(1, 0, 25); ok {
		t.Fatal("expected no real roots")
	}
	if _, _, ok := solveQuadratic(0, 1, 1); ok {
		t.Fatal("degenerate a=0 should report no roots")
	}
}

func TestOrientedRect_CollidePoint(t *testing.T) {
	r := OrientedRect{Center: Vec2{10, 10}, Size: Vec2{4, 2}, BLOffset: Vec2{-2, -1}}
	if !r.CollidePoint(Vec2{10, 10}) {
		t.Error("center should be inside")
	}
	if !r.CollidePoint(Vec2{12, 11}) {
		t.Error("corner should be inside (inclusive bounds)")
	}
	if r.CollidePoint(Vec2{12.1, 10}) {
		t.Error("point past the right edge should be outside")
	}
}

func TestOrientedRect_CollidePoint_Rotated(t *testing.T) {
	// Unit square centered at origin, rotated 45 degrees. Its corner now
	// reaches sqrt(0.5) along the axes.
	r := OrientedRect{Size: Vec2{1, 1}, BLOffset: Vec2{-0.5, -0.5}, Rotation: 45}
	if !r.CollidePoint(Vec2{0.7, 0}) {
		t.Error("point inside rotated extent should collide")
	}
	if r.CollidePoint(Vec2{0.49, 0.49}) {
		t.Error("old corner area should be outside after rotation")
	}
}

func TestOrientedRect_CollideSegment(t *testing.T) {
	r := OrientedRect{Center: Vec2{5, 5}, Size: Vec2{2, 2}, BLOffset: Vec2{-1, -1}}
	if !r.CollideSegment(Vec2{0, 5}, Vec2{10, 5}) {
		t.Error("segment through the rect should collide")
	}
	if !r.CollideSegment(Vec2{4.5, 4.5}, Vec2{5.5, 5.5}) {
		t.Error("segment fully inside should collide")
	}
	if r.CollideSegment(Vec2{0, 0}, Vec2{10, 0}) {
		t.Error("segment below the rect should not collide")
	}
}

func TestOrientedRect_CollideRect(t *testing.T) {
	a := OrientedRect{Center: Vec2{0, 0}, Size: Vec2{4, 4}, BLOffset: Vec2{-2, -2}}
	b := OrientedRect{Center: Vec2{3, 0}, Size: Vec2{4, 4}, BLOffset: Vec2{-2, -2}}
	c := OrientedRect{Center: Vec2{10, 10}, Size: Vec2{2, 2}, BLOffset: Vec2{-1, -1}}
	if !a.CollideRect(b) {
		t.Error("overlapping rects should collide")
	}
	if a.CollideRect(c) {
		t.Error("distant rects should not collide")
	}
}

func TestOrientedRect_CollideRect_Contained(t *testing.T) {
	outer := OrientedRect{Size: Vec2{10, 10}, BLOffset: Vec2{-5, -5}}
	inner := OrientedRect{Size: Vec2{2, 2}, BLOffset: Vec2{-1, -1}}
	if !outer.CollideRect(inner) {
		t.Error("rect containing the argument should collide")
	}
	// The query is directional: containment of the receiver inside the
	// argument is not detected without edge crossings.
	if inner.CollideRect(outer) {
		t.Error("receiver inside argument reports no collision")
	}
}

func TestOrientedRect_BBox(t *testing.T) {
	r := OrientedRect{Center: Vec2{10, 10}, Size: Vec2{4, 2}, BLOffset: Vec2{-2, -1}}
	min, max := r.BBox()
	if min != (Vec2{8, 9}) || max != (Vec2{12, 11}) {
		t.Fatalf("BBox = %v..%v", min, max)
	}
}

// A point inside the rect's local box stays inside when both the rect
// and the point rotate together about the center.
func TestOrientedRect_CollidePointRotationInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := OrientedRect{
			Center:   Vec2{rapid.Float64Range(-100, 100).Draw(rt, "cx"), rapid.Float64Range(-100, 100).Draw(rt, "cy")},
			Size:     Vec2{rapid.Float64Range(1, 50).Draw(rt, "w"), rapid.Float64Range(1, 50).Draw(rt, "h")},
			BLOffset: Vec2{rapid.Float64Range(-25, 0).Draw(rt, "ox"), rapid.Float64Range(-25, 0).Draw(rt, "oy")},
		}
		// A point strictly inside the axis-aligned box.
		local := Vec2{
			r.BLOffset.X + r.Size.X*rapid.Float64Range(0.05, 0.95).Draw(rt, "fx"),
			r.BLOffset.Y + r.Size.Y*rapid.Float64Range(0.05, 0.95).Draw(rt, "fy"),
		}
		deg := rapid.Float64Range(-360, 360).Draw(rt, "deg")

		r.Rotation = deg
		world := r.Center.Add(local.Rotate(deg))
		if !r.CollidePoint(world) {
			rt.Fatalf("interior point left the rect under rotation %v", deg)
		}
	})
}

func TestCircle_CollidePointInclusive(t *testing.T) {
	c := Circle{Center: Vec2{0, 0}, Radius: 5}
	if !c.CollidePoint(Vec2{0, 0}) {
		t.Error("center should collide")
	}
	if !c.CollidePoint(Vec2{5, 0}) {
		t.Error("boundary point should collide (inclusive)")
	}
	if c.CollidePoint(Vec2{5.001, 0}) {
		t.Error("point just outside should not collide")
	}
}

func TestCircle_BBox(t *testing.T) {
	c := Circle{Center: Vec2{10, 20}, Radius: 5}
	min, max := c.BBox()
	if min != (Vec2{5, 15}) || max != (Vec2{15, 25}) {
		t.Fatalf("BBox = %v..%v", min, max)
	}
}

func TestCircle_CollideSegment(t *testing.T) {
	c := Circle{Center: Vec2{5, 5}, Radius: 2}
	if !c.CollideSegment(Vec2{0, 5}, Vec2{10, 5}) {
		t.Error("chord through the circle should collide")
	}
	if !c.CollideSegment(Vec2{5, 5}, Vec2{5.5, 5}) {
		t.Error("segment inside the circle should collide")
	}
	if c.CollideSegment(Vec2{0, 0}, Vec2{10, 0}) {
		t.Error("segment far below should not collide")
	}
	if c.CollideSegment(Vec2{0, 5}, Vec2{2, 5}) {
		t.Error("segment stopping short of the circle should not collide")
	}
}

func TestCircle_YAt(t *testing.T) {
	c := Circle{Center: Vec2{0, 10}, Radius: 5}
	top, bottom, ok := c.YAt(0)
	if !ok {
		t.Fatal("vertical line through the center should hit")
	}
	if top != 15 || bottom != 5 {
		t.Fatalf("YAt(0) = (%v, %v), want (15, 5)", top, bottom)
	}
	if _, _, ok := c.YAt(6); ok {
		t.Fatal("line outside the circle should miss")
	}
}

func TestCircle_YAt_Tangent(t *testing.T) {
	c := Circle{Center: Vec2{0, 10}, Radius: 5}
	top, bottom, ok := c.YAt(5)
	if !ok {
		t.Fatal("tangent line should hit")
	}
	if top != bottom {
		t.Fatalf("tangent roots differ: %v vs %v", top, bottom)
	}
}

package game

import "testing"

func TestTank_DerivedSizes(t *testing.T) {
	tk := NewTank(Vec2{100, 100}, Vec2{25, 25})
	if got := tk.BarrelSize(); got != (Vec2{25, 10}) {
		t.Fatalf("BarrelSize = %v, want (25, 10)", got)
	}
	if got := tk.ShellSize(); got != (Vec2{10, 5}) {
		t.Fatalf("ShellSize = %v, want (10, 5)", got)
	}
}

func TestTank_MuzzlePosFlat(t *testing.T) {
	tk := NewTank(Vec2{100, 100}, Vec2{25, 25})
	// Barrel length 25 + half shell 5 + 1 clearance = 31 along the barrel.
	got := tk.MuzzlePos()
	if !almostEq(got.X, 131) || !almostEq(got.Y, 100) {
		t.Fatalf("MuzzlePos = %v, want (131, 100)", got)
	}
}

func TestTank_MuzzlePosVertical(t *testing.T) {
	tk := NewTank(Vec2{100, 100}, Vec2{25, 25})
	tk.BarrelAngle = 90
	got := tk.MuzzlePos()
	if !almostEq(got.X, 100) || !almostEq(got.Y, 131) {
		t.Fatalf("MuzzlePos = %v, want (100, 131)", got)
	}
}

func TestTank_MuzzleClearsOwnRects(t *testing.T) {
	for _, angle := range []float64{0, 30, 45, 90, 135, 180} {
		tk := NewTank(Vec2{100, 100}, Vec2{25, 25})
		tk.BarrelAngle = angle
		shell := OrientedRect{
			Center:   tk.MuzzlePos(),
			Size:     tk.ShellSize(),
			BLOffset: Vec2{-tk.ShellSize().X / 2, -tk.ShellSize().Y / 2},
			Rotation: angle,
		}
		if tk.CollideWith(shell) {
			t.Errorf("angle %v: fresh shell at the muzzle overlaps its own tank", angle)
		}
	}
}

func TestTank_CollideWithBody(t *testing.T) {
	tk := NewTank(Vec2{100, 100}, Vec2{25, 25})
	// Body spans 87.5..112.5 on both axes; the probe straddles its left edge.
	hit := OrientedRect{Center: Vec2{87, 100}, Size: Vec2{4, 4}, BLOffset: Vec2{-2, -2}}
	miss := OrientedRect{Center: Vec2{200, 200}, Size: Vec2{4, 4}, BLOffset: Vec2{-2, -2}}
	if !tk.CollideWith(hit) {
		t.Error("rect straddling the body edge should collide")
	}
	if tk.CollideWith(miss) {
		t.Error("distant rect should not collide")
	}
}

func TestTank_CollideWithBarrel(t *testing.T) {
	tk := NewTank(Vec2{100, 100}, Vec2{25, 25})
	tk.BarrelAngle = 90
	// Above the body, straddling the raised barrel's left edge at x=95.
	probe := OrientedRect{Center: Vec2{95, 120}, Size: Vec2{2, 2}, BLOffset: Vec2{-1, -1}}
	if !tk.CollideWith(probe) {
		t.Error("rect inside the raised barrel should collide")
	}
}

package game

import (
	"math"
	"testing"
)

func newTestShell() *Shell {
	return &Shell{
		Pos:      Vec2{100, 100},
		Size:     Vec2{10, 5},
		Mass:     100,
		Gravity:  200,
		DragCoef: 0.0025,
	}
}

func TestShell_GravityPullsDown(t *testing.T) {
	s := newTestShell()
	s.Vel = Vec2{100, 0}
	s.Update(1.0/60, 1000, 1000)
	if s.Vel.Y >= 0 {
		t.Fatalf("Vel.Y = %v, want negative after gravity", s.Vel.Y)
	}
	if s.Pos.X <= 100 {
		t.Fatalf("Pos.X = %v, want advanced", s.Pos.X)
	}
}

func TestShell_DragSlowsHorizontal(t *testing.T) {
	s := newTestShell()
	s.Vel = Vec2{500, 0}
	s.Update(1.0/60, 10000, 10000)
	if s.Vel.X >= 500 {
		t.Fatalf("Vel.X = %v, want reduced by drag", s.Vel.X)
	}
}

func TestShell_TailwindReducesDrag(t *testing.T) {
	still := newTestShell()
	still.Vel = Vec2{500, 0}
	still.Update(1.0/60, 10000, 10000)

	tail := newTestShell()
	tail.Vel = Vec2{500, 0}
	tail.Wind = 10
	tail.Update(1.0/60, 10000, 10000)

	if tail.Vel.X <= still.Vel.X {
		t.Fatalf("tailwind Vel.X = %v, still-air = %v, want tailwind faster",
			tail.Vel.X, still.Vel.X)
	}
}

func TestShell_WallBounce(t *testing.T) {
	s := newTestShell()
	s.Pos = Vec2{998, 500}
	s.Vel = Vec2{600, 0}
	s.Update(1.0/60, 1000, 1000)

	if s.Vel.X >= 0 {
		t.Fatalf("Vel.X = %v, want reflected", s.Vel.X)
	}
	if s.Pos.X != 1000-s.Size.X/2 {
		t.Fatalf("Pos.X = %v, want clamped to the wall", s.Pos.X)
	}
}

func TestShell_LeftWallBounce(t *testing.T) {
	s := newTestShell()
	s.Pos = Vec2{-1, 500}
	s.Vel = Vec2{-50, 0}
	s.Update(1.0/60, 800, 800)

	if s.Vel.X <= 0 {
		t.Fatalf("Vel.X = %v, want reflected to positive", s.Vel.X)
	}
	if s.Pos.X != s.Size.X/2 {
		t.Fatalf("Pos.X = %v, want clamped just inside the left wall", s.Pos.X)
	}
}

func TestShell_CeilingBounce(t *testing.T) {
	s := newTestShell()
	s.Pos = Vec2{500, 998}
	s.Vel = Vec2{0, 600}
	s.Update(1.0/60, 1000, 1000)

	if s.Vel.Y >= 0 {
		t.Fatalf("Vel.Y = %v, want reflected off the ceiling", s.Vel.Y)
	}
	if s.Pos.Y != 1000-s.Size.Y/2 {
		t.Fatalf("Pos.Y = %v, want clamped below the ceiling", s.Pos.Y)
	}
}

func TestShell_NoFloorBounce(t *testing.T) {
	s := newTestShell()
	s.Pos = Vec2{500, 1}
	s.Vel = Vec2{0, -600}
	s.Update(1.0/60, 1000, 1000)

	if s.Vel.Y >= 0 {
		t.Fatalf("Vel.Y = %v, shell must keep falling past y=0", s.Vel.Y)
	}
	if s.Pos.Y >= 0 {
		t.Fatalf("Pos.Y = %v, want below the floor", s.Pos.Y)
	}
}

func TestShell_RectFollowsHeading(t *testing.T) {
	s := newTestShell()
	s.Vel = Vec2{100, 100}
	r := s.Rect()
	if !almostEq(r.Rotation, 45) {
		t.Fatalf("Rotation = %v, want 45", r.Rotation)
	}
	if r.Center != s.Pos {
		t.Fatalf("Center = %v, want %v", r.Center, s.Pos)
	}
	if !almostEq(math.Abs(r.BLOffset.X), s.Size.X/2) {
		t.Fatalf("BLOffset = %v, want centered", r.BLOffset)
	}
}

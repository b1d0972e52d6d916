package game

// Shell is a projectile in flight. Wind and drag act on it every tick;
// the side and top walls of the field reflect it, the floor does not.
type Shell struct {
	Pos  Vec2
	Vel  Vec2
	Size Vec2

	Mass     float64
	Gravity  float64
	DragCoef float64
	Wind     float64
}

// Update advances the shell by dt seconds inside a field of the given
// size. Drag opposes the shell's velocity relative to the air mass, so a
// tailwind slows the shell less than still air does.
func (s *Shell) Update(dt, fieldW, fieldH float64) {
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	s.Vel.Y -= s.Gravity * dt

	air := Vec2{s.Vel.X - s.Wind, s.Vel.Y}
	drag := air.Normalize().Scale(s.DragCoef * air.Len2())
	s.Vel = s.Vel.Sub(drag.Scale(1 / s.Mass))

	halfW := s.Size.X / 2
	if s.Pos.X-halfW < 0 || s.Pos.X+halfW > fieldW {
		s.Vel.X = -s.Vel.X
		s.Pos.X = clamp(s.Pos.X, halfW, fieldW-halfW)
	}
	if s.Pos.Y+s.Size.Y/2 > fieldH {
		s.Vel.Y = -s.Vel.Y
		s.Pos.Y = fieldH - s.Size.Y/2
	}
}

// AngleDeg returns the shell's heading in degrees.
func (s *Shell) AngleDeg() float64 { return s.Vel.AngleDeg() }

// Rect returns the shell's collision rect, aligned with its heading.
func (s *Shell) Rect() OrientedRect {
	return OrientedRect{
		Center:   s.Pos,
		Size:     s.Size,
		BLOffset: Vec2{-s.Size.X / 2, -s.Size.Y / 2},
		Rotation: s.AngleDeg(),
	}
}

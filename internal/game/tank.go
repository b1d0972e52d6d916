package game

// Tank is the body-and-barrel geometry of one emplacement. Pos is the
// center of the body; the barrel pivots there and extends along
// BarrelAngle.
type Tank struct {
	Pos         Vec2
	BodySize    Vec2
	BarrelAngle float64
}

// NewTank places a tank with its body centered at pos.
func NewTank(pos Vec2, bodySize Vec2) *Tank {
	return &Tank{Pos: pos, BodySize: bodySize}
}

// BarrelSize derives the barrel dimensions from the body: as long as the
// body is wide, and 0.4 of the body height thick.
func (t *Tank) BarrelSize() Vec2 {
	return Vec2{t.BodySize.X, t.BodySize.Y * 0.4}
}

// ShellSize derives the shell dimensions from the barrel thickness.
func (t *Tank) ShellSize() Vec2 {
	b := t.BarrelSize()
	return Vec2{b.Y, b.Y / 2}
}

// MuzzlePos returns the point just beyond the barrel tip where a fresh
// shell spawns, clear of the tank's own collision rects.
func (t *Tank) MuzzlePos() Vec2 {
	offset := Vec2{t.BarrelSize().X + t.ShellSize().X/2 + 1, 0}
	return t.Pos.Add(offset.Rotate(t.BarrelAngle))
}

// BodyRect returns the axis-aligned body rect.
func (t *Tank) BodyRect() OrientedRect {
	return OrientedRect{
		Center:   t.Pos,
		Size:     t.BodySize,
		BLOffset: Vec2{-t.BodySize.X / 2, -t.BodySize.Y / 2},
	}
}

// BarrelRect returns the barrel rect, pivoted at the body center and
// rotated to BarrelAngle.
func (t *Tank) BarrelRect() OrientedRect {
	b := t.BarrelSize()
	return OrientedRect{
		Center:   t.Pos,
		Size:     b,
		BLOffset: Vec2{0, -b.Y / 2},
		Rotation: t.BarrelAngle,
	}
}

// CollideWith reports whether r touches the body or the barrel.
func (t *Tank) CollideWith(r OrientedRect) bool {
	return r.CollideRect(t.BodyRect()) || r.CollideRect(t.BarrelRect())
}

package game

import (
	"math"
	"math/rand"
)

const (
	gunnerMinPower     = 20.0
	gunnerMaxPower     = 100.0
	gunnerAngleJitter  = 6.0   // degrees of noise on a fresh aim
	gunnerPowerJitter  = 8.0   // power noise on a fresh aim
	gunnerPowerStep    = 0.06  // power correction per px of miss
	gunnerAngleStep    = 0.010 // angle correction per px of miss
	gunnerRangeDivisor = 9.0   // rough px-of-range per power point
)

// Gunner is a simple shot-bracketing AI: its first shot at a target is a
// ballpark guess, then each miss walks power and angle toward the target
// by a fraction of the observed miss distance. It drives a match through
// the same SetAim/Fire surface a human player uses.
type Gunner struct {
	Name string

	rng        *rand.Rand
	lastAngle  float64
	lastPower  float64
	lastTarget string
	hasAim     bool
}

// NewGunner builds an AI driver for the named player.
func NewGunner(name string, rng *rand.Rand) *Gunner {
	return &Gunner{Name: name, rng: rng}
}

// TakeTurn aims and fires for the gunner's player. Call it only when the
// match is in the aiming phase with this player current.
func (g *Gunner) TakeTurn(m *Match) {
	me := m.CurrentPlayer()
	if me == nil || me.Name != g.Name {
		return
	}
	target := g.nearestOpponent(m, me)
	if target == nil {
		return
	}

	if !g.hasAim || g.lastTarget != target.Name {
		g.freshAim(me, target)
		g.lastTarget = target.Name
	} else {
		g.correctAim(me, target)
	}
	g.hasAim = true

	m.SetAim(g.lastAngle, g.lastPower)
	m.Fire()
}

// Observe updates the gunner's bracketing state from where its last
// shell landed. Call it after the shot resolves, before the next turn.
func (g *Gunner) Observe(impact Vec2, m *Match) {
	if !g.hasAim {
		return
	}
	target := g.playerByName(m, g.lastTarget)
	if target == nil {
		return
	}
	miss := target.Tank.Pos.X - impact.X
	// Shooting left mirrors the correction.
	if g.lastAngle > 90 {
		miss = -miss
	}
	g.lastPower = clamp(g.lastPower+miss*gunnerPowerStep, gunnerMinPower, gunnerMaxPower)
	g.lastAngle += miss * gunnerAngleStep * g.side()
}

func (g *Gunner) side() float64 {
	if g.lastAngle > 90 {
		return -1
	}
	return 1
}

// freshAim makes a ballpark first guess from horizontal range alone.
func (g *Gunner) freshAim(me, target *Player) {
	dx := target.Tank.Pos.X - me.Tank.Pos.X
	angle := 45.0
	if dx < 0 {
		angle = 135.0
	}
	power := clamp(math.Abs(dx)/gunnerRangeDivisor, gunnerMinPower, gunnerMaxPower)
	g.lastAngle = angle + (g.rng.Float64()-0.5)*2*gunnerAngleJitter
	g.lastPower = clamp(power+(g.rng.Float64()-0.5)*2*gunnerPowerJitter, gunnerMinPower, gunnerMaxPower)
}

// correctAim keeps the bracketed values and just clamps them back into
// the legal aiming window.
func (g *Gunner) correctAim(me, target *Player) {
	g.lastAngle = clamp(g.lastAngle, 0, 180)
	g.lastPower = clamp(g.lastPower, gunnerMinPower, gunnerMaxPower)
}

func (g *Gunner) nearestOpponent(m *Match, me *Player) *Player {
	var best *Player
	bestDist := math.MaxFloat64
	for _, p := range m.Players {
		if p == me {
			continue
		}
		d := me.Tank.Pos.Dist(p.Tank.Pos)
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

func (g *Gunner) playerByName(m *Match, name string) *Player {
	for _, p := range m.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

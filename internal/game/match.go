package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

// MatchState tracks where a match is in its turn cycle.
type MatchState int

const (
	MatchIdle   MatchState = iota // not started or already finished
	MatchAiming                   // waiting for the current player's shot
	MatchFiring                   // a shell is in flight
)

func (s MatchState) String() string {
	switch s {
	case MatchAiming:
		return "aiming"
	case MatchFiring:
		return "firing"
	default:
		return "idle"
	}
}

// ErrNotEnoughPlayers is returned by Start when fewer than two players
// were added.
var ErrNotEnoughPlayers = errors.New("match needs at least two players")

// Match is a full artillery duel: terrain, tanks, turn order, wind, and
// the shell in flight. All mutation happens through the clock the match
// was built with; the match is not safe for concurrent use.
type Match struct {
	ID     uuid.UUID
	Config MatchConfig

	clock    *Clock
	display  Display
	reporter ScoreReporter
	rng      *rand.Rand
	log      *MatchLog

	Terrain *Terrain
	Players []*Player // still in the fight, turn order
	roster  []*Player // everyone who started, for final stats

	state       MatchState
	current     int
	wind        float64
	initialSize int
	tick        int

	shell    *Shell
	tracer   *tracer
	updateEv *TickEvent
}

// NewMatch wires a match to its collaborators. The match owns no goroutines;
// the caller drives it through the clock.
func NewMatch(cfg MatchConfig, clock *Clock, display Display, reporter ScoreReporter, seed int64) *Match {
	return &Match{
		ID:       uuid.New(),
		Config:   cfg,
		clock:    clock,
		display:  display,
		reporter: reporter,
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- simulation RNG, not crypto
		log:      NewMatchLog(false),
	}
}

// Log returns the match's structured event log.
func (m *Match) Log() *MatchLog { return m.log }

// SetLog swaps in a caller-provided log (the test harness uses this to
// enable verbose entries).
func (m *Match) SetLog(l *MatchLog) { m.log = l }

// State returns the match's turn-cycle state.
func (m *Match) State() MatchState { return m.state }

// Wind returns the wind for the current turn. Positive blows toward +x.
func (m *Match) Wind() float64 { return m.wind }

// CurrentPlayer returns the player whose turn it is, or nil before Start.
func (m *Match) CurrentPlayer() *Player {
	if m.state == MatchIdle || len(m.Players) == 0 {
		return nil
	}
	return m.Players[m.current]
}

// Shell returns the shell in flight, or nil outside the firing phase.
func (m *Match) Shell() *Shell { return m.shell }

// Start generates terrain, spreads the named players across it left to
// right, picks a random first turn, and schedules the simulation tick.
func (m *Match) Start(roster []RosterEntry) error {
	if len(roster) < 2 {
		return ErrNotEnoughPlayers
	}

	cfg := m.Config
	// Roughly even spacing with jitter, so tanks never hug the walls.
	avg := cfg.MapWidth / (len(roster) + 1)
	xs := make([]int, len(roster))
	for i := range roster {
		jitter := m.rng.Intn(avg/2+1) - avg/4
		xs[i] = (i+1)*avg + jitter
	}
	sort.Ints(xs)

	ledge := Vec2{cfg.TankBodySize.X + cfg.TankClearance, cfg.TankBodySize.Y}
	terrain, spawns := GenerateTerrain(m.rng, cfg.MapWidth, cfg.MapHeight, xs, ledge)
	m.Terrain = terrain

	m.Players = nil
	m.roster = nil
	for i, r := range roster {
		center := spawns[i].Add(Vec2{cfg.TankClearance/2 + cfg.TankBodySize.X/2, cfg.TankBodySize.Y / 2})
		p := NewPlayer(r.Name, r.Color, center, cfg.TankBodySize, cfg.MaxTraces)
		p.Angle = cfg.InitAngle
		p.Power = cfg.InitPower
		m.Players = append(m.Players, p)
		m.roster = append(m.roster, p)
	}
	m.initialSize = len(m.Players)
	m.tick = 0

	m.display.TerrainChanged(m.Terrain)
	m.current = m.rng.Intn(len(m.Players))
	m.switchPlayer()
	m.updateEv = m.clock.Schedule(cfg.FrameRate, m.update)
	m.log.Add(m.tick, "--", "match", "start",
		fmt.Sprintf("players=%d wind=%.2f", m.initialSize, m.wind), float64(m.initialSize))
	return nil
}

// Roster returns every player who started the match, eliminated ones
// included.
func (m *Match) Roster() []*Player { return m.roster }

// switchPlayer advances the turn: new wind, restored aim from the
// player's last trace, input back on.
func (m *Match) switchPlayer() {
	m.current = (m.current + 1) % len(m.Players)
	p := m.Players[m.current]
	m.wind = (m.rng.Float64() - 0.5) * m.Config.MaxWind

	m.display.TraceCleared()
	if tr, ok := p.LastTrace(); ok {
		m.display.TraceShown(tr)
		p.Angle = tr.Angle
		p.Power = tr.Power
	} else {
		p.Angle = m.Config.InitAngle
		p.Power = m.Config.InitPower
	}
	p.Tank.BarrelAngle = p.Angle

	m.state = MatchAiming
	m.notifyStatus()
	m.display.InputEnabled(true)
	m.log.Add(m.tick, p.Name, "turn", "begin",
		fmt.Sprintf("wind=%.2f angle=%.1f power=%.1f", m.wind, p.Angle, p.Power), m.wind)
}

func (m *Match) notifyStatus() {
	p := m.Players[m.current]
	m.display.StatusChanged(p.Name, p.Color, p.Angle, p.Power, m.wind)
}

// AdjustAngle nudges the current player's barrel, clamped to [0, 180].
func (m *Match) AdjustAngle(delta float64) {
	if m.state != MatchAiming {
		return
	}
	p := m.Players[m.current]
	p.Angle = clamp(p.Angle+delta, 0, 180)
	p.Tank.BarrelAngle = p.Angle
	m.notifyStatus()
}

// AdjustPower nudges the current player's shot power, clamped to [1, 100].
func (m *Match) AdjustPower(delta float64) {
	if m.state != MatchAiming {
		return
	}
	p := m.Players[m.current]
	p.Power = clamp(p.Power+delta, 1, 100)
	m.notifyStatus()
}

// SetAim sets the current player's angle and power outright, with the
// same clamps as the adjusters. AI drivers use this.
func (m *Match) SetAim(angle, power float64) {
	if m.state != MatchAiming {
		return
	}
	p := m.Players[m.current]
	p.Angle = clamp(angle, 0, 180)
	p.Power = clamp(power, 1, 100)
	p.Tank.BarrelAngle = p.Angle
	m.notifyStatus()
}

// Fire launches a shell from the current player's muzzle. Input is
// disabled until the shot resolves. Fire outside the aiming phase is a
// no-op.
func (m *Match) Fire() {
	if m.state != MatchAiming {
		return
	}
	p := m.Players[m.current]
	p.Shots++

	cfg := m.Config
	m.shell = &Shell{
		Pos:      p.Tank.MuzzlePos(),
		Vel:      Vec2{cfg.MaxMuzzleVel * p.Power / 100, 0}.Rotate(p.Angle),
		Size:     p.Tank.ShellSize(),
		Mass:     cfg.ShellMass,
		Gravity:  cfg.Gravity,
		DragCoef: cfg.DragCoefficient,
		Wind:     m.wind,
	}
	m.display.InputEnabled(false)
	m.display.TraceCleared()
	m.tracer = newTracer(m.clock, m.display, m.shell, cfg.TraceInterval)
	m.state = MatchFiring
	m.log.Add(m.tick, p.Name, "shot", "fired",
		fmt.Sprintf("angle=%.1f power=%.1f wind=%.2f", p.Angle, p.Power, m.wind), p.Power)
}

// update is the scheduled per-tick step while the match runs.
func (m *Match) update(dt float64) {
	m.tick++
	if m.shell == nil {
		return
	}
	m.shell.Update(dt, float64(m.Config.MapWidth), float64(m.Config.MapHeight))
	m.log.AddVerbose(m.tick, m.Players[m.current].Name, "shot", "position",
		fmt.Sprintf("(%.1f,%.1f)", m.shell.Pos.X, m.shell.Pos.Y), 0)

	shooter := m.Players[m.current]
	if victim := m.collidePlayers(); victim != nil {
		m.resolveShot(shooter, victim)
		return
	}
	if m.terrainCollision() {
		m.resolveShot(shooter, nil)
	}
}

// collidePlayers checks the shell against every tank, the shooter's own
// included, and returns the first one hit.
func (m *Match) collidePlayers() *Player {
	rect := m.shell.Rect()
	for _, p := range m.Players {
		if p.Tank.CollideWith(rect) {
			return p
		}
	}
	return nil
}

// terrainCollision checks the shell against the ground and the terrain
// columns. A hit excavates a crater.
func (m *Match) terrainCollision() bool {
	rect := m.shell.Rect()
	min, _ := rect.BBox()
	hit := min.Y < 0 || m.Terrain.CollideWith(rect)
	if !hit {
		return false
	}
	crater := Circle{Center: rect.Center, Radius: m.Config.ExplosionRadius}
	m.Terrain.Excavate(crater)
	m.display.TerrainChanged(m.Terrain)
	m.log.Add(m.tick, m.Players[m.current].Name, "terrain", "crater",
		fmt.Sprintf("at (%.1f,%.1f) r=%.0f", rect.Center.X, rect.Center.Y, m.Config.ExplosionRadius),
		m.Config.ExplosionRadius)
	return true
}

// resolveShot ends the flight phase: scores a kill when victim is not
// nil, records the trace unless the shooter shelled themselves, and
// hands the turn over or declares victory.
func (m *Match) resolveShot(shooter, victim *Player) {
	if victim != nil {
		shooter.Kills++
		m.display.PlayerEliminated(victim.Name)
		m.log.Add(m.tick, shooter.Name, "kill", "eliminated", victim.Name, 0)
		m.removePlayer(victim)
	}
	// The winning shot leaves no trace; victory tears everything down.
	if len(m.Players) == 1 {
		m.victory(m.Players[0])
		return
	}

	points := m.tracer.End(m.clock)
	if victim != shooter {
		shooter.RecordTrace(Trace{
			Power:  shooter.Power,
			Angle:  shooter.Angle,
			Wind:   m.wind,
			Points: points,
		})
	}
	m.shell = nil
	m.tracer = nil
	m.switchPlayer()
}

// removePlayer drops a player from the turn order, keeping the current
// index pointing at the shooter. A self-hit at index 0 leaves the index
// at -1; switchPlayer's increment wraps it back to 0, so the turn goes
// to the player right after the eliminated shooter.
func (m *Match) removePlayer(victim *Player) {
	for i, p := range m.Players {
		if p != victim {
			continue
		}
		m.Players = append(m.Players[:i], m.Players[i+1:]...)
		if i <= m.current {
			m.current--
		}
		return
	}
}

// victory reports the result and shuts the match down.
func (m *Match) victory(winner *Player) {
	kills := make(map[string]int)
	shots := make(map[string]int)
	for _, p := range m.roster {
		kills[p.Name] = p.Kills
		shots[p.Name] = p.Shots
	}
	m.log.Add(m.tick, winner.Name, "match", "victory",
		fmt.Sprintf("kills=%d shots=%d", winner.Kills, winner.Shots), float64(winner.Kills))
	if m.reporter != nil {
		m.reporter.ReportMatch(MatchResult{
			MatchID:     m.ID,
			PlayerCount: m.initialSize,
			Winner:      winner.Name,
			Kills:       kills,
			Shots:       shots,
		})
	}
	m.end()
}

// end tears the match down to the idle state.
func (m *Match) end() {
	m.clock.Cancel(m.updateEv)
	if m.tracer != nil {
		m.tracer.End(m.clock)
		m.tracer = nil
	}
	m.shell = nil
	m.Players = nil
	m.state = MatchIdle
	m.display.InputEnabled(false)
}

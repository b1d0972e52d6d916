package game

import "image/color"

// Player pairs a tank with its identity, aim state, score and stored
// traces.
type Player struct {
	Name  string
	Color color.RGBA
	Tank  *Tank

	Angle float64
	Power float64

	Kills int
	Shots int

	traces    []Trace
	maxTraces int
}

// NewPlayer places a named player's tank at pos.
func NewPlayer(name string, col color.RGBA, pos Vec2, bodySize Vec2, maxTraces int) *Player {
	return &Player{
		Name:      name,
		Color:     col,
		Tank:      NewTank(pos, bodySize),
		maxTraces: maxTraces,
	}
}

// RecordTrace stores a finished shot's trace, discarding the oldest once
// the cap is reached.
func (p *Player) RecordTrace(tr Trace) {
	p.traces = append(p.traces, tr)
	if len(p.traces) > p.maxTraces {
		p.traces = p.traces[1:]
	}
}

// LastTrace returns the most recent stored trace, if any.
func (p *Player) LastTrace() (Trace, bool) {
	if len(p.traces) == 0 {
		return Trace{}, false
	}
	return p.traces[len(p.traces)-1], true
}

// Traces returns all stored traces, oldest first.
func (p *Player) Traces() []Trace { return p.traces }

// RosterEntry names a player joining a match.
type RosterEntry struct {
	Name  string
	Color color.RGBA
}

// DefaultRoster returns the ten stock players with their colors.
func DefaultRoster() []RosterEntry {
	return []RosterEntry{
		{"Alfa", color.RGBA{230, 25, 75, 255}},
		{"Bravo", color.RGBA{60, 180, 75, 255}},
		{"Charlie", color.RGBA{255, 225, 25, 255}},
		{"Delta", color.RGBA{0, 130, 200, 255}},
		{"Echo", color.RGBA{245, 130, 48, 255}},
		{"Foxtrot", color.RGBA{145, 30, 180, 255}},
		{"Golf", color.RGBA{70, 240, 240, 255}},
		{"Hotel", color.RGBA{240, 50, 230, 255}},
		{"India", color.RGBA{210, 245, 60, 255}},
		{"Juliett", color.RGBA{250, 190, 212, 255}},
	}
}

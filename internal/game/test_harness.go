package game

import "fmt"

// TestMatch is a headless match harness used exclusively by tests. It
// drives a Match through a Clock with no Ebiten dependency and supports
// deterministic seeding and structured logging.
type TestMatch struct {
	Match    *Match
	Clock    *Clock
	MatchLog *MatchLog
	Scores   *ScoreRecorder

	cfg     MatchConfig
	seed    int64
	roster  []RosterEntry
	flatH   float64
	useFlat bool
	verbose bool
	display Display
}

// matchOptionKind controls the pass in which an option is applied.
type matchOptionKind int

const (
	matchOptInfra  matchOptionKind = iota // config, seed, verbose — applied first
	matchOptPlayer                        // roster entries — applied before Start
	matchOptPost                          // post-start fixups like flat terrain
)

// MatchOption is a builder function applied to a TestMatch during
// construction.
type MatchOption struct {
	kind matchOptionKind
	fn   func(*TestMatch)
}

// WithMapSize sets the playfield dimensions.
func WithMapSize(w, h int) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.cfg.MapWidth = w
		tm.cfg.MapHeight = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.seed = seed
	}}
}

// WithConfig applies an arbitrary tweak to the match config.
func WithConfig(fn func(*MatchConfig)) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		fn(&tm.cfg)
	}}
}

// WithVerboseLog enables per-tick shell position logging.
func WithVerboseLog() MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.verbose = true
	}}
}

// WithDisplay swaps the default NopDisplay for a recording fake.
func WithDisplay(d Display) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.display = d
	}}
}

// WithPlayers adds named players with stock colors.
func WithPlayers(names ...string) MatchOption {
	return MatchOption{matchOptPlayer, func(tm *TestMatch) {
		stock := DefaultRoster()
		for _, name := range names {
			entry := stock[len(tm.roster)%len(stock)]
			entry.Name = name
			tm.roster = append(tm.roster, entry)
		}
	}}
}

// WithFlatTerrain replaces the generated terrain with a uniform height
// after Start, repositioning each tank onto the new surface. Shots then
// fly over terrain a test can reason about exactly.
func WithFlatTerrain(height float64) MatchOption {
	return MatchOption{matchOptPost, func(tm *TestMatch) {
		tm.flatH = height
		tm.useFlat = true
	}}
}

// NewTestMatch constructs a TestMatch from the given options in three
// ordered passes:
//  1. Infrastructure (config, seed, verbose, display)
//  2. Players
//  3. Start, then post-start fixups (flat terrain)
func NewTestMatch(opts ...MatchOption) *TestMatch {
	tm := &TestMatch{
		cfg:     DefaultConfig(),
		seed:    1,
		display: NopDisplay{},
	}
	for _, o := range opts {
		if o.kind == matchOptInfra {
			o.fn(tm)
		}
	}
	for _, o := range opts {
		if o.kind == matchOptPlayer {
			o.fn(tm)
		}
	}

	tm.Clock = NewClock()
	tm.Scores = &ScoreRecorder{}
	tm.Match = NewMatch(tm.cfg, tm.Clock, tm.display, tm.Scores, tm.seed)
	tm.MatchLog = NewMatchLog(tm.verbose)
	tm.Match.SetLog(tm.MatchLog)

	if err := tm.Match.Start(tm.roster); err != nil {
		panic(fmt.Sprintf("test match start: %v", err))
	}
	for _, o := range opts {
		if o.kind == matchOptPost {
			o.fn(tm)
		}
	}
	if tm.useFlat {
		tm.flattenTerrain()
	}
	return tm
}

func (tm *TestMatch) flattenTerrain() {
	m := tm.Match
	m.Terrain = NewFlatTerrain(tm.cfg.MapWidth, tm.flatH)
	for _, p := range m.Players {
		p.Tank.Pos.Y = tm.flatH + tm.cfg.TankBodySize.Y/2
	}
}

// RunTicks advances the match n simulation ticks.
func (tm *TestMatch) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tm.Clock.Advance(tm.cfg.FrameRate)
	}
}

// RunUntil advances the match up to maxTicks, stopping early if the
// predicate returns true. Returns the tick at which the predicate was
// satisfied, or -1.
func (tm *TestMatch) RunUntil(predicate func(*TestMatch) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		tm.Clock.Advance(tm.cfg.FrameRate)
		if predicate(tm) {
			return i + 1
		}
	}
	return -1
}

// PlayerByName finds a player in the starting roster.
func (tm *TestMatch) PlayerByName(name string) *Player {
	for _, p := range tm.Match.Roster() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ScoreRecorder is a ScoreReporter fake capturing every reported result.
type ScoreRecorder struct {
	Results []MatchResult
}

func (r *ScoreRecorder) ReportMatch(res MatchResult) {
	r.Results = append(r.Results, res)
}

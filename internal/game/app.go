package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Aim input rates, per tick while the key is held.
const (
	angleRate = 0.5
	powerRate = 0.5
)

// App is the ebiten front-end. It owns a Match, drives its clock from
// Update, implements Display to mirror match state into render caches,
// and translates keyboard input into match calls.
type App struct {
	width  int
	height int

	cfg    MatchConfig
	clock  *Clock
	match  *Match
	scores *ScoreRecorder

	// Display mirror state, rebuilt from callbacks.
	terrain      *Terrain
	livePoints   []Vec2
	shownTrace   *Trace
	statusLine   string
	statusColor  color.RGBA
	inputOn      bool
	lastKillName string
	over         bool

	prevKeys map[ebiten.Key]bool
	started  time.Time
}

// NewApp builds the front-end with a freshly started match.
func NewApp(cfg MatchConfig, seed int64) *App {
	a := &App{
		width:    cfg.MapWidth,
		height:   cfg.MapHeight,
		cfg:      cfg,
		prevKeys: make(map[ebiten.Key]bool),
		started:  time.Now(),
	}
	a.newMatch(seed)
	return a
}

func (a *App) newMatch(seed int64) {
	a.clock = NewClock()
	a.scores = &ScoreRecorder{}
	a.match = NewMatch(a.cfg, a.clock, a, a.scores, seed)
	a.shownTrace = nil
	a.livePoints = nil
	a.lastKillName = ""
	a.over = false
	roster := DefaultRoster()
	n := a.cfg.PlayerCount
	if n < 2 {
		n = 2
	}
	if n > len(roster) {
		n = len(roster)
	}
	if err := a.match.Start(roster[:n]); err != nil {
		panic(err)
	}
}

// Layout implements ebiten.Game.
func (a *App) Layout(_, _ int) (int, int) { return a.width, a.height }

// Update implements ebiten.Game: one display frame advances the match
// clock by one frame interval.
func (a *App) Update() error {
	a.handleInput()
	a.clock.Advance(a.cfg.FrameRate)
	if a.match.State() == MatchIdle && len(a.scores.Results) > 0 {
		a.over = true
	}
	return nil
}

func (a *App) handleInput() {
	keys := []ebiten.Key{
		ebiten.KeyLeft, ebiten.KeyRight, ebiten.KeyUp, ebiten.KeyDown,
		ebiten.KeySpace, ebiten.KeyN, ebiten.KeyC,
	}
	current := map[ebiten.Key]bool{}
	for _, k := range keys {
		current[k] = ebiten.IsKeyPressed(k)
	}
	pressed := func(k ebiten.Key) bool { return current[k] && !a.prevKeys[k] }

	if a.inputOn {
		if current[ebiten.KeyLeft] {
			a.match.AdjustAngle(angleRate)
		}
		if current[ebiten.KeyRight] {
			a.match.AdjustAngle(-angleRate)
		}
		if current[ebiten.KeyUp] {
			a.match.AdjustPower(powerRate)
		}
		if current[ebiten.KeyDown] {
			a.match.AdjustPower(-powerRate)
		}
		if pressed(ebiten.KeySpace) {
			a.match.Fire()
		}
	}
	if pressed(ebiten.KeyN) && a.over {
		a.newMatch(time.Now().UnixNano())
	}
	if pressed(ebiten.KeyC) {
		// Clipboard errors only mean there is no clipboard; ignore.
		_ = clipboard.WriteAll(a.report())
	}

	a.prevKeys = current
}

// report formats the score table for clipboard export.
func (a *App) report() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "scorchline session %s\n", time.Since(a.started).Round(time.Second))
	for _, res := range a.scores.Results {
		fmt.Fprintf(&sb, "match %s: winner=%s players=%d\n",
			res.MatchID, res.Winner, res.PlayerCount)
		for name, k := range res.Kills {
			fmt.Fprintf(&sb, "  %-10s kills=%d shots=%d\n", name, k, res.Shots[name])
		}
	}
	return sb.String()
}

// --- Display implementation ---

func (a *App) TerrainChanged(t *Terrain) { a.terrain = t }

func (a *App) TraceCleared() {
	a.livePoints = a.livePoints[:0]
	a.shownTrace = nil
}

func (a *App) TracePoint(p Vec2) { a.livePoints = append(a.livePoints, p) }

func (a *App) TraceShown(tr Trace) { a.shownTrace = &tr }

func (a *App) StatusChanged(name string, col color.RGBA, angle, power, wind float64) {
	a.statusLine = fmt.Sprintf("%s  angle=%.1f  power=%.1f  wind=%+.2f", name, angle, power, wind)
	a.statusColor = col
}

func (a *App) InputEnabled(on bool) { a.inputOn = on }

func (a *App) PlayerEliminated(name string) { a.lastKillName = name }

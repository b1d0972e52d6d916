package game

import (
	"image/color"

	"github.com/google/uuid"
)

// Display receives presentation callbacks from a running match. The
// ebiten front-end renders them; headless runs plug in NopDisplay.
type Display interface {
	// TerrainChanged fires after an explosion reshapes the terrain.
	TerrainChanged(t *Terrain)
	// TraceCleared fires when the previous shot's live trace should go.
	TraceCleared()
	// TracePoint fires for each sampled point of the shell in flight.
	TracePoint(p Vec2)
	// TraceShown replays a stored trace at the start of a turn.
	TraceShown(tr Trace)
	// StatusChanged fires whenever the HUD line should update.
	StatusChanged(name string, col color.RGBA, angle, power, wind float64)
	// InputEnabled gates aim input between shots.
	InputEnabled(on bool)
	// PlayerEliminated fires when a tank is destroyed.
	PlayerEliminated(name string)
}

// NopDisplay discards every callback.
type NopDisplay struct{}

func (NopDisplay) TerrainChanged(*Terrain)                               {}
func (NopDisplay) TraceCleared()                                         {}
func (NopDisplay) TracePoint(Vec2)                                       {}
func (NopDisplay) TraceShown(Trace)                                      {}
func (NopDisplay) StatusChanged(string, color.RGBA, float64, float64, float64) {}
func (NopDisplay) InputEnabled(bool)                                     {}
func (NopDisplay) PlayerEliminated(string)                               {}

// MatchResult summarizes a finished match for score reporting.
type MatchResult struct {
	MatchID     uuid.UUID
	PlayerCount int
	Winner      string
	Kills       map[string]int
	Shots       map[string]int
}

// ScoreReporter receives the result of each finished match.
type ScoreReporter interface {
	ReportMatch(res MatchResult)
}

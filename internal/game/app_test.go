package game

import "testing"

// NewApp touches no window state until Update/Draw, so roster wiring is
// testable headless.
func TestApp_PlayerCountFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlayerCount = 3
	a := NewApp(cfg, 1)

	if got := len(a.match.Players); got != 3 {
		t.Fatalf("players = %d, want 3", got)
	}
}

func TestApp_PlayerCountClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlayerCount = 1
	if got := len(NewApp(cfg, 1).match.Players); got != 2 {
		t.Fatalf("players = %d, want clamped up to 2", got)
	}

	cfg.PlayerCount = 99
	if got := len(NewApp(cfg, 1).match.Players); got != len(DefaultRoster()) {
		t.Fatalf("players = %d, want clamped to the roster size", got)
	}
}

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/Krystof-Sukora/scorchline/internal/config"
	"github.com/Krystof-Sukora/scorchline/internal/game"
)

const maxFlightTicks = 60 * 120 // give up on a shell after two minutes of sim time

type runStats struct {
	runIndex int
	seed     int64
	winner   string
	turns    int
	shots    int
	craters  int
	timedOut bool
}

func main() {
	var runs int
	var players int
	var maxTurns int
	var seedBase int64
	var seedStep int64
	var configDir string
	var verbose bool

	flag.IntVar(&runs, "runs", 10, "number of headless matches")
	flag.IntVar(&players, "players", 2, "players per match (2-10)")
	flag.IntVar(&maxTurns, "max-turns", 200, "turn cap before a match is abandoned")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configDir, "config-dir", ".", "directory searched for scorchline.cfg.json")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if runs <= 0 {
		logger.Fatal().Msg("-runs must be > 0")
	}
	if players < 2 || players > len(game.DefaultRoster()) {
		logger.Fatal().Int("players", players).Msg("unsupported player count")
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}

	fmt.Printf("=== Headless Artillery Report ===\n")
	fmt.Printf("runs=%d players=%d max_turns=%d seed_base=%d seed_step=%d\n\n",
		runs, players, maxTurns, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(logger, cfg, i+1, seed, players, maxTurns)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

func runMatch(logger zerolog.Logger, cfg game.MatchConfig, runIndex int, seed int64, players, maxTurns int) runStats {
	names := make([]string, players)
	for i, r := range game.DefaultRoster()[:players] {
		names[i] = r.Name
	}
	tm := game.NewTestMatch(
		game.WithSeed(seed),
		game.WithConfig(func(c *game.MatchConfig) { *c = cfg }),
		game.WithPlayers(names...),
	)

	botRng := rand.New(rand.NewSource(seed + 1)) // #nosec G404 -- bot aim jitter
	gunners := make(map[string]*game.Gunner, players)
	for _, n := range names {
		gunners[n] = game.NewGunner(n, botRng)
	}

	stats := runStats{runIndex: runIndex, seed: seed}
	for turn := 0; turn < maxTurns; turn++ {
		if tm.Match.State() == game.MatchIdle {
			break
		}
		cur := tm.Match.CurrentPlayer()
		if cur == nil {
			break
		}
		g := gunners[cur.Name]
		g.TakeTurn(tm.Match)
		stats.turns++
		logger.Debug().Int("run", runIndex).Int("turn", stats.turns).
			Str("player", cur.Name).Msg("shot fired")

		landed := tm.RunUntil(func(tm *game.TestMatch) bool {
			return tm.Match.State() != game.MatchFiring
		}, maxFlightTicks)
		if landed < 0 {
			stats.timedOut = true
			logger.Warn().Int("run", runIndex).Int64("seed", seed).
				Msg("shell never landed, abandoning match")
			break
		}
		if tr, ok := cur.LastTrace(); ok && len(tr.Points) > 0 {
			g.Observe(tr.Points[len(tr.Points)-1], tm.Match)
		}
	}

	stats.shots = tm.MatchLog.CountCategory("shot", "fired")
	stats.craters = tm.MatchLog.CountCategory("terrain", "crater")
	if len(tm.Scores.Results) > 0 {
		stats.winner = tm.Scores.Results[0].Winner
	}
	return stats
}

func printRun(s runStats) {
	outcome := s.winner
	switch {
	case s.timedOut:
		outcome = "(timed out)"
	case outcome == "":
		outcome = "(turn cap reached)"
	}
	fmt.Printf("run %d seed=%d: winner=%-10s turns=%d shots=%d craters=%d\n",
		s.runIndex, s.seed, outcome, s.turns, s.shots, s.craters)
}

func printAggregate(all []runStats) {
	wins := map[string]int{}
	totalTurns, totalShots, totalCraters, decided := 0, 0, 0, 0
	for _, s := range all {
		totalTurns += s.turns
		totalShots += s.shots
		totalCraters += s.craters
		if s.winner != "" {
			wins[s.winner]++
			decided++
		}
	}

	fmt.Printf("\n=== Aggregate over %d runs ===\n", len(all))
	fmt.Printf("decided=%d avg_turns=%.1f avg_shots=%.1f avg_craters=%.1f\n",
		decided,
		float64(totalTurns)/float64(len(all)),
		float64(totalShots)/float64(len(all)),
		float64(totalCraters)/float64(len(all)))

	names := make([]string, 0, len(wins))
	for n := range wins {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %-10s wins=%d\n", n, wins[n])
	}
}

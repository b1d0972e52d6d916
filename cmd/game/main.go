package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Krystof-Sukora/scorchline/internal/config"
	"github.com/Krystof-Sukora/scorchline/internal/game"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Scorchline")
	ebiten.SetWindowSize(cfg.MapWidth, cfg.MapHeight)
	if err := ebiten.RunGame(game.NewApp(cfg, time.Now().UnixNano())); err != nil {
		log.Fatal(err)
	}
}

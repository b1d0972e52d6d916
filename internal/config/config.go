// Package config loads match tunables from an optional JSON file via
// viper, falling back to the built-in defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Krystof-Sukora/scorchline/internal/game"
)

// Load reads scorchline.cfg.json from configDir and returns the match
// config. A missing file is not an error; every key defaults to the
// stock value.
func Load(configDir string) (game.MatchConfig, error) {
	def := game.DefaultConfig()

	v := viper.New()
	v.SetDefault("map.width", def.MapWidth)
	v.SetDefault("map.height", def.MapHeight)

	v.SetDefault("physics.gravity", def.Gravity)
	v.SetDefault("physics.maxMuzzleVel", def.MaxMuzzleVel)
	v.SetDefault("physics.dragCoefficient", def.DragCoefficient)
	v.SetDefault("physics.maxWind", def.MaxWind)
	v.SetDefault("physics.shellMass", def.ShellMass)
	v.SetDefault("physics.explosionRadius", def.ExplosionRadius)

	v.SetDefault("tank.bodyWidth", def.TankBodySize.X)
	v.SetDefault("tank.bodyHeight", def.TankBodySize.Y)
	v.SetDefault("tank.clearance", def.TankClearance)

	v.SetDefault("turn.initAngle", def.InitAngle)
	v.SetDefault("turn.initPower", def.InitPower)
	v.SetDefault("turn.maxTraces", def.MaxTraces)

	v.SetDefault("match.players", def.PlayerCount)

	v.SetConfigName("scorchline.cfg.json")
	v.AddConfigPath(configDir)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return def, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := def
	cfg.MapWidth = v.GetInt("map.width")
	cfg.MapHeight = v.GetInt("map.height")
	cfg.Gravity = v.GetFloat64("physics.gravity")
	cfg.MaxMuzzleVel = v.GetFloat64("physics.maxMuzzleVel")
	cfg.DragCoefficient = v.GetFloat64("physics.dragCoefficient")
	cfg.MaxWind = v.GetFloat64("physics.maxWind")
	cfg.ShellMass = v.GetFloat64("physics.shellMass")
	cfg.ExplosionRadius = v.GetFloat64("physics.explosionRadius")
	cfg.TankBodySize = game.Vec2{
		X: v.GetFloat64("tank.bodyWidth"),
		Y: v.GetFloat64("tank.bodyHeight"),
	}
	cfg.TankClearance = v.GetFloat64("tank.clearance")
	cfg.InitAngle = v.GetFloat64("turn.initAngle")
	cfg.InitPower = v.GetFloat64("turn.initPower")
	cfg.MaxTraces = v.GetInt("turn.maxTraces")
	cfg.PlayerCount = v.GetInt("match.players")
	return cfg, nil
}

package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/model"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	cfg, err := LoadGameConfig("config.json")
	if err != nil {
		log.Fatal(err)
	}

	grid, err := model.New(cfg.Columns, cfg.Rows)
	if err != nil {
		log.Fatal(err)
	}

	var pool *model.GridPool
	if cfg.UseMemoryPool {
		pool = model.NewGridPool()
	}
	evolver := model.NewEvolver(cfg.Workers, pool)

	game := NewGame(cfg, grid, evolver, pool)

	ebiten.SetWindowTitle(fmt.Sprintf("golife — %dx%d", cfg.Columns, cfg.Rows))
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/model"
	"golife/render"
	"golife/utils"
)

const intervalStep = 25 * time.Millisecond

// Game adapts the grid and evolver to the ebiten.Game interface. It owns
// the single current grid: user edits mutate it in place, and each tick
// replaces it with the next generation.
type Game struct {
	cfg     utils.Config
	grid    *model.Grid
	evolver *model.Evolver
	pool    *model.GridPool
	painter *render.Painter
	ticker  *utils.FixedStep
	stats   *utils.Stats
	rng     *rand.Rand

	aliveColor color.Color
	deadColor  color.Color

	paused     bool
	tickOnce   bool
	generation int
	lastStep   time.Time
}

// NewGame constructs a paused game around the provided grid.
func NewGame(cfg utils.Config, grid *model.Grid, evolver *model.Evolver, pool *model.GridPool) *Game {
	return &Game{
		cfg:        cfg,
		grid:       grid,
		evolver:    evolver,
		pool:       pool,
		ticker:     utils.NewFixedStep(cfg.TickInterval),
		stats:      utils.NewStats(),
		rng:        rand.New(rand.NewPCG(uint64(cfg.Seed), 0)),
		aliveColor: color.White,
		deadColor:  color.Black,
		paused:     true,
		lastStep:   time.Now(),
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.grid.AddGlider(g.grid.Columns()/2-1, g.grid.Rows()/2-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.adjustInterval(-intervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.adjustInterval(intervalStep)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if c, r, ok := g.cellAt(ebiten.CursorPosition()); ok {
			g.grid.Toggle(c, r)
		}
	}

	if (!g.paused && g.ticker.ShouldStep()) || g.tickOnce {
		g.advance()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current grid state and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.painter == nil {
		g.painter = render.NewPainter(g.grid.Columns(), g.grid.Rows())
	}
	g.painter.Blit(screen, g.grid, g.aliveColor, g.deadColor, g.cfg.CellSize, g.cfg.Margin)

	mode := "running"
	if g.paused {
		mode = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"gen %d | pop %d | %.1f gen/sec | interval %v | %s",
		g.generation, g.grid.Population(), g.stats.GenerationsPerSecond, g.ticker.Interval(), mode,
	), g.cfg.Margin, 0)
}

// Layout returns the logical screen size: the cell field plus margins.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Columns()*g.cfg.CellSize + 2*g.cfg.Margin,
		g.grid.Rows()*g.cfg.CellSize + 2*g.cfg.Margin
}

// advance replaces the current grid with the next generation. The old grid
// goes back to the pool only after the swap, so the evolver never sees a
// recycled grid mid-step.
func (g *Game) advance() {
	next := g.evolver.Step(g.grid)
	if g.pool != nil {
		g.pool.Put(g.grid)
	}
	g.grid = next
	g.generation++

	now := time.Now()
	g.stats.Update(g.generation, g.grid.Population(), now.Sub(g.lastStep))
	g.lastStep = now
}

// togglePause flips play/pause. Resuming drops accumulated tick time so the
// first step after a long pause waits a full interval.
func (g *Game) togglePause() {
	g.paused = !g.paused
	if !g.paused {
		g.ticker.Reset()
	}
}

// reset clears the board and starts a fresh session at generation zero.
func (g *Game) reset() {
	g.grid.Clear()
	g.generation = 0
	g.stats = utils.NewStats()
	g.lastStep = time.Now()
}

// reseed replaces the board contents with a fresh random population.
func (g *Game) reseed() {
	g.reset()
	g.grid.Randomize(g.rng, g.cfg.RandomDensity)
}

// adjustInterval nudges the tick interval by delta, clamped to the
// configured bounds.
func (g *Game) adjustInterval(delta time.Duration) {
	interval := g.ticker.Interval() + delta
	if interval < g.cfg.MinInterval {
		interval = g.cfg.MinInterval
	}
	if interval > g.cfg.MaxInterval {
		interval = g.cfg.MaxInterval
	}
	g.ticker.SetInterval(interval)
}

// cellAt maps a screen position to grid coordinates. ok is false for
// positions outside the cell field (including the margins).
func (g *Game) cellAt(x, y int) (column, row int, ok bool) {
	x -= g.cfg.Margin
	y -= g.cfg.Margin
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	column = x / g.cfg.CellSize
	row = y / g.cfg.CellSize
	if column >= g.grid.Columns() || row >= g.grid.Rows() {
		return 0, 0, false
	}
	return column, row, true
}

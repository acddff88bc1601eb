//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/core"
	"lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// editable is the part of the life engine the GUI drives beyond core.Sim.
type editable interface {
	Toggle(x, y int) error
	Fill(s life.State)
	BorderMode() life.BorderMode
	SetBorderMode(m life.BorderMode) error
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	edit    editable
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, hudWidth int, seed int64, log *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale),
		log:      log,
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
	if e, ok := sim.(editable); ok {
		g.edit = e
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Info("simulation reset", slog.String("sim", g.sim.Name()), slog.Int64("seed", seed))
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if g.edit != nil {
		g.handleEdits()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.gridWidth())
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleEdits() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.edit.Fill(life.Dead)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		next := g.edit.BorderMode().Next()
		if err := g.edit.SetBorderMode(next); err == nil {
			g.log.Info("border mode changed", slog.String("border", next.String()))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		size := g.sim.Size()
		if x, y, ok := render.CellAt(mx, my, g.scale, size.W, size.H); ok {
			_ = g.edit.Toggle(x, y)
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.painter.Blit(screen, g.sim, g.scale); err != nil {
		g.log.Warn("render failed", slog.String("error", err.Error()))
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.gridWidth(), g.scale)
	}
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

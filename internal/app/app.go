//go:build ebiten

package app

import (
	"strconv"
	"time"

	"life3d/internal/core"
	"life3d/internal/render"
	"life3d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type patternCycler interface {
	NextPattern()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The simulation advances
// tps times per second regardless of the display refresh rate.
func New(sim core.Sim, scale, tps, hudWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewFramePainter(size.W, size.H),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim),
		stepper:  core.NewFixedStep(tps),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
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
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.toggleWireframe()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		if c, ok := g.sim.(patternCycler); ok {
			c.NextPattern()
		}
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	if g.tickOnce || (!g.paused && g.stepper.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) toggleWireframe() {
	provider, ok := g.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	setter, ok := g.sim.(core.BoolParameterSetter)
	if !ok {
		return
	}
	p, ok := provider.Parameters().Lookup("wireframe")
	if !ok {
		return
	}
	on, err := strconv.ParseBool(p.Value)
	if err != nil {
		return
	}
	setter.SetBoolParameter("wireframe", !on)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Frame(), g.scale)
	g.overlay.Draw(screen, g.paused)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

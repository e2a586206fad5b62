//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"gridlife/internal/render"
	"gridlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	statusLineHeight = 16
	maxCatchUp       = 4
	maxTPS           = 240
)

// Game adapts a core simulation to the ebiten.Game interface. Drawing runs
// at ebiten's frame rate while generations advance on a FixedStep.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	stepper *core.FixedStep
	log     *slog.Logger

	onColor  color.Color
	offColor color.Color

	scale      int
	paused     bool
	tickOnce   bool
	showStatus bool
	seed       int64
	tps        int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, log *slog.Logger) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:        sim,
		painter:    gp,
		stepper:    core.NewFixedStep(max(cfg.TPS, 1)),
		log:        log,
		onColor:    color.RGBA{R: 255, G: 165, A: 255},
		offColor:   color.Black,
		scale:      cfg.Scale,
		seed:       cfg.Seed,
		showStatus: true,
		tps:        max(cfg.TPS, 1),
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Info("reset", "seed", seed)
}

// Update handles per-frame input and advances the simulation when due.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showStatus = !g.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleAtCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.setTPS(g.tps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.setTPS(g.tps / 2)
	}

	due := g.stepper.Pending()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = max(due, 1)
		g.tickOnce = false
	}
	for i := 0; i < min(due, maxCatchUp); i++ {
		g.sim.Step()
	}
	return nil
}

func (g *Game) setTPS(tps int) {
	g.tps = min(max(tps, 1), maxTPS)
	g.stepper.SetTPS(g.tps)
	g.log.Info("tps", "tps", g.tps)
}

func (g *Game) toggleAtCursor() {
	t, ok := g.sim.(core.Toggler)
	if !ok {
		return
	}
	px, py := ebiten.CursorPosition()
	size := g.sim.Size()
	x, y, ok := render.CellAt(px, py, g.scale, size.W, size.H)
	if !ok {
		return
	}
	alive := t.Toggle(x, y)
	g.log.Debug("toggle", "x", x, "y", y, "alive", alive)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if !g.showStatus {
		return
	}
	for i, line := range statusLines(g.sim, g.paused) {
		ebitenutil.DebugPrintAt(screen, line, 4, 2+i*statusLineHeight)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

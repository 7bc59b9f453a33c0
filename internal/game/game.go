// Package game is the interactive ebiten host of a flock.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lao-tseu-is-alive/go-boids/internal/spawn"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids/pkg/ui"
	"go.uber.org/zap"
)

var background = color.RGBA{R: 10, G: 10, B: 30, A: 255}

type Game struct {
	cfg     *simulation.Config
	sim     *simulation.Simulation
	spawner *spawn.Spawner
	sprite  *ebiten.Image
	logger  *zap.Logger

	panel *ui.UIPanel
	batch *ui.NumberField

	lastFrame time.Time

	// Timing instrumentation, rolling averages in ms
	updateAvg float64
	drawAvg   float64
}

// New builds the simulation described by cfg, populates it and wires the control panel.
func New(cfg *simulation.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sp, err := spawn.New(cfg.Bounds, cfg.Spawn)
	if err != nil {
		return nil, fmt.Errorf("failed to create spawner: %w", err)
	}
	g := &Game{
		cfg:       cfg,
		sim:       cfg.NewSimulation(logger.Named("simulation")),
		spawner:   sp,
		sprite:    boidSprite(),
		logger:    logger,
		lastFrame: time.Now(),
	}
	added := sp.Populate(g.sim, g.sprite, cfg.NumBoids, cfg.MaxBoids)
	logger.Info("flock ready",
		zap.Int("boids", added),
		zap.String("spawn", sp.Pattern()),
		zap.Any("bounds", cfg.Bounds))

	g.panel = g.buildPanel()
	return g, nil
}

func (g *Game) buildPanel() *ui.UIPanel {
	s := g.sim
	// the panel must stay inside the band where the pointer is ignored
	width := max(min(s.MouseExclusion()-20, 260), 120)
	panel := ui.NewUIPanel("Boids", 10, 10, width, float64(g.cfg.WindowHeight)-20)

	slider := func(label, format string, min, max, value float64, set func(float64)) {
		w := panel.AddSlider(label, min, max, value)
		w.Format = format
		w.OnChange = set
	}
	checkbox := func(label string, value bool, set func(bool)) {
		panel.AddCheckbox(label, value).OnChange = set
	}

	panel.AddSection("Flocking")
	slider("Cohesion", "%.0f", 1, 200, s.Cohesion(), s.SetCohesion)
	slider("Separation", "%.3f", 0, 10, s.Separation(), s.SetSeparation)
	slider("Separation Radius", "%.0f", 1, 100, s.SeparationRadius(), s.SetSeparationRadius)
	slider("Alignment", "%.0f", 1, 200, s.Alignment(), s.SetAlignment)
	panel.EndSection()

	panel.AddSection("Speed")
	slider("Base Velocity", "%.1f", 1, 2, s.BaseVelocity(), s.SetBaseVelocity)
	slider("Max Velocity", "%.0f", 0, 1000, s.MaxVelocity(), s.SetMaxVelocity)
	panel.EndSection()

	panel.AddSection("Mouse")
	slider("Mouse Strength", "%.3f", 1, 10, s.MouseStrength(), s.SetMouseStrength)
	slider("Mouse Radius", "%.0f", 25, 500, s.MouseRadius(), s.SetMouseRadius)
	checkbox("Follow Mouse", s.FollowMouse(), s.SetFollowMouse)
	checkbox("Avoid Mouse", s.AvoidMouse(), s.SetAvoidMouse)
	checkbox("Draw Mouse Radius", s.DrawMouseRadius(), s.SetDrawMouseRadius)
	panel.EndSection()

	panel.AddSection("World")
	checkbox("Wrap Edges", s.WrapEdge(), s.SetWrapEdge)
	g.batch = panel.AddNumberField("Boids per click", g.cfg.BatchSize, g.cfg.MaxBoids)
	panel.AddButtonRow(
		ui.NewButton(0, 0, 0, 0, "Add", g.addBatch),
		ui.NewButton(0, 0, 0, 0, "Remove", g.removeBatch),
	)
	panel.EndSection()
	return panel
}

func (g *Game) addBatch() {
	added := g.spawner.Populate(g.sim, g.sprite, g.batch.Value(), g.cfg.MaxBoids)
	g.logger.Info("boids added", zap.Int("added", added), zap.Int("count", g.sim.Count()))
}

func (g *Game) removeBatch() {
	removed := spawn.Cull(g.sim, g.batch.Value())
	g.logger.Info("boids removed", zap.Int("removed", removed), zap.Int("count", g.sim.Count()))
}

// frameDelta returns the wall clock seconds since the previous frame,
// clamped so a stalled window does not make the flock jump.
func (g *Game) frameDelta(now time.Time) float64 {
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now
	return min(max(dt, 0), g.cfg.MaxFrameDelta)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.panel.Update()

	mx, my := ebiten.CursorPosition()
	g.sim.SetMousePosition(geometry.NewVector(float64(mx), float64(my)))
	g.sim.Update(g.frameDelta(start))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)
	g.sim.Draw(screenTarget{screen: screen})
	g.panel.Draw(screen)

	st := g.sim.Stats()
	msg := fmt.Sprintf("Boids: %d/%d\nMean speed: %.1f\nMax speed:  %.1f\n\nFPS: %.2f\nTPS: %.2f\nUpdate: %.2fms\nDraw:   %.2fms",
		st.Count, g.cfg.MaxBoids,
		st.MeanSpeed, st.MaxSpeed,
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, g.cfg.WindowWidth-160, 10)
}

func (g *Game) Layout(w, h int) (int, int) { return g.cfg.WindowWidth, g.cfg.WindowHeight }

// Run opens the window and blocks until it is closed or Escape is pressed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.WindowWidth, g.cfg.WindowHeight)
	ebiten.SetWindowTitle("Boids")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"overgrowth/internal/effects"
	"overgrowth/internal/gen"
	"overgrowth/internal/render"
	"overgrowth/pkg/core"
)

var walkerColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}

// Game adapts a generated level to the ebiten.Game interface and drives a
// demo walker through the terrain effect runtime.
type Game struct {
	cfg     gen.Config
	level   *gen.Level
	runtime *effects.Runtime
	walker  *walker
	painter *render.GridPainter
	dot     *ebiten.Image

	scale  int
	paused bool
}

// New generates a level from cfg and wires the viewer around it.
func New(cfg gen.Config, scale int) *Game {
	g := &Game{cfg: cfg, scale: scale}
	g.painter = render.NewGridPainter(cfg.Cols, cfg.Rows)
	g.regenerate(cfg.Seed)
	return g
}

// regenerate rebuilds the level and the effect runtime for a new seed.
func (g *Game) regenerate(seed int64) {
	g.cfg.Seed = seed
	g.cfg.Logf = log.Printf
	g.level = gen.Generate(g.cfg)
	g.runtime = effects.NewRuntime(g.level.Query)
	g.runtime.OnTransition = func(id, from, to string) {
		log.Printf("%s: %s -> %s", id, from, to)
	}
	g.walker = newWalker(g.level, core.NewRNG(seed+1))
	g.runtime.Track("walker", g.walker)
}

// Update handles input, steps the walker and runs the effect pass.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.regenerate(time.Now().UnixNano())
	}

	if g.paused {
		return nil
	}
	g.walker.step()
	g.runtime.Update(time.Now())
	return nil
}

// Draw renders the terrain grid and the walker.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.level.Grid.Cells(), render.TerrainPalette(), g.scale)

	if g.dot == nil {
		g.dot = ebiten.NewImage(1, 1)
		g.dot.Fill(walkerColor)
	}
	size := float64(g.level.Grid.TileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	op.GeoM.Translate(
		g.walker.x/size*float64(g.scale),
		g.walker.y/size*float64(g.scale),
	)
	screen.DrawImage(g.dot, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Cols * g.scale, g.cfg.Rows * g.scale
}

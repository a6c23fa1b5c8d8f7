package app

import (
	"math"

	"overgrowth/internal/gen"
	"overgrowth/pkg/core"
)

// walker is the demo entity the viewer drives across the level so terrain
// slows and swamp damage are visible. It satisfies the effect runtime's
// Entity and TakesTerrainDamage capabilities.
type walker struct {
	x, y  float64
	speed float64
	hp    int

	tx, ty float64
	rng    *core.RNG
	level  *gen.Level
}

const (
	walkerBaseSpeed = 3.0
	walkerMaxHP     = 100
)

func newWalker(level *gen.Level, rng *core.RNG) *walker {
	w := &walker{speed: walkerBaseSpeed, hp: walkerMaxHP, rng: rng, level: level}
	w.x, w.y = w.randomPoint()
	w.pickTarget()
	return w
}

func (w *walker) Position() (float64, float64) { return w.x, w.y }
func (w *walker) Speed() float64               { return w.speed }
func (w *walker) SetSpeed(v float64)           { w.speed = v }
func (w *walker) Active() bool                 { return true }

func (w *walker) Damage(amount int) {
	w.hp -= amount
	if w.hp <= 0 {
		w.hp = walkerMaxHP
		w.x, w.y = w.randomPoint()
		w.pickTarget()
	}
}

// step advances the walker toward its target at the current speed and
// retargets once it arrives.
func (w *walker) step() {
	dx := w.tx - w.x
	dy := w.ty - w.y
	dist := dx*dx + dy*dy
	if dist < w.speed*w.speed {
		w.x, w.y = w.tx, w.ty
		w.pickTarget()
		return
	}
	inv := w.speed / math.Sqrt(dist)
	w.x += dx * inv
	w.y += dy * inv
}

func (w *walker) pickTarget() {
	w.tx, w.ty = w.randomPoint()
}

// randomPoint returns a world coordinate inside the playable interior.
func (w *walker) randomPoint() (float64, float64) {
	g := w.level.Grid
	margin := gen.BorderWidth + 1
	tx := w.rng.IntRange(margin, g.Cols-1-margin)
	ty := w.rng.IntRange(margin, g.Rows-1-margin)
	size := float64(g.TileSize)
	return (float64(tx) + 0.5) * size, (float64(ty) + 0.5) * size
}

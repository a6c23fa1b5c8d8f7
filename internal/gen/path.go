package gen

import (
	"math"

	"overgrowth/internal/terrain"
)

// Connect stamps a winding corridor of typ between two cluster centers.
// Sample points are lerped along the segment at stepLength intervals and
// jittered so the corridor is never a straight line. Each sample stamps a
// disk whose acceptance probability decays linearly from center to rim.
// Only cells currently holding background are overwritten, so a corridor
// never eats the border or another feature.
func Connect(ctx *Context, typ, background terrain.Type, p1, p2 Point, stepLength float64) {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	dist := math.Hypot(dx, dy)
	if stepLength <= 0 {
		stepLength = 1
	}
	steps := int(math.Round(dist / stepLength))
	if steps < 1 {
		steps = 1
	}

	width := 1 + ctx.RNG.IntN(2)

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		jx := (ctx.RNG.Float64() - 0.5) * 3
		jy := (ctx.RNG.Float64() - 0.5) * 3
		sx := int(math.Round(float64(p1.X) + dx*t + jx))
		sy := int(math.Round(float64(p1.Y) + dy*t + jy))
		stampDisk(ctx, typ, background, sx, sy, width)
	}
}

func stampDisk(ctx *Context, typ, background terrain.Type, cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := math.Hypot(float64(dx), float64(dy))
			if d > float64(radius) {
				continue
			}
			p := 1 - d/float64(radius+1)
			if !ctx.RNG.Chance(p) {
				continue
			}
			x, y := cx+dx, cy+dy
			if tile, ok := ctx.Grid.TileAt(x, y); ok && tile == background {
				ctx.Grid.SetTile(x, y, typ)
			}
		}
	}
}

package gen

import (
	"overgrowth/internal/terrain"
	"overgrowth/pkg/core"
)

// Context carries the mutable state of one generation pass: the grid under
// construction, the shared processed bitmap that stops cluster passes from
// overlapping, the RNG and the noise field. It is created by Generate and
// must not outlive the pass; once the grid is frozen the bitmap holds no
// further meaning.
type Context struct {
	Grid  *terrain.Grid
	RNG   *core.RNG
	Noise *NoiseField

	processed []bool

	// Logf, when set, receives placement-exhaustion notices. Generation
	// never fails; skipped clusters are reported here and skipped.
	Logf func(format string, args ...any)
}

// NewContext prepares a generation pass over a fresh grid.
func NewContext(grid *terrain.Grid, rng *core.RNG) *Context {
	return &Context{
		Grid:      grid,
		RNG:       rng,
		Noise:     NewNoiseField(rng),
		processed: make([]bool, grid.Cols*grid.Rows),
	}
}

func (c *Context) isProcessed(x, y int) bool {
	if !c.Grid.InBounds(x, y) {
		return true
	}
	return c.processed[c.Grid.Index(x, y)]
}

func (c *Context) markProcessed(x, y int) {
	if !c.Grid.InBounds(x, y) {
		return
	}
	c.processed[c.Grid.Index(x, y)] = true
}

func (c *Context) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

package terrain

import "math"

// Grid stores one terrain type per cell in row-major order. A fresh grid is
// all Floor. The grid is rebuilt wholesale at level start and is read-only
// once generation finishes, so it can be shared freely afterwards.
type Grid struct {
	Cols, Rows int
	TileSize   int
	cells      []Type
}

// NewGrid allocates a cols x rows grid of Floor cells. tileSize is the edge
// length of one tile in world units.
func NewGrid(cols, rows, tileSize int) *Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	if tileSize <= 0 {
		tileSize = 1
	}
	return &Grid{Cols: cols, Rows: rows, TileSize: tileSize, cells: make([]Type, cols*rows)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []Type { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.Cols + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// SetTile writes a terrain type at (x, y). Out-of-bounds writes are silently
// dropped: generation code walks neighbor offsets past the edges and relies
// on this instead of pre-checking every probe.
func (g *Grid) SetTile(x, y int, t Type) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = t
}

// TileAt returns the terrain type at (x, y), or false when out of bounds.
func (g *Grid) TileAt(x, y int) (Type, bool) {
	if !g.InBounds(x, y) {
		return Floor, false
	}
	return g.cells[g.Index(x, y)], true
}

// TileAtWorld converts a continuous world coordinate to a tile index and
// delegates to TileAt.
func (g *Grid) TileAtWorld(wx, wy float64) (Type, bool) {
	x := int(math.Floor(wx / float64(g.TileSize)))
	y := int(math.Floor(wy / float64(g.TileSize)))
	return g.TileAt(x, y)
}

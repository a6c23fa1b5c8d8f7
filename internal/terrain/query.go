package terrain

// Query is the read-only lookup from world-space coordinates to effect
// records. The effect runtime, the collision handler and the renderer all
// share one Query over the frozen grid; no locking is needed because the
// grid never changes after generation.
type Query struct {
	grid *Grid
}

// NewQuery wraps a generated grid for read-only effect lookups.
func NewQuery(g *Grid) *Query { return &Query{grid: g} }

// Grid returns the underlying grid, for draw-only consumers.
func (q *Query) Grid() *Grid { return q.grid }

// TypeAt returns the terrain type at tile (x, y), or false out of bounds.
func (q *Query) TypeAt(x, y int) (Type, bool) {
	return q.grid.TileAt(x, y)
}

// EffectAt returns the effect record under the world coordinate (wx, wy).
// The second result is false outside the generated area.
func (q *Query) EffectAt(wx, wy float64) (Effect, bool) {
	t, ok := q.grid.TileAtWorld(wx, wy)
	if !ok {
		return Effect{}, false
	}
	return EffectOf(t), true
}

// EffectAtTile returns the effect record at tile (x, y), or false out of
// bounds. Used by the collision handler, which receives tile coordinates
// from the physics layer.
func (q *Query) EffectAtTile(x, y int) (Effect, bool) {
	t, ok := q.grid.TileAt(x, y)
	if !ok {
		return Effect{}, false
	}
	return EffectOf(t), true
}

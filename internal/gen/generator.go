package gen

import (
	"overgrowth/internal/terrain"
	"overgrowth/pkg/core"
)

// Spacing factors per terrain type, applied against min(cols, rows).
const (
	meadowSpacing = 0.15
	bushSpacing   = 0.15
	swampSpacing  = 0.18
	forestSpacing = 0.20
)

// Level is the product of one generation pass: the frozen grid plus the
// read-only query every consumer shares. Centers are retained so callers
// can place spawns or landmarks inside generated regions.
type Level struct {
	Grid    *terrain.Grid
	Query   *terrain.Query
	Config  Config
	Centers map[terrain.Type][]Point
}

// Generate builds a complete level grid for the given config. It runs
// synchronously and always terminates: every placement loop is bounded by
// an attempt cap, and exhaustion skips the feature rather than failing.
func Generate(cfg Config) *Level {
	grid := terrain.NewGrid(cfg.Cols, cfg.Rows, cfg.TileSize)
	ctx := NewContext(grid, core.NewRNG(cfg.Seed))
	ctx.Logf = cfg.Logf
	p := cfg.Params

	centers := make(map[terrain.Type][]Point)

	meadows := Clusters(ctx, ClusterSpec{
		Type:          terrain.Meadow,
		Clusters:      p.MeadowClusters,
		SizeMin:       p.MeadowSizeMin,
		SizeMax:       p.MeadowSizeMax,
		SpacingFactor: meadowSpacing,
		DensityVeto:   true,
	})
	centers[terrain.Meadow] = meadows

	// Trails thread successive meadows together; they only cut through
	// meadow cells, so open floor between regions stays untouched.
	for i := 0; i+1 < len(meadows); i++ {
		Connect(ctx, terrain.Floor, terrain.Meadow, meadows[i], meadows[i+1], p.TrailStep)
	}

	centers[terrain.Forest] = Clusters(ctx, ClusterSpec{
		Type:          terrain.Forest,
		Clusters:      p.ForestClusters,
		SizeMin:       p.ForestSizeMin,
		SizeMax:       p.ForestSizeMax,
		SpacingFactor: forestSpacing,
		DensityVeto:   true,
	})

	centers[terrain.Bush] = Clusters(ctx, ClusterSpec{
		Type:          terrain.Bush,
		Clusters:      p.BushClusters,
		SizeMin:       p.BushSizeMin,
		SizeMax:       p.BushSizeMax,
		SpacingFactor: bushSpacing,
		DensityVeto:   true,
	})
	Undergrowth(ctx, p.UndergrowthChance)

	swamps := Clusters(ctx, ClusterSpec{
		Type:          terrain.Swamp,
		Clusters:      p.SwampClusters,
		SizeMin:       p.SwampSizeMin,
		SizeMax:       p.SwampSizeMax,
		SpacingFactor: swampSpacing,
		DensityVeto:   true,
	})
	centers[terrain.Swamp] = swamps

	// Streams link swamp regions across intervening meadow.
	for i := 0; i+1 < len(swamps); i++ {
		Connect(ctx, terrain.Swamp, terrain.Meadow, swamps[i], swamps[i+1], p.StreamStep)
	}

	PaintBorder(grid)

	// The context, its bitmap and the RNG are dropped here; the grid is
	// frozen from this point on.
	return &Level{
		Grid:    grid,
		Query:   terrain.NewQuery(grid),
		Config:  cfg,
		Centers: centers,
	}
}

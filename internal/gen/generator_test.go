package gen

import (
	"slices"
	"testing"

	"overgrowth/internal/terrain"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 424242

	first := Generate(cfg)
	second := Generate(cfg)
	if !slices.Equal(first.Grid.Cells(), second.Grid.Cells()) {
		t.Fatal("same seed produced different levels")
	}

	cfg.Seed = 424243
	third := Generate(cfg)
	if slices.Equal(first.Grid.Cells(), third.Grid.Cells()) {
		t.Fatal("different seeds produced identical levels")
	}
}

func TestGenerateBorderInvariant(t *testing.T) {
	level := Generate(DefaultConfig())
	g := level.Grid
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			inBand := x < BorderWidth || x >= g.Cols-BorderWidth ||
				y < BorderWidth || y >= g.Rows-BorderWidth
			if !inBand {
				continue
			}
			if tile, _ := g.TileAt(x, y); tile != terrain.Border {
				t.Fatalf("generated edge cell (%d, %d) is %v, want border", x, y, tile)
			}
		}
	}
}

func TestGenerateForestStaysWithinBudget(t *testing.T) {
	cfg := DefaultConfig()
	level := Generate(cfg)

	forest := 0
	for _, c := range level.Grid.Cells() {
		if c == terrain.Forest {
			forest++
		}
	}
	limit := cfg.Params.ForestClusters * cfg.Params.ForestSizeMax
	if forest > limit {
		t.Fatalf("forest covers %d cells, cluster budget allows at most %d", forest, limit)
	}
	if forest == 0 {
		t.Fatal("expected some forest on a default level")
	}
}

func TestGenerateCentersInsideInterior(t *testing.T) {
	level := Generate(DefaultConfig())
	g := level.Grid
	for typ, centers := range level.Centers {
		for _, c := range centers {
			if c.X < centerMargin || c.X >= g.Cols-centerMargin ||
				c.Y < centerMargin || c.Y >= g.Rows-centerMargin {
				t.Fatalf("%v center (%d, %d) outside the %d-tile interior margin", typ, c.X, c.Y, centerMargin)
			}
		}
	}
}

func TestForStageScalesUp(t *testing.T) {
	base := DefaultConfig()
	for stage := 2; stage <= 6; stage++ {
		prev := base.ForStage(stage - 1).Params
		curr := base.ForStage(stage).Params
		if curr.ForestClusters < prev.ForestClusters ||
			curr.BushClusters < prev.BushClusters ||
			curr.SwampClusters < prev.SwampClusters {
			t.Fatalf("stage %d shrank a cluster count", stage)
		}
		if curr.ForestSizeMax < prev.ForestSizeMax || curr.SwampSizeMax < prev.SwampSizeMax {
			t.Fatalf("stage %d shrank a size range", stage)
		}
	}

	if got := base.ForStage(0).Stage; got != 1 {
		t.Fatalf("stage clamps to 1, got %d", got)
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"cols":  "80",
		"rows":  "50",
		"seed":  "99",
		"stage": "3",
	})
	if cfg.Cols != 80 || cfg.Rows != 50 {
		t.Fatalf("dimensions not applied: %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.Seed != 99 {
		t.Fatalf("seed not applied: %d", cfg.Seed)
	}
	if cfg.Stage != 3 {
		t.Fatalf("stage not applied: %d", cfg.Stage)
	}
	if cfg.Params.ForestClusters <= DefaultConfig().Params.ForestClusters {
		t.Fatal("stage override did not scale the tuning")
	}

	if junk := FromMap(map[string]string{"cols": "nope", "seed": "x"}); junk.Cols != DefaultConfig().Cols {
		t.Fatal("unparseable values must fall back to defaults")
	}
}

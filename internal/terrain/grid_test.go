package terrain

import "testing"

func TestNewGridDefaultsToFloor(t *testing.T) {
	g := NewGrid(8, 6, 32)
	if g.Cols != 8 || g.Rows != 6 {
		t.Fatalf("unexpected dimensions %dx%d", g.Cols, g.Rows)
	}
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if tile, ok := g.TileAt(x, y); !ok || tile != Floor {
				t.Fatalf("cell (%d, %d) = %v, want floor", x, y, tile)
			}
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := NewGrid(4, 4, 32)

	// Writes past the edges are dropped, not panics: generation probes
	// neighbor offsets beyond the grid on purpose.
	g.SetTile(-1, 0, Swamp)
	g.SetTile(0, -1, Swamp)
	g.SetTile(4, 0, Swamp)
	g.SetTile(0, 4, Swamp)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if _, ok := g.TileAt(p[0], p[1]); ok {
			t.Fatalf("TileAt(%d, %d) reported in bounds", p[0], p[1])
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if tile, _ := g.TileAt(x, y); tile != Floor {
				t.Fatalf("out-of-bounds write leaked into (%d, %d)", x, y)
			}
		}
	}
}

func TestTileAtWorld(t *testing.T) {
	g := NewGrid(4, 4, 32)
	g.SetTile(1, 1, Forest)

	if tile, ok := g.TileAtWorld(63.9, 32.0); !ok || tile != Forest {
		t.Fatalf("world (63.9, 32.0) = %v, %v; want forest", tile, ok)
	}
	if tile, ok := g.TileAtWorld(64.0, 32.0); !ok || tile != Floor {
		t.Fatalf("world (64.0, 32.0) = %v, %v; want floor", tile, ok)
	}
	if _, ok := g.TileAtWorld(-0.1, 0); ok {
		t.Fatal("negative world coordinate reported in bounds")
	}
	if _, ok := g.TileAtWorld(0, 4*32.0); ok {
		t.Fatal("world coordinate past the far edge reported in bounds")
	}
}

func TestQueryEffectAt(t *testing.T) {
	g := NewGrid(4, 4, 32)
	g.SetTile(2, 2, Swamp)
	q := NewQuery(g)

	eff, ok := q.EffectAt(2.5*32, 2.5*32)
	if !ok || eff.Name != "swamp" {
		t.Fatalf("expected swamp effect, got %+v, %v", eff, ok)
	}
	if _, ok := q.EffectAt(-1, -1); ok {
		t.Fatal("query outside the grid must report no effect")
	}
	if eff, ok := q.EffectAtTile(2, 2); !ok || eff.Damage == 0 {
		t.Fatalf("tile lookup expected damaging swamp, got %+v, %v", eff, ok)
	}
}

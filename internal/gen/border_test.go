package gen

import (
	"testing"

	"overgrowth/internal/terrain"
)

func TestPaintBorderWinsAtEveryEdge(t *testing.T) {
	grid := terrain.NewGrid(25, 17, 32)
	// Scribble over the whole grid first; the band must overwrite all of it.
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			grid.SetTile(x, y, terrain.Type((x+y)%5))
		}
	}
	interior := make(map[Point]terrain.Type)
	for y := BorderWidth; y < grid.Rows-BorderWidth; y++ {
		for x := BorderWidth; x < grid.Cols-BorderWidth; x++ {
			tile, _ := grid.TileAt(x, y)
			interior[Point{X: x, Y: y}] = tile
		}
	}

	PaintBorder(grid)

	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			tile, _ := grid.TileAt(x, y)
			inBand := x < BorderWidth || x >= grid.Cols-BorderWidth ||
				y < BorderWidth || y >= grid.Rows-BorderWidth
			if inBand && tile != terrain.Border {
				t.Fatalf("edge cell (%d, %d) is %v, want border", x, y, tile)
			}
			if !inBand && tile != interior[Point{X: x, Y: y}] {
				t.Fatalf("interior cell (%d, %d) changed to %v", x, y, tile)
			}
		}
	}
}

package gen

import "overgrowth/internal/terrain"

// BorderWidth is the thickness of the impassable band along the grid edge.
const BorderWidth = 2

// PaintBorder stamps the border band along all four edges. It runs after
// every other pass so the band always wins at the boundary. No randomness,
// no failure mode.
func PaintBorder(g *terrain.Grid) {
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if x < BorderWidth || x >= g.Cols-BorderWidth ||
				y < BorderWidth || y >= g.Rows-BorderWidth {
				g.SetTile(x, y, terrain.Border)
			}
		}
	}
}

package render

import (
	"image/color"

	"overgrowth/internal/terrain"
)

var terrainPalette = buildTerrainPalette()

// TerrainPalette returns the color palette used to draw the terrain grid,
// indexed by terrain type.
func TerrainPalette() []color.RGBA {
	return terrainPalette
}

func buildTerrainPalette() []color.RGBA {
	palette := make([]color.RGBA, len(terrain.Types()))
	for _, t := range terrain.Types() {
		palette[int(t)] = paletteColorFor(t)
	}
	return palette
}

func paletteColorFor(t terrain.Type) color.RGBA {
	switch t {
	case terrain.Floor:
		return color.RGBA{R: 168, G: 152, B: 120, A: 255}
	case terrain.Meadow:
		return color.RGBA{R: 120, G: 190, B: 90, A: 255}
	case terrain.Bush:
		return color.RGBA{R: 80, G: 150, B: 70, A: 255}
	case terrain.Forest:
		return color.RGBA{R: 40, G: 110, B: 55, A: 255}
	case terrain.Swamp:
		return color.RGBA{R: 70, G: 95, B: 60, A: 255}
	case terrain.Border:
		return color.RGBA{R: 60, G: 56, B: 54, A: 255}
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}

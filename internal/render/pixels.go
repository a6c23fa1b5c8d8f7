package render

import (
	"image/color"

	"overgrowth/internal/terrain"
)

// fillPaletteRGBA converts terrain cells into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []terrain.Type, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

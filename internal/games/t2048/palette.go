package t2048

import (
	"math"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	paletteSize = 21  // ranks with a precomputed color
	gamma       = 0.8 // spectrum gamma correction
)

// palette maps a tile rank to its background color. Ranks walk the visible
// spectrum from red toward violet, 20nm per doubling.
var palette = func() [paletteSize]core.Color {
	var p [paletteSize]core.Color
	for v := range p {
		p[v] = spectrum(700 - 20*float64(v))
	}
	return p
}()

// TileColor returns the background color of a tile with the given rank.
// Ranks past the palette fall off the spectrum and render black.
func TileColor(value int) core.Color {
	if value < 0 || value >= paletteSize {
		return core.ColorEmpty
	}
	return palette[value]
}

// spectrum approximates the RGB color of light at the given wavelength in
// nanometers. Wavelengths outside 375..750 are black.
func spectrum(nm float64) core.Color {
	var r, g, b float64
	switch {
	case nm >= 375 && nm <= 440:
		att := 0.3 + 0.7*(nm-380)/(440-380)
		r = pow(-(nm - 440) / (440 - 375) * att)
		b = pow(att)
	case nm >= 440 && nm <= 490:
		g = pow((nm - 440) / (490 - 440))
		b = 1
	case nm >= 490 && nm <= 510:
		g = 1
		b = pow(-(nm - 510) / (510 - 490))
	case nm >= 510 && nm <= 580:
		r = pow((nm - 510) / (580 - 510))
		g = 1
	case nm >= 580 && nm <= 645:
		r = 1
		g = pow(-(nm - 645) / (645 - 580))
	case nm >= 645 && nm <= 750:
		r = pow(0.3 + 0.7*(750-nm)/(750-645))
	}
	return core.RGB(channel(r), channel(g), channel(b))
}

func pow(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, gamma)
}

func channel(x float64) uint8 {
	return uint8(core.Clamp(int(255*x), 0, 255))
}

package gen

import (
	"math"

	"overgrowth/pkg/core"
)

// NoiseField is a deterministic 2D gradient noise source. It holds a
// randomized permutation of [0, 256) duplicated to 512 entries so lattice
// hashing never wraps. After seeding it is pure: the same (x, y) always
// yields the same value in [-1, 1].
type NoiseField struct {
	perm [512]uint8
}

// NewNoiseField builds the permutation table with a uniform shuffle drawn
// from rng.
func NewNoiseField(rng *core.RNG) *NoiseField {
	p := make([]uint8, 256)
	for i := range p {
		p[i] = uint8(i)
	}
	rng.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	n := &NoiseField{}
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// fade is the quintic interpolation curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad derives one of eight gradient directions from the hash and dots it
// with the offset vector (x, y).
func grad(hash uint8, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise returns the gradient noise value at (x, y) in [-1, 1].
func (n *NoiseField) Noise(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	dx := x - fx
	dy := y - fy

	u := fade(dx)
	v := fade(dy)

	aa := n.perm[int(n.perm[xi])+yi]
	ab := n.perm[int(n.perm[xi])+yi+1]
	ba := n.perm[int(n.perm[xi+1])+yi]
	bb := n.perm[int(n.perm[xi+1])+yi+1]

	x1 := lerp(grad(aa, dx, dy), grad(ba, dx-1, dy), u)
	x2 := lerp(grad(ab, dx, dy-1), grad(bb, dx-1, dy-1), u)
	return lerp(x1, x2, v)
}

package gen

import (
	"testing"

	"overgrowth/pkg/core"
)

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoiseField(core.NewRNG(42))
	b := NewNoiseField(core.NewRNG(42))

	for i := 0; i < 200; i++ {
		x := float64(i) * 0.13
		y := float64(i) * 0.37
		if a.Noise(x, y) != b.Noise(x, y) {
			t.Fatalf("same seed diverged at (%f, %f)", x, y)
		}
	}

	c := NewNoiseField(core.NewRNG(43))
	diverged := false
	for i := 0; i < 200 && !diverged; i++ {
		x := float64(i) * 0.13
		y := float64(i) * 0.37
		if a.Noise(x, y) != c.Noise(x, y) {
			diverged = true
		}
	}
	if !diverged {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNoiseRange(t *testing.T) {
	n := NewNoiseField(core.NewRNG(7))
	for i := 0; i < 100; i++ {
		for j := 0; j < 100; j++ {
			v := n.Noise(float64(i)*0.21, float64(j)*0.17)
			if v < -1 || v > 1 {
				t.Fatalf("noise(%d, %d) = %f outside [-1, 1]", i, j, v)
			}
		}
	}
}

func TestNoiseZeroAtLatticePoints(t *testing.T) {
	n := NewNoiseField(core.NewRNG(99))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			if v := n.Noise(float64(x), float64(y)); v != 0 {
				t.Fatalf("noise at lattice point (%d, %d) = %f, want 0", x, y, v)
			}
		}
	}
}

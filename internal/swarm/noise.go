package swarm

import (
	"math"
	"math/rand/v2"
)

// Noise is seeded one dimensional Perlin noise with several octaves.
// Values lie in [0, 1] and change smoothly with the input.
type Noise struct {
	octaves     int
	falloff     float64
	permutation [512]int
}

// NewNoise returns seeded 1D noise summing the given number of octaves.
func NewNoise(seed uint64, octaves int) *Noise {
	n := &Noise{octaves: max(1, octaves), falloff: 0.5}

	perm := make([]int, 256)
	for i := range perm {
		perm[i] = i
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	for i := range n.permutation {
		n.permutation[i] = perm[i&255]
	}
	return n
}

// At samples the noise curve at x.
func (n *Noise) At(x float64) float64 {
	var sum, norm float64
	amplitude, frequency := 1.0, 1.0

	for range n.octaves {
		sum += n.perlin(x*frequency) * amplitude
		norm += amplitude
		amplitude *= n.falloff
		frequency *= 2
	}

	// perlin is within [-0.5, 0.5] for one dimension.
	return math.Min(1, math.Max(0, sum/norm+0.5))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x float64) float64 {
	g := float64(hash&7+1) / 8
	if hash&8 != 0 {
		g = -g
	}
	return g * x
}

func (n *Noise) perlin(x float64) float64 {
	cell := int(math.Floor(x)) & 255
	x -= math.Floor(x)

	return lerp(
		grad(n.permutation[cell], x),
		grad(n.permutation[cell+1], x-1),
		fade(x),
	)
}

// SPDX-License-Identifier: MIT

package synth

import (
	"math"
	"math/rand"
)

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// dayStream returns an RNG private to one day label. The parent draw happens
// once per generator call, so streams depend only on (parent, day).
func dayStream(parent int64, day float64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, math.Float64bits(day))))
}

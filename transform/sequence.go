package transform

import "math"

// Linear congruential generator constants. Changing any of them breaks
// decryption of previously shuffled images.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// ShuffleSequence returns a permutation of [0, length) derived from the key
// and strength. The same inputs always produce the same permutation, which
// is what lets the inverse shuffle undo a forward shuffle without extra state.
//
// The generator is a Fisher-Yates shuffle driven by an LCG seeded with
// KeySum(key)*strength. The partner index is computed in float64 to match
// the reference output bit for bit.
func ShuffleSequence(length int, key string, strength int) []int {
	if length <= 0 {
		return []int{}
	}

	seq := make([]int, length)
	for i := range seq {
		seq[i] = i
	}

	seed := int64(KeySum(key)) * int64(strength)
	for i := length - 1; i > 0; i-- {
		seed = lcgNext(seed)
		j := int(math.Floor(float64(seed) / lcgModulus * float64(i+1)))
		seq[i], seq[j] = seq[j], seq[i]
	}
	return seq
}

// lcgNext advances the generator one step. The result is always in
// [0, lcgModulus) for non-negative seeds.
func lcgNext(seed int64) int64 {
	next := (seed*lcgMultiplier + lcgIncrement) % lcgModulus
	if next < 0 {
		next += lcgModulus
	}
	return next
}

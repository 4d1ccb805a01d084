package exercise

import "math/rand/v2"

// Shuffle returns a shuffled copy, leaving the input untouched.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

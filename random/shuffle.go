package random

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/big"
)

// Shuffle permutes s in place with a Fisher-Yates pass: for each index i the
// element is swapped with a uniform pick from [i, len). Every permutation is
// equally likely given a uniform source. A nil src means Default().
func Shuffle[T any](s []T, src Source) {
	if src == nil {
		src = Default()
	}
	for i := 0; i < len(s)-1; i++ {
		r := i + src.IntN(len(s)-i)
		s[i], s[r] = s[r], s[i]
	}
}

// ShuffleCopy returns a shuffled copy of s, leaving the input untouched.
func ShuffleCopy[T any](s []T, src Source) []T {
	out := make([]T, len(s))
	copy(out, s)
	Shuffle(out, src)
	return out
}

// SecureShuffle permutes s in place like Shuffle, but draws from the
// cryptographically secure entropy source. crypto/rand.Int rejection-samples,
// so the draw is uniform over any range, not just powers of two. The only
// possible error is an entropy read failure, returned before the permutation
// is affected by it.
func SecureShuffle[T any](s []T) error {
	for i := 0; i < len(s)-1; i++ {
		v, err := cryptorand.Int(cryptorand.Reader, big.NewInt(int64(len(s)-i)))
		if err != nil {
			return fmt.Errorf("read entropy: %w", err)
		}
		r := i + int(v.Int64())
		s[i], s[r] = s[r], s[i]
	}
	return nil
}

package session

import (
	"math/rand"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/config"
)

// generateSequence produces a fresh training sequence: a count drawn
// uniformly from [MinCount, MaxCount], that many distinct values drawn
// uniformly from [MinValue, MaxValue] by resampling, then a uniform
// Fisher-Yates permutation. If the permutation comes out sorted, the
// first two positions are swapped so the game is never trivial.
func generateSequence(rng *rand.Rand, cfg config.SequenceConfig) []int {
	count := cfg.MinCount + rng.Intn(cfg.MaxCount-cfg.MinCount+1)

	// The resample loop cannot terminate if the value range is smaller
	// than the requested count.
	span := cfg.MaxValue - cfg.MinValue + 1
	if count > span {
		count = span
	}

	seen := make(map[int]bool, count)
	values := make([]int, 0, count)
	for len(values) < count {
		v := cfg.MinValue + rng.Intn(span)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	for i := len(values) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}

	if len(values) > 1 && sorted(values) {
		values[0], values[1] = values[1], values[0]
	}

	return values
}

// sorted reports whether seq is non-decreasing.
func sorted(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			return false
		}
	}
	return true
}

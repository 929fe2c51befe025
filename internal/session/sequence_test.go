package session

import (
	"math/rand"
	"testing"

	"github.com/antonia-04/Joc-Sortari-portofoliu-IAC/internal/config"
)

func TestGenerateSequenceContract(t *testing.T) {
	cfg := config.DefaultTrainerConfig().Sequence

	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		seq := generateSequence(rng, cfg)

		if len(seq) < cfg.MinCount || len(seq) > cfg.MaxCount {
			t.Fatalf("seed %d: length = %d, want %d-%d", seed, len(seq), cfg.MinCount, cfg.MaxCount)
		}

		seen := make(map[int]bool)
		for _, v := range seq {
			if v < cfg.MinValue || v > cfg.MaxValue {
				t.Fatalf("seed %d: value %d outside [%d,%d]", seed, v, cfg.MinValue, cfg.MaxValue)
			}
			if seen[v] {
				t.Fatalf("seed %d: duplicate value %d in %v", seed, v, seq)
			}
			seen[v] = true
		}

		if sorted(seq) {
			t.Fatalf("seed %d: generated sequence %v is already sorted", seed, seq)
		}
	}
}

func TestGenerateSequenceDeterministic(t *testing.T) {
	cfg := config.DefaultTrainerConfig().Sequence

	a := generateSequence(rand.New(rand.NewSource(1234)), cfg)
	b := generateSequence(rand.New(rand.NewSource(1234)), cfg)

	if len(a) != len(b) {
		t.Fatalf("same seed gave different lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed gave different sequences: %v vs %v", a, b)
		}
	}
}

func TestGenerateSequenceTightRange(t *testing.T) {
	// Only two possible values: the unsorted-start rule still holds.
	cfg := config.SequenceConfig{MinCount: 2, MaxCount: 2, MinValue: 1, MaxValue: 2}

	for seed := int64(0); seed < 20; seed++ {
		seq := generateSequence(rand.New(rand.NewSource(seed)), cfg)
		if len(seq) != 2 {
			t.Fatalf("seed %d: length = %d, want 2", seed, len(seq))
		}
		if seq[0] != 2 || seq[1] != 1 {
			t.Fatalf("seed %d: sequence = %v, want [2 1]", seed, seq)
		}
	}
}

func TestSorted(t *testing.T) {
	tests := []struct {
		name     string
		seq      []int
		expected bool
	}{
		{name: "ascending", seq: []int{1, 2, 3}, expected: true},
		{name: "descending", seq: []int{3, 2, 1}, expected: false},
		{name: "equal run", seq: []int{2, 2, 3}, expected: true},
		{name: "single", seq: []int{7}, expected: true},
		{name: "empty", seq: nil, expected: true},
		{name: "dip in middle", seq: []int{1, 5, 3, 7}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sorted(tt.seq); got != tt.expected {
				t.Errorf("sorted(%v) = %v, want %v", tt.seq, got, tt.expected)
			}
		})
	}
}

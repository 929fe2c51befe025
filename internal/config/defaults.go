package config

import (
	_ "embed"
)

//go:embed defaults/sortari.yaml
var defaultTrainerYAML []byte

// DefaultTrainerConfig returns the default trainer configuration:
// sequences of 5 to 7 distinct values in [1, 20].
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Sequence: SequenceConfig{
			MinCount: 5,
			MaxCount: 7,
			MinValue: 1,
			MaxValue: 20,
		},
	}
}

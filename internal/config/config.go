// Package config provides YAML-based configuration loading and
// difficulty presets for the sorting trainer.
package config

import "fmt"

// TrainerConfig contains all configuration for a training session.
type TrainerConfig struct {
	Sequence SequenceConfig `yaml:"sequence"`
}

// SequenceConfig defines how the random training sequence is generated.
// A game draws a count uniformly from [min_count, max_count] and that
// many distinct values uniformly from [min_value, max_value].
type SequenceConfig struct {
	MinCount int `yaml:"min_count"`
	MaxCount int `yaml:"max_count"`
	MinValue int `yaml:"min_value"`
	MaxValue int `yaml:"max_value"`
}

// Validate checks that the sequence ranges can actually produce a game.
func (c SequenceConfig) Validate() error {
	if c.MinCount < 2 {
		return fmt.Errorf("config: min_count must be at least 2, got %d", c.MinCount)
	}
	if c.MaxCount < c.MinCount {
		return fmt.Errorf("config: max_count %d is below min_count %d", c.MaxCount, c.MinCount)
	}
	if c.MaxValue < c.MinValue {
		return fmt.Errorf("config: max_value %d is below min_value %d", c.MaxValue, c.MinValue)
	}
	// Distinct values are drawn by resampling, so the value range must
	// cover the largest possible count.
	if span := c.MaxValue - c.MinValue + 1; span < c.MaxCount {
		return fmt.Errorf("config: value range [%d,%d] cannot supply %d distinct values",
			c.MinValue, c.MaxValue, c.MaxCount)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *TrainerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Sequence = SequenceConfig{MinCount: 5, MaxCount: 5, MinValue: 1, MaxValue: 10}
	case DifficultyNormal:
		cfg.Sequence = SequenceConfig{MinCount: 5, MaxCount: 7, MinValue: 1, MaxValue: 20}
	case DifficultyHard:
		cfg.Sequence = SequenceConfig{MinCount: 8, MaxCount: 10, MinValue: 1, MaxValue: 30}
	}
}

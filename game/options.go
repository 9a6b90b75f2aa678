package game

import (
	"powersnake/game/types"
)

// Options tunes an Engine. Non-positive fields fall back to DefaultOptions,
// except PowerSpawnChance where zero turns food-triggered power-ups off.
type Options struct {
	BaseSpeed        float64 // Moves per second at multiplier 1
	PowerDuration    int     // Moves an active effect lasts
	PowerLifetime    int     // Moves an uncollected power-up survives
	PowerSpawnChance float64 // Chance of a power-up when food is eaten
	FoodScore        int
	ScoreBoostPoints int
	Seed             uint64 // 0 seeds from the clock
}

// DefaultOptions returns the classic tuning.
func DefaultOptions() Options {
	return Options{
		BaseSpeed:        types.BaseSpeed,
		PowerDuration:    types.PowerDuration,
		PowerLifetime:    types.PowerLifetime,
		PowerSpawnChance: types.PowerSpawnChance,
		FoodScore:        types.FoodScore,
		ScoreBoostPoints: types.ScoreBoostPoints,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.BaseSpeed <= 0 {
		o.BaseSpeed = def.BaseSpeed
	}
	if o.PowerDuration <= 0 {
		o.PowerDuration = def.PowerDuration
	}
	if o.PowerLifetime <= 0 {
		o.PowerLifetime = def.PowerLifetime
	}
	if o.PowerSpawnChance < 0 {
		o.PowerSpawnChance = def.PowerSpawnChance
	}
	if o.FoodScore <= 0 {
		o.FoodScore = def.FoodScore
	}
	if o.ScoreBoostPoints <= 0 {
		o.ScoreBoostPoints = def.ScoreBoostPoints
	}
	return o
}

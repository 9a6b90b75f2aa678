package ai

import (
	"errors"
	"fmt"
	"log"

	"powersnake/game"
)

// TrainConfig describes a headless training run.
type TrainConfig struct {
	Episodes    int
	MaxMoves    int // Moves per episode before it is cut short
	Width       int
	Height      int
	Obstacles   int
	SpawnEvery  int     // Moves between TrySpawnPowerup calls, 0 disables
	SpawnChance float64 // Probability passed to TrySpawnPowerup
}

// TrainStats summarises a training run.
type TrainStats struct {
	Episodes   int
	BestScore  int
	TotalScore int
}

func (s TrainStats) AverageScore() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Episodes)
}

// Train plays cfg.Episodes games on e, stepping the engine directly so no
// frame pacing is involved.
func Train(e *game.Engine, agent *QLearning, cfg TrainConfig) (TrainStats, error) {
	var stats TrainStats

	for episode := 0; episode < cfg.Episodes; episode++ {
		if err := e.Initialize(cfg.Width, cfg.Height, cfg.Obstacles, 1); err != nil {
			return stats, fmt.Errorf("episode %d: %w", episode+1, err)
		}
		if err := e.Start(); err != nil {
			return stats, fmt.Errorf("episode %d: %w", episode+1, err)
		}

		for move := 0; cfg.MaxMoves <= 0 || move < cfg.MaxMoves; move++ {
			e.SetDirection(agent.Act(e.Snapshot()))
			if cfg.SpawnEvery > 0 && move%cfg.SpawnEvery == 0 {
				e.TrySpawnPowerup(cfg.SpawnChance)
			}

			err := e.Step()
			if errors.Is(err, game.ErrSelfCollision) || errors.Is(err, game.ErrObstacleCollision) {
				agent.EndEpisode()
				break
			}
			if err != nil {
				return stats, err
			}
		}
		if e.State() == game.StateRunning {
			agent.AbandonEpisode(e.Snapshot())
		}

		score := e.Score()
		stats.Episodes++
		stats.TotalScore += score
		if score > stats.BestScore {
			stats.BestScore = score
		}

		if (episode+1)%100 == 0 {
			log.Printf("[TRAIN] episode %d: best %d, average %.2f", episode+1, stats.BestScore, stats.AverageScore())
		}
	}
	return stats, nil
}

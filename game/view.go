package game

import (
	"time"

	"powersnake/game/types"
)

// Snapshot is a read-only copy of the board for renderers and agents.
type Snapshot struct {
	EpisodeID string
	Grid      types.Grid
	State     State
	Reason    error
	Snake     []types.Point
	HeadIndex int
	Direction types.Point
	Food      types.Point
	HasFood   bool
	Obstacles []types.Point
	PowerUps  []types.PowerUp
	Score     int
	Moves     int64
}

// HUD carries the values shown next to the board.
type HUD struct {
	Score           int
	HighScore       int
	EffectiveSpeed  float64
	ActivePower     types.PowerKind
	EffectRemaining int
	State           State
}

// Session summarises the finished games played on this engine.
type Session struct {
	GamesPlayed  int
	HighScore    int
	AverageScore float64
	MedianScore  float64
	ScoreHistory []int
}

func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		EpisodeID: e.episodeID,
		Grid:      e.grid,
		State:     e.state,
		Reason:    e.reason,
		Score:     e.stateMgr.GetScore(),
		Moves:     e.moves,
	}
	if e.snake == nil {
		return snap
	}

	snap.Snake = make([]types.Point, len(e.snake.Body))
	copy(snap.Snake, e.snake.Body)
	snap.Direction = e.snake.Direction
	snap.Food, snap.HasFood = e.foodMgr.GetFood()
	snap.Obstacles = e.obstacleMgr.GetObstacles()
	snap.PowerUps = e.powerUpMgr.GetPowerUps()
	return snap
}

func (e *Engine) HUD() HUD {
	effect, _ := e.stateMgr.GetEffect()
	return HUD{
		Score:           e.stateMgr.GetScore(),
		HighScore:       e.stateMgr.GetHighScore(),
		EffectiveSpeed:  e.EffectiveSpeed(),
		ActivePower:     e.stateMgr.ActiveKind(),
		EffectRemaining: effect.Remaining,
		State:           e.state,
	}
}

func (e *Engine) Session() Session {
	stats := e.stateMgr.GetStats()
	return Session{
		GamesPlayed:  len(stats.ScoreHistory),
		HighScore:    stats.HighScore,
		AverageScore: e.stateMgr.GetAverageScore(),
		MedianScore:  e.stateMgr.GetMedianScore(),
		ScoreHistory: stats.ScoreHistory,
	}
}

// EffectiveSpeed is base speed times the active multiplier, in moves per second.
func (e *Engine) EffectiveSpeed() float64 {
	return e.opts.BaseSpeed * e.stateMgr.GetMultiplier()
}

func (e *Engine) State() State {
	return e.state
}

// GameOverReason is ErrSelfCollision or ErrObstacleCollision once the game
// is over, nil before.
func (e *Engine) GameOverReason() error {
	return e.reason
}

func (e *Engine) Score() int {
	return e.stateMgr.GetScore()
}

func (e *Engine) ActivePower() types.PowerKind {
	return e.stateMgr.ActiveKind()
}

func (e *Engine) EpisodeID() string {
	return e.episodeID
}

func (e *Engine) Grid() types.Grid {
	return e.grid
}

func (e *Engine) Moves() int64 {
	return e.moves
}

// Elapsed is the wall time since the board was initialized.
func (e *Engine) Elapsed() time.Duration {
	return time.Since(e.startTime)
}

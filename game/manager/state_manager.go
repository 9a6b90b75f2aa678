package manager

import (
	"sort"

	"powersnake/game/types"
)

// GameStats summarises the finished games of this session. Nothing is
// written to disk.
type GameStats struct {
	HighScore    int
	ScoreHistory []int
}

// StateManager holds score, speed multiplier and the active effect slot of the
// current episode, plus the session score history across episodes.
type StateManager struct {
	score        int
	multiplier   float64
	effect       *types.Effect
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		multiplier:   1,
		scoreHistory: make([]int, 0),
	}
}

// Reset starts a new episode. Session history is kept.
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.multiplier = 1
	sm.effect = nil
}

func (sm *StateManager) AddScore(points int) {
	if points <= 0 {
		return
	}
	sm.score += points
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) SetMultiplier(m float64) {
	sm.multiplier = m
}

func (sm *StateManager) GetMultiplier() float64 {
	return sm.multiplier
}

// StartEffect fills the effect slot, replacing whatever was there. The old
// effect's multiplier does not survive the replacement.
func (sm *StateManager) StartEffect(kind types.PowerKind, duration int) {
	sm.multiplier = 1
	sm.effect = &types.Effect{Kind: kind, Remaining: duration}
}

// TickEffect counts the active effect down by one move. It reports true when
// the effect ran out on this call.
func (sm *StateManager) TickEffect() bool {
	if sm.effect == nil {
		return false
	}
	sm.effect.Remaining--
	if sm.effect.Remaining <= 0 {
		sm.ClearEffect()
		return true
	}
	return false
}

func (sm *StateManager) ClearEffect() {
	sm.effect = nil
	sm.multiplier = 1
}

// GetEffect returns a copy of the active effect, if any.
func (sm *StateManager) GetEffect() (types.Effect, bool) {
	if sm.effect == nil {
		return types.Effect{}, false
	}
	return *sm.effect, true
}

// ActiveKind returns the kind in the effect slot or PowerNone.
func (sm *StateManager) ActiveKind() types.PowerKind {
	if sm.effect == nil {
		return types.PowerNone
	}
	return sm.effect.Kind
}

func (sm *StateManager) AddToHistory(score int) {
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// GetStats returns the session summary.
func (sm *StateManager) GetStats() GameStats {
	return GameStats{
		HighScore:    sm.highScore,
		ScoreHistory: sm.GetScoreHistory(),
	}
}

// GetAverageScore averages the finished games of the session.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sm.scoreHistory {
		sum += s
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

// GetMedianScore is the median of the finished games, 0 when there are none.
func (sm *StateManager) GetMedianScore() float64 {
	n := len(sm.scoreHistory)
	if n == 0 {
		return 0
	}

	scores := sm.GetScoreHistory()
	sort.Ints(scores)
	if n%2 == 0 {
		return float64(scores[n/2-1]+scores[n/2]) / 2
	}
	return float64(scores[n/2])
}

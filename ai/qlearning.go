package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"powersnake/game"
	"powersnake/game/types"

	"golang.org/x/exp/rand"
)

// Rewards
const (
	RewardFood    = 1.0
	RewardCloser  = 0.5
	RewardFarther = -0.3
	RewardDeath   = -1.0
)

type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// Vector returns the direction the action steers to.
func (a Action) Vector() types.Point {
	return types.Directions[a]
}

// ActionFor maps a direction vector back to its action. Unknown vectors map to Right.
func ActionFor(dir types.Point) Action {
	for i, d := range types.Directions {
		if d == dir {
			return Action(i)
		}
	}
	return Right
}

// Opposite returns the reverse action.
func (a Action) Opposite() Action {
	return (a + 2) % 4
}

type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y)
	DangerDirs      [4]bool // Danger in each direction (up, right, down, left)
	Heading         Action
}

func (s State) key() string {
	d := 0
	for i, danger := range s.DangerDirs {
		if danger {
			d |= 1 << i
		}
	}
	return fmt.Sprintf("%d,%d|%x|%d", s.RelativeFoodDir[0], s.RelativeFoodDir[1], d, s.Heading)
}

type QTable map[string][4]float64

type transition struct {
	state    State
	action   Action
	distance int
	score    int
}

// QLearning drives the snake as an input source: it reads snapshots and
// emits direction intents, learning online from each move.
type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng  *rand.Rand
	last *transition
}

func NewQLearning(rng *rand.Rand, epsilon float64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      epsilon,
		rng:          rng,
	}
}

// Act learns from the move that led to snap and returns the next direction.
func (q *QLearning) Act(snap game.Snapshot) types.Point {
	state := Observe(snap)
	if q.last != nil {
		q.learn(q.reward(snap), state, false)
	}

	action := q.GetAction(state)
	q.last = &transition{
		state:    state,
		action:   action,
		distance: foodDistance(snap),
		score:    snap.Score,
	}
	return action.Vector()
}

// EndEpisode applies the terminal penalty of a lost game.
func (q *QLearning) EndEpisode() {
	if q.last != nil {
		q.learn(RewardDeath, State{}, true)
	}
	q.last = nil
	q.GamesPlayed++
}

// AbandonEpisode closes a game that ended without a collision, learning from
// the last move without the death penalty.
func (q *QLearning) AbandonEpisode(snap game.Snapshot) {
	if q.last != nil {
		q.learn(q.reward(snap), Observe(snap), false)
	}
	q.last = nil
	q.GamesPlayed++
}

// GetAction picks epsilon-greedily among the actions that do not reverse
// the current heading.
func (q *QLearning) GetAction(state State) Action {
	allowed := make([]Action, 0, 3)
	for a := Up; a <= Left; a++ {
		if a != state.Heading.Opposite() {
			allowed = append(allowed, a)
		}
	}

	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return allowed[q.rng.Intn(len(allowed))]
	}

	// Exploitation: best known action
	values := q.QTable[state.key()]
	best := allowed[0]
	bestValue := math.Inf(-1)
	for _, a := range allowed {
		v := values[a]
		if state.DangerDirs[a] {
			v += RewardDeath
		}
		if v > bestValue {
			bestValue = v
			best = a
		}
	}
	return best
}

func (q *QLearning) reward(snap game.Snapshot) float64 {
	if snap.Score > q.last.score {
		return RewardFood
	}
	dist := foodDistance(snap)
	switch {
	case dist < 0 || q.last.distance < 0:
		return 0
	case dist < q.last.distance:
		return RewardCloser
	case dist > q.last.distance:
		return RewardFarther
	}
	return 0
}

func (q *QLearning) learn(reward float64, next State, terminal bool) {
	stateKey := q.last.state.key()
	values := q.QTable[stateKey]

	maxNextQ := 0.0
	if !terminal {
		nextValues := q.QTable[next.key()]
		maxNextQ = math.Inf(-1)
		for a := Up; a <= Left; a++ {
			if a == next.Heading.Opposite() {
				continue
			}
			maxNextQ = math.Max(maxNextQ, nextValues[a])
		}
	}

	// Q-learning update formula
	currentQ := values[q.last.action]
	values[q.last.action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)
	q.QTable[stateKey] = values
	q.TotalReward += reward
}

// SaveQTable writes the Q-table as JSON.
func (q *QLearning) SaveQTable(filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create q-table directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(q.QTable, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal q-table: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadQTable replaces the Q-table with the one stored in filename.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	table := make(QTable)
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("decode q-table %s: %w", filename, err)
	}
	q.QTable = table
	return nil
}

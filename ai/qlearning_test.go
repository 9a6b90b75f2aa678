package ai

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"powersnake/game"
	"powersnake/game/types"

	"golang.org/x/exp/rand"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func snapshot() game.Snapshot {
	return game.Snapshot{
		Grid:      types.Grid{Width: 10, Height: 10},
		Snake:     []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}},
		Direction: types.Right,
		Food:      types.Point{X: 5, Y: 2},
		HasFood:   true,
		Obstacles: []types.Point{{X: 6, Y: 5}},
	}
}

func TestObserve(t *testing.T) {
	s := Observe(snapshot())

	if s.RelativeFoodDir != [2]int{0, -1} {
		t.Errorf("expected food straight up, got %v", s.RelativeFoodDir)
	}
	want := [4]bool{false, true, false, true} // obstacle right, body left
	if s.DangerDirs != want {
		t.Errorf("expected dangers %v, got %v", want, s.DangerDirs)
	}
	if s.Heading != Right {
		t.Errorf("expected heading Right, got %v", s.Heading)
	}
}

func TestObserveWrapsFoodDirection(t *testing.T) {
	snap := snapshot()
	snap.Food = types.Point{X: 0, Y: 5}
	snap.Snake = []types.Point{{X: 9, Y: 5}}

	if s := Observe(snap); s.RelativeFoodDir != [2]int{1, 0} {
		t.Errorf("food across the right edge should read as right, got %v", s.RelativeFoodDir)
	}
}

func TestManhattanDistanceWraps(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 8}
	tests := []struct {
		a, b types.Point
		want int
	}{
		{types.Point{X: 0, Y: 0}, types.Point{X: 9, Y: 0}, 1},
		{types.Point{X: 2, Y: 1}, types.Point{X: 4, Y: 3}, 4},
		{types.Point{X: 0, Y: 0}, types.Point{X: 0, Y: 7}, 1},
		{types.Point{X: 0, Y: 0}, types.Point{X: 5, Y: 4}, 9},
	}
	for _, tt := range tests {
		if got := manhattanDistance(tt.a, tt.b, grid); got != tt.want {
			t.Errorf("manhattanDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGetActionNeverReverses(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(1)), 1.0)
	state := State{Heading: Left}

	for i := 0; i < 200; i++ {
		if a := q.GetAction(state); a == Right {
			t.Fatal("agent chose to reverse")
		}
	}
}

func TestGetActionAvoidsDanger(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(1)), 0)
	state := State{Heading: Right, DangerDirs: [4]bool{true, true, false, false}}

	if a := q.GetAction(state); a != Down {
		t.Errorf("expected the only safe move Down, got %v", a)
	}
}

func TestActLearnsFoodReward(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(1)), 0)
	snap := snapshot()

	q.Act(snap)
	first := q.last.state.key()
	action := q.last.action

	snap.Score = 10
	q.Act(snap)
	if got := q.QTable[first][action]; got <= 0 {
		t.Errorf("expected a positive value after eating, got %v", got)
	}

	q.EndEpisode()
	if q.GamesPlayed != 1 || q.last != nil {
		t.Errorf("EndEpisode did not close the episode: %+v", q)
	}
}

func TestSaveLoadQTable(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(1)), 0)
	q.QTable["0,1|3|2"] = [4]float64{0.5, -1, 0, 2}

	path := filepath.Join(t.TempDir(), "agent", "qtable.json")
	if err := q.SaveQTable(path); err != nil {
		t.Fatalf("SaveQTable failed: %v", err)
	}

	loaded := NewQLearning(rand.New(rand.NewSource(2)), 0)
	if err := loaded.LoadQTable(path); err != nil {
		t.Fatalf("LoadQTable failed: %v", err)
	}
	if loaded.QTable["0,1|3|2"] != q.QTable["0,1|3|2"] {
		t.Errorf("round trip mismatch: %v", loaded.QTable)
	}
}

func TestTrain(t *testing.T) {
	e := game.NewEngine(game.Options{Seed: 5, PowerSpawnChance: 0.35})
	agent := NewQLearning(rand.New(rand.NewSource(5)), 0.1)

	stats, err := Train(e, agent, TrainConfig{
		Episodes:    20,
		MaxMoves:    300,
		Width:       12,
		Height:      12,
		Obstacles:   4,
		SpawnEvery:  25,
		SpawnChance: 0.6,
	})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if stats.Episodes != 20 || agent.GamesPlayed != 20 {
		t.Errorf("expected 20 episodes, got stats %d agent %d", stats.Episodes, agent.GamesPlayed)
	}
	if stats.BestScore < 0 || stats.AverageScore() > float64(stats.BestScore) {
		t.Errorf("inconsistent stats %+v", stats)
	}
	if len(agent.QTable) == 0 {
		t.Error("expected the agent to learn something")
	}
}

func TestAbandonEpisodeSkipsDeathPenalty(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(3)), 0)
	snap := snapshot()

	q.Act(snap)
	q.AbandonEpisode(snap)

	if q.GamesPlayed != 1 {
		t.Errorf("expected 1 game played, got %d", q.GamesPlayed)
	}
	if q.last != nil {
		t.Error("expected pending transition to be cleared")
	}
	if q.TotalReward <= RewardDeath {
		t.Errorf("expected no death penalty, total reward %v", q.TotalReward)
	}
}

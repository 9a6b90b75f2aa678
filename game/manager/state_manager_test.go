package manager

import (
	"testing"

	"powersnake/game/types"
)

func TestEffectLifecycle(t *testing.T) {
	sm := NewStateManager()
	sm.StartEffect(types.PowerSpeed, 3)
	sm.SetMultiplier(types.SpeedMultiplier)

	if sm.ActiveKind() != types.PowerSpeed {
		t.Fatalf("expected speed effect, got %v", sm.ActiveKind())
	}
	if sm.TickEffect() || sm.TickEffect() {
		t.Fatal("effect expired early")
	}
	if !sm.TickEffect() {
		t.Fatal("effect should expire on the third move")
	}
	if _, ok := sm.GetEffect(); ok {
		t.Error("effect slot not cleared")
	}
	if sm.GetMultiplier() != 1 {
		t.Errorf("expected multiplier reset to 1, got %v", sm.GetMultiplier())
	}
}

func TestStartEffectReplacesMultiplier(t *testing.T) {
	sm := NewStateManager()
	sm.StartEffect(types.PowerSpeed, 180)
	sm.SetMultiplier(types.SpeedMultiplier)

	sm.StartEffect(types.PowerGrowth, 180)
	if sm.GetMultiplier() != 1 {
		t.Errorf("expected replaced effect to drop the multiplier, got %v", sm.GetMultiplier())
	}
	if sm.ActiveKind() != types.PowerGrowth {
		t.Errorf("expected growth in the slot, got %v", sm.ActiveKind())
	}
}

func TestSessionHistory(t *testing.T) {
	sm := NewStateManager()
	sm.AddScore(30)
	sm.AddToHistory(sm.GetScore())
	sm.Reset()
	sm.AddScore(10)
	sm.AddScore(-5)
	sm.AddToHistory(sm.GetScore())

	if sm.GetScore() != 10 {
		t.Errorf("negative points must be ignored, score = %d", sm.GetScore())
	}
	if sm.GetHighScore() != 30 {
		t.Errorf("expected high score 30, got %d", sm.GetHighScore())
	}
	if avg := sm.GetAverageScore(); avg != 20 {
		t.Errorf("expected average 20, got %v", avg)
	}
	if stats := sm.GetStats(); len(stats.ScoreHistory) != 2 {
		t.Errorf("expected 2 games in history, got %d", len(stats.ScoreHistory))
	}
}

func TestMedianScore(t *testing.T) {
	sm := NewStateManager()
	if sm.GetMedianScore() != 0 {
		t.Errorf("expected 0 median with no games")
	}

	for _, s := range []int{40, 10, 30} {
		sm.AddToHistory(s)
	}
	if m := sm.GetMedianScore(); m != 30 {
		t.Errorf("expected median 30, got %v", m)
	}

	sm.AddToHistory(20)
	if m := sm.GetMedianScore(); m != 25 {
		t.Errorf("expected median 25, got %v", m)
	}
	if h := sm.GetScoreHistory(); h[0] != 40 {
		t.Errorf("median must not reorder history, got %v", h)
	}
}

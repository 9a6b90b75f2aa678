package manager

import (
	"testing"

	"powersnake/game/types"
)

func TestSpawnAvoidsBlockedAndExisting(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 3, Height: 1})
	pm := NewPowerUpManager(cm, types.PowerLifetime)
	blocked := func(p types.Point) bool { return p.X == 0 }
	rng := newRNG()

	first, err := pm.Spawn(rng, blocked)
	if err != nil {
		t.Fatalf("first spawn failed: %v", err)
	}
	second, err := pm.Spawn(rng, blocked)
	if err != nil {
		t.Fatalf("second spawn failed: %v", err)
	}
	if first.Pos == second.Pos {
		t.Errorf("power-ups share cell %v", first.Pos)
	}
	if first.Pos.X == 0 || second.Pos.X == 0 {
		t.Error("power-up spawned on a blocked cell")
	}
	if first.TTL != types.PowerLifetime {
		t.Errorf("expected TTL %d, got %d", types.PowerLifetime, first.TTL)
	}
	if first.Kind == types.PowerNone {
		t.Error("spawned power-up has no kind")
	}

	if _, err := pm.Spawn(rng, blocked); err == nil {
		t.Error("expected spawn on a full grid to fail")
	}
	if pm.Count() != 2 {
		t.Errorf("expected 2 power-ups, got %d", pm.Count())
	}
}

func TestConsumeFirstMatch(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5})
	pm := NewPowerUpManager(cm, 10)
	pm.Add(types.PowerUp{Pos: types.Point{X: 1, Y: 1}, Kind: types.PowerSpeed, TTL: 10})
	pm.Add(types.PowerUp{Pos: types.Point{X: 2, Y: 2}, Kind: types.PowerShrink, TTL: 10})

	p, ok := pm.Consume(types.Point{X: 2, Y: 2})
	if !ok || p.Kind != types.PowerShrink {
		t.Fatalf("expected shrink power-up, got %v %v", p, ok)
	}
	if pm.Contains(types.Point{X: 2, Y: 2}) {
		t.Error("consumed power-up still on the board")
	}
	if _, ok := pm.Consume(types.Point{X: 4, Y: 4}); ok {
		t.Error("consume on an empty cell must fail")
	}
}

func TestAgeExpires(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5})
	pm := NewPowerUpManager(cm, 10)
	pm.Add(types.PowerUp{Pos: types.Point{X: 0, Y: 0}, Kind: types.PowerGrowth, TTL: 1})
	pm.Add(types.PowerUp{Pos: types.Point{X: 1, Y: 0}, Kind: types.PowerGrowth, TTL: 3})

	if expired := pm.Age(); expired != 1 {
		t.Errorf("expected 1 expired, got %d", expired)
	}
	left := pm.GetPowerUps()
	if len(left) != 1 || left[0].TTL != 2 {
		t.Fatalf("unexpected survivors: %+v", left)
	}
	pm.Age()
	pm.Age()
	if pm.Count() != 0 {
		t.Errorf("expected all power-ups expired, got %d", pm.Count())
	}
}

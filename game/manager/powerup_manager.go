package manager

import (
	"powersnake/game/types"

	"golang.org/x/exp/rand"
)

// PowerUpManager handles power-ups lying on the board: spawning, pickup and
// expiry. Slice order is spawn order.
type PowerUpManager struct {
	collisionMgr *CollisionManager
	lifetime     int
	powerUps     []types.PowerUp
}

func NewPowerUpManager(collisionMgr *CollisionManager, lifetime int) *PowerUpManager {
	return &PowerUpManager{
		collisionMgr: collisionMgr,
		lifetime:     lifetime,
		powerUps:     make([]types.PowerUp, 0),
	}
}

// Spawn places a power-up of random kind on a free cell. Cells already
// holding a power-up are always rejected on top of blocked.
func (pm *PowerUpManager) Spawn(rng *rand.Rand, blocked func(types.Point) bool) (types.PowerUp, error) {
	pos, err := pm.collisionMgr.RandomFreeCell(rng, func(p types.Point) bool {
		return pm.Contains(p) || blocked(p)
	})
	if err != nil {
		return types.PowerUp{}, err
	}

	p := types.PowerUp{
		Pos:  pos,
		Kind: types.PowerKinds[rng.Intn(len(types.PowerKinds))],
		TTL:  pm.lifetime,
	}
	pm.powerUps = append(pm.powerUps, p)
	return p, nil
}

// Add puts p on the board unless the cell is taken.
func (pm *PowerUpManager) Add(p types.PowerUp) bool {
	if pm.Contains(p.Pos) {
		return false
	}
	pm.powerUps = append(pm.powerUps, p)
	return true
}

// Consume removes and returns the first power-up on pos.
func (pm *PowerUpManager) Consume(pos types.Point) (types.PowerUp, bool) {
	for i, p := range pm.powerUps {
		if p.Pos == pos {
			pm.powerUps = append(pm.powerUps[:i], pm.powerUps[i+1:]...)
			return p, true
		}
	}
	return types.PowerUp{}, false
}

// Age decrements every lifetime and drops the power-ups that reach zero.
// It returns how many expired.
func (pm *PowerUpManager) Age() int {
	kept := pm.powerUps[:0]
	expired := 0
	for _, p := range pm.powerUps {
		p.TTL--
		if p.TTL > 0 {
			kept = append(kept, p)
		} else {
			expired++
		}
	}
	pm.powerUps = kept
	return expired
}

func (pm *PowerUpManager) Contains(pos types.Point) bool {
	for _, p := range pm.powerUps {
		if p.Pos == pos {
			return true
		}
	}
	return false
}

func (pm *PowerUpManager) Count() int {
	return len(pm.powerUps)
}

func (pm *PowerUpManager) GetPowerUps() []types.PowerUp {
	out := make([]types.PowerUp, len(pm.powerUps))
	copy(out, pm.powerUps)
	return out
}

func (pm *PowerUpManager) Reset() {
	pm.powerUps = pm.powerUps[:0]
}

package manager

import (
	"fmt"

	"powersnake/game/entity"
	"powersnake/game/types"

	"golang.org/x/exp/rand"
)

// ObstacleManager owns the static obstacle layout of one episode.
type ObstacleManager struct {
	collisionMgr *CollisionManager
	cells        map[types.Point]struct{}
	order        []types.Point
}

func NewObstacleManager(collisionMgr *CollisionManager) *ObstacleManager {
	return &ObstacleManager{
		collisionMgr: collisionMgr,
		cells:        make(map[types.Point]struct{}),
		order:        make([]types.Point, 0),
	}
}

// Generate replaces the layout with count unique obstacles off the snake.
// On failure the layout is left empty.
func (om *ObstacleManager) Generate(rng *rand.Rand, count int, snake *entity.Snake) error {
	om.Reset()

	for i := 0; i < count; i++ {
		pos, err := om.collisionMgr.RandomFreeCell(rng, func(p types.Point) bool {
			return snake.Occupies(p) || om.Contains(p)
		})
		if err != nil {
			om.Reset()
			return fmt.Errorf("placing obstacle %d of %d: %w", i+1, count, err)
		}
		om.Add(pos)
	}
	return nil
}

func (om *ObstacleManager) Add(pos types.Point) {
	if om.Contains(pos) {
		return
	}
	om.cells[pos] = struct{}{}
	om.order = append(om.order, pos)
}

func (om *ObstacleManager) Contains(pos types.Point) bool {
	_, ok := om.cells[pos]
	return ok
}

func (om *ObstacleManager) Count() int {
	return len(om.order)
}

// GetObstacles returns a copy of the layout in placement order.
func (om *ObstacleManager) GetObstacles() []types.Point {
	out := make([]types.Point, len(om.order))
	copy(out, om.order)
	return out
}

func (om *ObstacleManager) Reset() {
	om.cells = make(map[types.Point]struct{})
	om.order = om.order[:0]
}

package manager

import (
	"errors"

	"powersnake/game/entity"
	"powersnake/game/types"

	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when no cell satisfies the placement constraints.
var ErrNoFreeCell = errors.New("no free cell")

// MinPlacementAttempts is the floor on rejection-sampling draws before the
// placement falls back to scanning the grid.
const MinPlacementAttempts = 100

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	ObstacleCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// NextHead returns the cell the head enters when moving along dir.
// There are no walls: the grid wraps on both axes.
func (cm *CollisionManager) NextHead(head, dir types.Point) types.Point {
	return cm.grid.Wrap(head.Add(dir))
}

// CheckCollision tests the snake body first, then the obstacles.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, obstacles *ObstacleManager) CollisionType {
	if snake.Occupies(pos) {
		return SelfCollision
	}
	if obstacles != nil && obstacles.Contains(pos) {
		return ObstacleCollision
	}
	return NoCollision
}

// RandomFreeCell draws random cells until one is not blocked. After a bounded
// number of draws it scans the grid and picks uniformly among the free cells,
// so a nearly full grid still terminates and a full one reports ErrNoFreeCell.
func (cm *CollisionManager) RandomFreeCell(rng *rand.Rand, blocked func(types.Point) bool) (types.Point, error) {
	attempts := cm.grid.Cells() * 2
	if attempts < MinPlacementAttempts {
		attempts = MinPlacementAttempts
	}

	for i := 0; i < attempts; i++ {
		pos := types.Point{
			X: rng.Intn(cm.grid.Width),
			Y: rng.Intn(cm.grid.Height),
		}
		if !blocked(pos) {
			return pos, nil
		}
	}

	free := make([]types.Point, 0)
	for y := 0; y < cm.grid.Height; y++ {
		for x := 0; x < cm.grid.Width; x++ {
			pos := types.Point{X: x, Y: y}
			if !blocked(pos) {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}

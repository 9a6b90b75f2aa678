package manager

import (
	"powersnake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager tracks the single food cell. At most one food is alive.
type FoodManager struct {
	collisionMgr *CollisionManager
	food         types.Point
	alive        bool
}

func NewFoodManager(collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		collisionMgr: collisionMgr,
	}
}

// PlaceFood moves the food to a random cell that is not blocked. If no cell
// is free the food is removed and ErrNoFreeCell is returned.
func (fm *FoodManager) PlaceFood(rng *rand.Rand, blocked func(types.Point) bool) error {
	pos, err := fm.collisionMgr.RandomFreeCell(rng, blocked)
	if err != nil {
		fm.alive = false
		return err
	}
	fm.SetFood(pos)
	return nil
}

func (fm *FoodManager) SetFood(pos types.Point) {
	fm.food = pos
	fm.alive = true
}

func (fm *FoodManager) GetFood() (types.Point, bool) {
	return fm.food, fm.alive
}

func (fm *FoodManager) IsFood(pos types.Point) bool {
	return fm.alive && fm.food == pos
}

func (fm *FoodManager) RemoveFood() {
	fm.alive = false
}

package game

import "errors"

var (
	// ErrSelfCollision ends the game when the head enters the body.
	ErrSelfCollision = errors.New("snake ran into itself")
	// ErrObstacleCollision ends the game when the head enters an obstacle.
	ErrObstacleCollision = errors.New("snake hit an obstacle")
	// ErrLayoutFailure means obstacles or food could not be placed without overlap.
	ErrLayoutFailure = errors.New("board layout failed")
	// ErrInvalidState is returned by lifecycle calls that the current state forbids.
	ErrInvalidState = errors.New("invalid game state")
	// ErrInvalidConfig rejects non-positive grid sizes or tick rates.
	ErrInvalidConfig = errors.New("invalid game config")
)

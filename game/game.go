package game

import (
	"fmt"
	"log"
	"math"
	"time"

	"powersnake/game/entity"
	"powersnake/game/manager"
	"powersnake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Engine owns the whole simulation of one board. It has no timers of its own:
// the caller drives it with Tick at a fixed frame rate and the engine moves
// the snake only when enough frames have passed for the current speed.
// An Engine is not safe for concurrent use.
type Engine struct {
	opts     Options
	rng      *rand.Rand
	grid     types.Grid
	tickRate int

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	obstacleMgr  *manager.ObstacleManager
	foodMgr      *manager.FoodManager
	powerUpMgr   *manager.PowerUpManager
	stateMgr     *manager.StateManager

	state     State
	reason    error
	laidOut   bool
	frames    int64
	sinceMove int
	moves     int64
	episodeID string
	startTime time.Time
}

func NewEngine(opts Options) *Engine {
	opts = opts.withDefaults()
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Engine{
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
		stateMgr: manager.NewStateManager(),
		state:    StateReady,
	}
}

// Initialize lays out a fresh board and leaves the engine Ready. tickRate is
// the number of times per second the caller will invoke Tick.
func (e *Engine) Initialize(width, height, obstacleCount, tickRate int) error {
	if width <= 0 || height <= 0 || tickRate <= 0 || obstacleCount < 0 {
		return fmt.Errorf("%w: %dx%d grid, %d obstacles, %d ticks/s",
			ErrInvalidConfig, width, height, obstacleCount, tickRate)
	}

	e.grid = types.Grid{Width: width, Height: height}
	e.tickRate = tickRate
	e.collisionMgr = manager.NewCollisionManager(e.grid)
	e.obstacleMgr = manager.NewObstacleManager(e.collisionMgr)
	e.foodMgr = manager.NewFoodManager(e.collisionMgr)
	e.powerUpMgr = manager.NewPowerUpManager(e.collisionMgr, e.opts.PowerLifetime)
	e.snake = entity.NewSnake(e.grid.Center())
	e.stateMgr.Reset()

	e.state = StateReady
	e.reason = nil
	e.laidOut = false
	e.frames = 0
	e.sinceMove = 0
	e.moves = 0
	e.episodeID = uuid.New().String()
	e.startTime = time.Now()

	if err := e.obstacleMgr.Generate(e.rng, obstacleCount, e.snake); err != nil {
		log.Printf("[ENGINE] %s: obstacle layout failed: %v", e.shortID(), err)
		return fmt.Errorf("%w: %w", ErrLayoutFailure, err)
	}
	if err := e.foodMgr.PlaceFood(e.rng, e.foodBlocked); err != nil {
		log.Printf("[ENGINE] %s: food placement failed: %v", e.shortID(), err)
		return fmt.Errorf("%w: placing food: %w", ErrLayoutFailure, err)
	}

	e.laidOut = true
	log.Printf("[ENGINE] %s: new board %dx%d, %d obstacles, %d ticks/s",
		e.shortID(), width, height, obstacleCount, tickRate)
	return nil
}

// Start moves a laid out board from Ready to Running.
func (e *Engine) Start() error {
	switch {
	case e.state == StateRunning:
		return nil
	case e.state != StateReady || !e.laidOut:
		return fmt.Errorf("%w: cannot start from %s", ErrInvalidState, e.state)
	}
	e.state = StateRunning
	log.Printf("[ENGINE] %s: running", e.shortID())
	return nil
}

// Pause stops movement. Pausing twice stays Paused.
func (e *Engine) Pause() error {
	switch e.state {
	case StatePaused:
		return nil
	case StateRunning:
		e.state = StatePaused
		return nil
	default:
		return fmt.Errorf("%w: cannot pause from %s", ErrInvalidState, e.state)
	}
}

// Resume continues a paused game. GameOver is terminal.
func (e *Engine) Resume() error {
	switch e.state {
	case StateRunning:
		return nil
	case StatePaused:
		e.state = StateRunning
		return nil
	default:
		return fmt.Errorf("%w: cannot resume from %s", ErrInvalidState, e.state)
	}
}

// SetDirection buffers a turn for the next move. It reports whether the
// intent was accepted; reversals and same-axis changes are ignored.
func (e *Engine) SetDirection(dir types.Point) bool {
	if e.snake == nil || e.state == StateGameOver {
		return false
	}
	return e.snake.SetDirection(dir)
}

// FramesPerMove is how many Tick calls make up one move at the current speed.
func (e *Engine) FramesPerMove() int {
	n := int(math.Ceil(float64(e.tickRate) / e.EffectiveSpeed()))
	if n < 1 {
		return 1
	}
	return n
}

// Tick is called once per external frame. It is a no-op unless Running and
// reports whether the snake moved. A collision error means the game is over.
func (e *Engine) Tick() (bool, error) {
	if e.state != StateRunning {
		return false, nil
	}

	e.frames++
	e.sinceMove++
	if e.sinceMove < e.FramesPerMove() {
		return false, nil
	}
	e.sinceMove = 0

	if err := e.Step(); err != nil {
		return false, err
	}
	return true, nil
}

// Step performs exactly one move regardless of the frame cadence.
func (e *Engine) Step() error {
	if e.state != StateRunning {
		return fmt.Errorf("%w: cannot step from %s", ErrInvalidState, e.state)
	}

	newHead := e.collisionMgr.NextHead(e.snake.GetHead(), e.snake.Pending())
	switch e.collisionMgr.CheckCollision(newHead, e.snake, e.obstacleMgr) {
	case manager.SelfCollision:
		return e.gameOver(ErrSelfCollision)
	case manager.ObstacleCollision:
		return e.gameOver(ErrObstacleCollision)
	}

	e.snake.Turn()
	e.snake.Move(newHead)
	e.moves++

	if e.foodMgr.IsFood(newHead) {
		e.stateMgr.AddScore(e.opts.FoodScore)
		if err := e.foodMgr.PlaceFood(e.rng, e.foodBlocked); err != nil {
			log.Printf("[ENGINE] %s: board full, no food: %v", e.shortID(), err)
		}
		if e.rng.Float64() < e.opts.PowerSpawnChance {
			e.spawnPowerUp()
		}
	} else {
		e.snake.RemoveTail()
		if _, ok := e.foodMgr.GetFood(); !ok {
			// A cell may have freed up since the board was last full.
			_ = e.foodMgr.PlaceFood(e.rng, e.foodBlocked)
		}
	}

	if p, ok := e.powerUpMgr.Consume(newHead); ok {
		e.applyPower(p.Kind)
	}
	e.powerUpMgr.Age()
	e.stateMgr.TickEffect()
	return nil
}

// TrySpawnPowerup is driven by an external timer. With the given probability
// it places one power-up of random kind on a free cell. Only a running game
// gets new power-ups.
func (e *Engine) TrySpawnPowerup(probability float64) bool {
	if e.state != StateRunning {
		return false
	}
	if e.rng.Float64() >= probability {
		return false
	}
	return e.spawnPowerUp()
}

func (e *Engine) spawnPowerUp() bool {
	p, err := e.powerUpMgr.Spawn(e.rng, e.powerUpBlocked)
	if err != nil {
		log.Printf("[ENGINE] %s: no room for a power-up: %v", e.shortID(), err)
		return false
	}
	log.Printf("[ENGINE] %s: %s power-up at (%d,%d)", e.shortID(), p.Kind, p.Pos.X, p.Pos.Y)
	return true
}

func (e *Engine) applyPower(kind types.PowerKind) {
	e.stateMgr.StartEffect(kind, e.opts.PowerDuration)

	switch kind {
	case types.PowerGrowth:
		e.snake.Grow(types.GrowthSegments)
	case types.PowerSpeed:
		e.stateMgr.SetMultiplier(types.SpeedMultiplier)
	case types.PowerShrink:
		e.snake.Truncate(max(types.MinShrinkLength, e.snake.Len()-types.ShrinkSegments))
	case types.PowerScoreBoost:
		e.stateMgr.AddScore(e.opts.ScoreBoostPoints)
	}
}

func (e *Engine) gameOver(reason error) error {
	e.state = StateGameOver
	e.reason = reason
	e.stateMgr.AddToHistory(e.stateMgr.GetScore())
	log.Printf("[ENGINE] %s: game over after %d moves, score %d: %v",
		e.shortID(), e.moves, e.stateMgr.GetScore(), reason)
	return reason
}

func (e *Engine) foodBlocked(p types.Point) bool {
	return e.snake.Occupies(p) || e.obstacleMgr.Contains(p) || e.powerUpMgr.Contains(p)
}

func (e *Engine) powerUpBlocked(p types.Point) bool {
	return e.snake.Occupies(p) || e.obstacleMgr.Contains(p) || e.foodMgr.IsFood(p)
}

func (e *Engine) shortID() string {
	if len(e.episodeID) < 8 {
		return "--------"
	}
	return e.episodeID[:8]
}

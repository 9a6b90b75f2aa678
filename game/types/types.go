package types

// Point is a cell on the grid. It doubles as a direction vector.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Wrap folds a point back onto the grid. The play-field is toroidal.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the starting cell of a new snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cardinal directions
var (
	Up    = Point{X: 0, Y: -1}
	Right = Point{X: 1, Y: 0}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
)

// Directions lists the cardinal directions clockwise from Up.
var Directions = [4]Point{Up, Right, Down, Left}

// IsDirection reports whether d is one of the four unit vectors.
func IsDirection(d Point) bool {
	return d == Up || d == Right || d == Down || d == Left
}

// Opposite returns the reverse of d.
func Opposite(d Point) Point {
	return Point{X: -d.X, Y: -d.Y}
}

// Game constants
const (
	BaseSpeed        = 6    // Moves per second without any effect
	DefaultTickRate  = 60   // External frames per second
	FoodScore        = 10   // Points per food
	ScoreBoostPoints = 50   // Points granted by the scoreBoost power-up
	PowerDuration    = 180  // Moves an active effect lasts
	PowerLifetime    = 200  // Moves an uncollected power-up stays on the board
	PowerSpawnChance = 0.35 // Chance of a power-up each time food is eaten
	SpeedMultiplier  = 2.0
	GrowthSegments   = 3
	ShrinkSegments   = 3
	MinShrinkLength  = 3
	DefaultObstacles = 8
)

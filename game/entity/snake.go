package entity

import (
	"powersnake/game/types"
)

// Snake keeps its body head-first: Body[0] is always the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	pending   types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.Right, // Start moving right
		pending:   types.Right,
	}
}

// Move prepends a new head.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Grow appends n segments stacked on the current tail cell.
func (s *Snake) Grow(n int) {
	tail := s.GetTail()
	for i := 0; i < n; i++ {
		s.Body = append(s.Body, tail)
	}
}

// Truncate keeps the first n segments. It never lengthens the snake.
func (s *Snake) Truncate(n int) {
	if n >= 1 && n < len(s.Body) {
		s.Body = s.Body[:n]
	}
}

// Occupies reports whether any segment sits on pos.
func (s *Snake) Occupies(pos types.Point) bool {
	for _, part := range s.Body {
		if part == pos {
			return true
		}
	}
	return false
}

// SetDirection buffers dir for the next move. Reversals and same-axis
// changes are rejected against the direction of the last move, so two quick
// turns between moves cannot fold the snake onto itself.
func (s *Snake) SetDirection(dir types.Point) bool {
	if !types.IsDirection(dir) {
		return false
	}
	if (dir.X != 0 && s.Direction.X != 0) || (dir.Y != 0 && s.Direction.Y != 0) {
		return false
	}
	s.pending = dir
	return true
}

// Pending returns the direction the next move will use.
func (s *Snake) Pending() types.Point {
	return s.pending
}

// Turn commits the buffered direction and returns it.
func (s *Snake) Turn() types.Point {
	s.Direction = s.pending
	return s.Direction
}

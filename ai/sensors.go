package ai

import (
	"powersnake/game"
	"powersnake/game/types"
)

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

// wrappedDelta returns the shortest signed offset from a to b on a ring of size n.
func wrappedDelta(a, b, n int) int {
	d := b - a
	if d > n/2 {
		d -= n
	} else if d < -n/2 {
		d += n
	}
	return d
}

// manhattanDistance measures the distance between two points taking the
// grid wrapping into account.
func manhattanDistance(p1, p2 types.Point, grid types.Grid) int {
	return abs(wrappedDelta(p1.X, p2.X, grid.Width)) + abs(wrappedDelta(p1.Y, p2.Y, grid.Height))
}

// isDanger reports whether entering p ends the game.
func isDanger(p types.Point, snap game.Snapshot) bool {
	for _, s := range snap.Snake {
		if s == p {
			return true
		}
	}
	for _, o := range snap.Obstacles {
		if o == p {
			return true
		}
	}
	return false
}

// foodDistance is the wrapped distance from the head to the food, or -1
// when there is none.
func foodDistance(snap game.Snapshot) int {
	if !snap.HasFood || len(snap.Snake) == 0 {
		return -1
	}
	return manhattanDistance(snap.Snake[snap.HeadIndex], snap.Food, snap.Grid)
}

// Observe condenses a snapshot into the agent's view of the board.
func Observe(snap game.Snapshot) State {
	var s State
	if len(snap.Snake) == 0 {
		return s
	}
	head := snap.Snake[snap.HeadIndex]

	if snap.HasFood {
		s.RelativeFoodDir = [2]int{
			sign(wrappedDelta(head.X, snap.Food.X, snap.Grid.Width)),
			sign(wrappedDelta(head.Y, snap.Food.Y, snap.Grid.Height)),
		}
	}
	for i, dir := range types.Directions {
		s.DangerDirs[i] = isDanger(snap.Grid.Wrap(head.Add(dir)), snap)
	}
	s.Heading = ActionFor(snap.Direction)
	return s
}

package ui

import (
	"powersnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Command is a non-movement intent read from the keyboard.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandTogglePause
	CommandRestart
	CommandVolumeUp
	CommandVolumeDown
	CommandQuit
)

var directionKeys = []struct {
	key int32
	dir types.Point
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

var commandKeys = []struct {
	key int32
	cmd Command
}{
	{rl.KeyEnter, CommandStart},
	{rl.KeySpace, CommandTogglePause},
	{rl.KeyP, CommandTogglePause},
	{rl.KeyR, CommandRestart},
	{rl.KeyEqual, CommandVolumeUp},
	{rl.KeyKpAdd, CommandVolumeUp},
	{rl.KeyMinus, CommandVolumeDown},
	{rl.KeyKpSubtract, CommandVolumeDown},
	{rl.KeyQ, CommandQuit},
}

// PollDirections returns the direction intents pressed this frame in key order.
func PollDirections() []types.Point {
	var dirs []types.Point
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			dirs = append(dirs, k.dir)
		}
	}
	return dirs
}

// PollCommands returns the commands pressed this frame.
func PollCommands() []Command {
	var cmds []Command
	for _, k := range commandKeys {
		if rl.IsKeyPressed(k.key) {
			cmds = append(cmds, k.cmd)
		}
	}
	return cmds
}

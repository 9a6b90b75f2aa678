package ui

import (
	"fmt"
	"strings"

	"powersnake/game"
	"powersnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 60 // Space below the grid for score and power info
)

var (
	backgroundColor = rl.Color{R: 247, G: 249, B: 251, A: 255}
	obstacleColor   = rl.Color{R: 139, G: 94, B: 60, A: 255}
	foodColor       = rl.Color{R: 255, G: 107, B: 129, A: 255}
	headColor       = rl.Color{R: 31, G: 142, B: 241, A: 255}
	bodyColor       = rl.Color{R: 46, G: 204, B: 113, A: 255}
	gridLineColor   = rl.Color{R: 0, G: 0, B: 0, A: 13}
	textColor       = rl.Color{R: 40, G: 40, B: 40, A: 255}
)

// powerColor returns the cell color of a power-up kind.
func powerColor(kind types.PowerKind) rl.Color {
	switch kind {
	case types.PowerSpeed:
		return rl.Color{R: 255, G: 204, B: 0, A: 255}
	case types.PowerGrowth:
		return rl.Color{R: 106, G: 176, B: 76, A: 255}
	default:
		return rl.Color{R: 108, G: 92, B: 231, A: 255}
	}
}

// Renderer draws engine snapshots. It never mutates the engine.
type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2) - hudHeight

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = min(cellW, cellH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = borderPadding
}

// Draw renders one frame: board first, then the HUD and any overlay.
func (r *Renderer) Draw(snap game.Snapshot, hud game.HUD, volume float32) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	if len(snap.Snake) == 0 {
		r.drawCentered("No board", r.screenHeight/2, 20, textColor)
		rl.EndDrawing()
		return
	}
	r.layout(snap.Grid)

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, backgroundColor)

	for _, o := range snap.Obstacles {
		r.drawCell(o, obstacleColor)
	}

	fontSize := max(r.cellSize/2, 8)
	for _, p := range snap.PowerUps {
		r.drawCell(p.Pos, powerColor(p.Kind))
		rl.DrawText(strings.ToUpper(p.Kind.String()[:1]),
			r.offsetX+int32(p.Pos.X)*r.cellSize+r.cellSize/3,
			r.offsetY+int32(p.Pos.Y)*r.cellSize+r.cellSize/4,
			fontSize, rl.White)
	}

	if snap.HasFood {
		r.drawCell(snap.Food, foodColor)
		inset := r.cellSize * 3 / 10
		rl.DrawRectangle(
			r.offsetX+int32(snap.Food.X)*r.cellSize+inset,
			r.offsetY+int32(snap.Food.Y)*r.cellSize+inset,
			r.cellSize-2*inset, r.cellSize-2*inset, rl.White)
	}

	// Tail first so the head stays on top of stacked growth segments.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := bodyColor
		if i == snap.HeadIndex {
			color = headColor
		}
		r.drawCell(snap.Snake[i], color)
	}

	r.drawHUD(snap, hud, volume)
	r.drawOverlay(snap, hud)
	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
	rl.DrawRectangleLines(x+1, y+1, r.cellSize-2, r.cellSize-2, gridLineColor)
}

func (r *Renderer) drawHUD(snap game.Snapshot, hud game.HUD, volume float32) {
	fontSize := int32(20)
	y := r.offsetY + r.totalGridHeight + borderPadding
	x := r.offsetX
	spacing := int32(170)

	rl.DrawText(fmt.Sprintf("Score: %d", hud.Score), x, y, fontSize, textColor)
	x += spacing
	rl.DrawText(fmt.Sprintf("Speed: %.1f", hud.EffectiveSpeed), x, y, fontSize, textColor)
	x += spacing
	power := hud.ActivePower.String()
	if hud.ActivePower != types.PowerNone {
		power = fmt.Sprintf("%s (%d)", power, hud.EffectRemaining)
	}
	rl.DrawText("Power: "+power, x, y, fontSize, textColor)

	footer := fmt.Sprintf("Best %d  |  Vol %d%%  |  %s", hud.HighScore, int(volume*100+0.5), shortID(snap.EpisodeID))
	rl.DrawText(footer, r.offsetX, y+fontSize+6, fontSize*3/4, rl.Gray)
}

func (r *Renderer) drawOverlay(snap game.Snapshot, hud game.HUD) {
	var msg string
	switch hud.State {
	case game.StateReady:
		msg = "Press Enter to start"
	case game.StatePaused:
		msg = "Paused - Space to resume"
	case game.StateGameOver:
		msg = fmt.Sprintf("Game Over! Score: %d - R to restart", hud.Score)
	default:
		return
	}

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Fade(rl.Black, 0.35))
	r.drawCentered(msg, r.offsetY+r.totalGridHeight/2, 24, rl.White)
	if snap.Reason != nil {
		r.drawCentered(snap.Reason.Error(), r.offsetY+r.totalGridHeight/2+30, 18, rl.White)
	}
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, y, fontSize, color)
}

func shortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}

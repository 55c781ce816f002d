package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/input"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize    = 24
	bigFontSize = 56
	smallFont   = 18
	rowHeight   = 30
	tableX      = 50
	tableY      = 120
)

var (
	bgColor       = rl.NewColor(40, 40, 40, 255)
	snakeColor    = rl.NewColor(0, 255, 0, 255)
	foodColor     = rl.NewColor(255, 0, 0, 255)
	obstacleColor = rl.NewColor(150, 150, 150, 255)
	buttonColor   = rl.NewColor(70, 130, 180, 255)
	hoverColor    = rl.NewColor(100, 160, 210, 255)
	inputActive   = rl.NewColor(230, 230, 230, 255)
	inputIdle     = rl.NewColor(200, 200, 200, 255)
	rowEven       = rl.NewColor(60, 60, 60, 255)
	rowOdd        = rl.NewColor(80, 80, 80, 255)
	overlayColor  = rl.NewColor(0, 0, 0, 128)
)

var (
	columnHeaders = []string{"Mode", "Start Time", "Duration", "Difficulty", "Speed", "Score"}
	columnWidths  = []int32{100, 180, 80, 100, 60, 60}
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(screenWidth, screenHeight int) *Renderer {
	return &Renderer{screenWidth: int32(screenWidth), screenHeight: int32(screenHeight)}
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(bgColor)

	switch g.Phase() {
	case game.PhaseMenu:
		r.drawMenu()
	case game.PhaseSetup:
		r.drawSetup(g.Setup())
	case game.PhaseHistoryView:
		r.drawHistory(g)
	case game.PhaseCountdown:
		r.drawCountdown(g.CountdownRemaining())
	case game.PhasePlaying:
		r.drawGame(g)
	case game.PhasePaused:
		r.drawGame(g)
		r.drawPause()
	case game.PhaseGameOver:
		r.drawGame(g)
		r.drawGameOver(g)
	}

	rl.EndDrawing()
}

func (r *Renderer) centerText(text string, y, size int32, color rl.Color) {
	width := rl.MeasureText(text, size)
	rl.DrawText(text, r.screenWidth/2-width/2, y, size, color)
}

func (r *Renderer) drawButtons(phase game.Phase) {
	mouse := rl.GetMousePosition()
	for _, b := range input.Buttons(phase, int(r.screenWidth)) {
		if b.Label == "" {
			continue
		}
		rec := rl.NewRectangle(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H)
		color := buttonColor
		if b.Rect.Contains(mouse.X, mouse.Y) {
			color = hoverColor
		}
		rl.DrawRectangleRounded(rec, 0.2, 8, color)
		width := rl.MeasureText(b.Label, fontSize)
		rl.DrawText(b.Label,
			int32(b.Rect.X)+int32(b.Rect.W)/2-width/2,
			int32(b.Rect.Y)+int32(b.Rect.H)/2-fontSize/2,
			fontSize, rl.White)
	}
}

func (r *Renderer) drawMenu() {
	r.centerText("Snake Game", 100, bigFontSize, rl.White)
	r.drawButtons(game.PhaseMenu)
}

func (r *Renderer) drawSetup(view game.SetupView) {
	r.centerText("Game Setup", 50, bigFontSize, rl.White)
	r.centerText("Select Difficulty:", 120, fontSize, rl.White)
	r.drawButtons(game.PhaseSetup)

	buttons := input.Buttons(game.PhaseSetup, int(r.screenWidth))
	if target := difficultyTarget(view.Difficulty); target != game.TargetNone {
		if b, ok := input.Find(buttons, target); ok {
			rl.DrawRectangleLinesEx(rl.NewRectangle(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H), 3, rl.Yellow)
		}
	}

	r.centerText("Enter Speed (1+):", 340, fontSize, rl.White)
	box, _ := input.Find(buttons, game.TargetSpeedInput)
	rec := rl.NewRectangle(box.Rect.X, box.Rect.Y, box.Rect.W, box.Rect.H)
	fill := inputIdle
	if view.InputActive {
		fill = inputActive
	}
	rl.DrawRectangleRec(rec, fill)
	rl.DrawRectangleLinesEx(rec, 2, rl.Black)
	x, y := int32(box.Rect.X), int32(box.Rect.Y)
	rl.DrawText(view.SpeedInput, x+10, y+15, fontSize, rl.Black)

	if view.Speed > 0 && !view.InputActive && view.SpeedInput != "" {
		rl.DrawText(fmt.Sprintf("Current: %d", view.Speed), x, y+55, fontSize, rl.White)
	}
	if view.Error != "" {
		rl.DrawText(view.Error, x, y+85, fontSize, rl.Red)
	}
}

func difficultyTarget(d types.Difficulty) game.Target {
	switch d {
	case types.Easy:
		return game.TargetEasy
	case types.Medium:
		return game.TargetMedium
	case types.Hard:
		return game.TargetHard
	}
	return game.TargetNone
}

func columnX(i int) int32 {
	x := int32(tableX)
	for _, w := range columnWidths[:i] {
		x += w + 10
	}
	return x
}

func (r *Renderer) drawHistory(g *game.Game) {
	r.centerText("Game History", 50, bigFontSize, rl.White)

	entries := g.HistoryEntries()
	pageSize := g.HistoryPageSize()
	footerY := int32(tableY + (pageSize+2)*rowHeight)

	if len(entries) == 0 {
		r.centerText("No game history yet", 150, fontSize, rl.White)
		r.centerText("Click to return or use mouse wheel to scroll", footerY, fontSize, rl.White)
		return
	}

	for i, header := range columnHeaders {
		x := columnX(i)
		rl.DrawText(header, x+5, tableY+5, fontSize, rl.White)
		rl.DrawLine(x, tableY+rowHeight, x+columnWidths[i], tableY+rowHeight, rl.White)
	}
	tableWidth := columnX(len(columnWidths)) - tableX - 10
	for i := 0; i <= len(columnWidths); i++ {
		x := columnX(i)
		rl.DrawLine(x, tableY, x, tableY+int32(pageSize)*rowHeight, rl.White)
	}

	offset := g.HistoryOffset()
	end := min(offset+pageSize, len(entries))
	for row, e := range entries[offset:end] {
		y := int32(tableY + (row+1)*rowHeight)
		color := rowEven
		if row%2 == 1 {
			color = rowOdd
		}
		rl.DrawRectangle(tableX, y, tableWidth, rowHeight, color)

		cells := []string{
			e.Mode,
			e.StartTime,
			fmt.Sprintf("%gs", e.Duration),
			e.Difficulty,
			fmt.Sprint(e.Speed),
			fmt.Sprint(e.Score),
		}
		for i, cell := range cells {
			rl.DrawText(cell, columnX(i)+5, y+5, smallFont, rl.White)
		}
	}

	if len(entries) > pageSize {
		r.centerText(fmt.Sprintf("Showing %d-%d of %d", offset+1, end, len(entries)),
			int32(tableY+(pageSize+1)*rowHeight), fontSize, rl.White)
	}
	r.centerText("Click to return or use mouse wheel to scroll", footerY, fontSize, rl.White)
}

func (r *Renderer) drawCountdown(n int) {
	text := fmt.Sprint(n)
	r.centerText(text, r.screenHeight/2-bigFontSize, bigFontSize*2, rl.Red)
}

func (r *Renderer) drawGame(g *game.Game) {
	s := g.Session()
	if s == nil {
		return
	}
	cell := int32(g.Grid().CellSize)

	for _, p := range s.Obstacles() {
		rl.DrawRectangle(int32(p.X), int32(p.Y), cell, cell, obstacleColor)
	}
	for _, p := range s.Snake() {
		rl.DrawRectangle(int32(p.X), int32(p.Y), cell, cell, snakeColor)
	}
	food := s.Food()
	rl.DrawRectangle(int32(food.X), int32(food.Y), cell, cell, foodColor)

	lines := []string{
		fmt.Sprintf("Time: %.1fs", g.Elapsed().Seconds()),
		fmt.Sprintf("Score: %d", s.Score()),
		fmt.Sprintf("Speed: %d", s.Speed()),
		fmt.Sprintf("Mode: %s", s.Label()),
	}
	if s.Mode() == types.Speedrun {
		lines = append(lines, fmt.Sprintf("Food: %d (Next speed at %d)", s.FoodEaten(), s.NextSpeedAt()))
	}
	for i, line := range lines {
		rl.DrawText(line, 10, int32(10+i*30), fontSize, rl.White)
	}
}

func (r *Renderer) drawOverlay() {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, overlayColor)
}

func (r *Renderer) drawPause() {
	r.drawOverlay()
	r.centerText("GAME PAUSED", r.screenHeight/2-150-bigFontSize, bigFontSize, rl.Yellow)
	r.drawButtons(game.PhasePaused)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	s := g.Session()
	r.drawOverlay()
	r.centerText("GAME OVER", 150, bigFontSize, rl.Red)

	stats := []string{
		fmt.Sprintf("Final Score: %d", s.Score()),
		fmt.Sprintf("Time Played: %.1fs", g.Elapsed().Seconds()),
		fmt.Sprintf("Mode: %s", s.Label()),
		fmt.Sprintf("Speed: %d", s.Speed()),
		fmt.Sprintf("High Score: %d", g.HighScore()),
		"",
		"Press R to play again or B for the menu",
	}
	if s.NewRecord() {
		r.centerText("New High Score!", 200-fontSize, fontSize, rl.Yellow)
	}
	for i, line := range stats {
		r.centerText(line, int32(220+i*40), fontSize, rl.White)
	}
}

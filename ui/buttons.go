package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a control request from a button or key.
type Action uint8

const (
	ActionNone Action = iota
	ActionRestart
	ActionEndGame
	ActionQuit
	ActionPause
)

// ButtonBar draws the Restart / End Game / Quit row under the board.
type ButtonBar struct {
	renderer *Renderer
	y        float32
	width    float32
}

// NewButtonBar creates a bar whose top edge is at y.
func NewButtonBar(y, screenWidth int32) *ButtonBar {
	return &ButtonBar{
		renderer: NewRenderer(),
		y:        float32(y),
		width:    float32(screenWidth),
	}
}

// Draw renders the bar and returns the clicked action, if any.
func (b *ButtonBar) Draw() Action {
	t := b.renderer.Theme
	gap := float32(t.Padding)
	total := 3*t.ButtonWidth + 2*gap
	x := (b.width - total) / 2
	y := b.y + float32(t.Padding)

	action := ActionNone
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: t.ButtonWidth, Height: t.ButtonHeight}, "Restart") {
		action = ActionRestart
	}
	x += t.ButtonWidth + gap
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: t.ButtonWidth, Height: t.ButtonHeight}, "End Game") {
		action = ActionEndGame
	}
	x += t.ButtonWidth + gap
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: t.ButtonWidth, Height: t.ButtonHeight}, "Quit") {
		action = ActionQuit
	}
	return action
}

// GameOverData is shown on the game-over overlay.
type GameOverData struct {
	Score        int
	HighScore    int
	Cause        string
	ScreenWidth  int32
	ScreenHeight int32
}

// GameOverOverlay dims the screen and offers Restart and Quit.
type GameOverOverlay struct {
	renderer *Renderer
}

// NewGameOverOverlay creates the overlay.
func NewGameOverOverlay() *GameOverOverlay {
	return &GameOverOverlay{renderer: NewRenderer()}
}

// Draw renders the overlay and returns the clicked action, if any.
func (g *GameOverOverlay) Draw(data GameOverData) Action {
	r := g.renderer
	t := r.Theme

	rl.DrawRectangle(0, 0, data.ScreenWidth, data.ScreenHeight, rl.Fade(rl.Black, 0.7))

	cx := data.ScreenWidth / 2
	y := data.ScreenHeight/2 - 90
	r.DrawCenteredText("GAME OVER", cx, y, t.TitleFontSize, t.Food)
	y += t.TitleFontSize + 10
	r.DrawCenteredText(
		fmt.Sprintf("Score: %d   High Score: %d", data.Score, data.HighScore),
		cx, y, 20, t.ValueColor,
	)
	if data.Cause != "" {
		y += 26
		r.DrawCenteredText("("+data.Cause+")", cx, y, 16, t.LabelColor)
	}

	bx := float32(cx) - t.ButtonWidth - float32(t.Padding)/2
	by := float32(y) + 40
	action := ActionNone
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: t.ButtonWidth, Height: t.ButtonHeight}, "Restart") {
		action = ActionRestart
	}
	if gui.Button(rl.Rectangle{X: bx + t.ButtonWidth + float32(t.Padding), Y: by, Width: t.ButtonWidth, Height: t.ButtonHeight}, "Quit") {
		action = ActionQuit
	}
	return action
}

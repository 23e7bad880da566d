// Package ui draws the graphical front end: board, HUD, buttons and
// overlays. It holds no game state; callers pass plain data in.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	Background  rl.Color
	GridLine    rl.Color
	SnakeHead   rl.Color
	SnakeBody   rl.Color
	Food        rl.Color
	Obstacle    rl.Color
	Path        rl.Color
	PanelBg     rl.Color
	PanelBorder rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Accent      rl.Color

	Padding        int32
	LineHeight     int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
	ButtonWidth    float32
	ButtonHeight   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  rl.Black,
		GridLine:    rl.Color{R: 30, G: 30, B: 30, A: 255},
		SnakeHead:   rl.Color{R: 0, G: 200, B: 0, A: 255},
		SnakeBody:   rl.Green,
		Food:        rl.Red,
		Obstacle:    rl.Gray,
		Path:        rl.Color{R: 80, G: 160, B: 255, A: 120},
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:  rl.LightGray,
		ValueColor:  rl.White,
		Accent:      rl.Yellow,

		Padding:        10,
		LineHeight:     16,
		FontSize:       12,
		HeaderFontSize: 14,
		TitleFontSize:  36,
		ButtonWidth:    100,
		ButtonHeight:   30,
	}
}

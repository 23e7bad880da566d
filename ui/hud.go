package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the score strip.
type HUDData struct {
	Score       int
	HighScore   int
	Tick        int32
	FPS         int32
	Paused      bool
	ScreenWidth int32
}

// HUD renders the score strip above the board.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme

	rl.DrawText(fmt.Sprintf("Score: %d", data.Score), 10, 10, 20, t.ValueColor)
	rl.DrawText(fmt.Sprintf("High Score: %d", data.HighScore), 10, 30, 16, t.LabelColor)

	status := fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS)
	if data.Paused {
		status = "PAUSED"
	}
	w := rl.MeasureText(status, 16)
	rl.DrawText(status, data.ScreenWidth-w-10, 10, 16, t.Accent)
}

// PerfPanelData holds timing averages for display.
type PerfPanelData struct {
	SectionTimes map[string]time.Duration
	Total        time.Duration
}

// PerfPanel renders per-section timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData, sortedNames []string) {
	r := p.renderer
	height := r.Theme.LineHeight*int32(len(sortedNames)+1) + r.Theme.Padding*2
	r.DrawPanel(p.x, p.y, 180, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding
	y = r.DrawLabelValue(x, y, "total", data.Total.Round(time.Microsecond).String(), 60)
	for _, name := range sortedNames {
		y = r.DrawLabelValue(x, y, name, data.SectionTimes[name].Round(time.Microsecond).String(), 60)
	}
}

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyBinding is a fixed control shown in the help panel.
type KeyBinding struct {
	KeyLabel string
	Name     string
}

// DefaultKeyBindings lists the game controls that are not overlays.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{"R", "Restart"},
		{"E", "End Game"},
		{"Q", "Quit"},
		{"Space", "Pause"},
	}
}

// ControlsPanel lists key bindings and overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the controls panel and returns the Y below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry, keys []KeyBinding) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	totalItems := len(keys) + 1
	for _, cat := range categories {
		totalItems += len(overlays.ByCategory(cat)) + 1 // +1 for category header
	}
	panelHeight := int32(totalItems)*lineHeight + padding*3 + lineHeight

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding
	rl.DrawText("Controls", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	rl.DrawText("Game", c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.Accent)
	y += lineHeight
	for _, k := range keys {
		c.drawLine(c.x+padding, y, k.Name, k.KeyLabel, false, c.width-padding*2)
		y += lineHeight
	}

	for _, category := range categories {
		rl.DrawText(categoryLabel(category), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.Accent)
		y += lineHeight

		for _, desc := range overlays.ByCategory(category) {
			c.drawLine(c.x+padding, y, desc.Name, desc.KeyLabel, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}
	}

	return y
}

// drawLine draws one binding with an on/off marker and a right-aligned key.
func (c *ControlsPanel) drawLine(x, y int32, name, key string, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(name, x+14, y, r.Theme.FontSize, r.Theme.LabelColor)

	if key != "" {
		keyText := fmt.Sprintf("[%s]", key)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "board":
		return "Board"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}

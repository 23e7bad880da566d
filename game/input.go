package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pathsnake/ui"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyR):
		g.apply(ui.ActionRestart)
	case rl.IsKeyPressed(rl.KeyE):
		g.apply(ui.ActionEndGame)
	case rl.IsKeyPressed(rl.KeyQ):
		g.apply(ui.ActionQuit)
	case rl.IsKeyPressed(rl.KeySpace):
		g.apply(ui.ActionPause)
	}

	if g.overlays != nil {
		g.handleOverlayKeys()
	}
}

// handleOverlayKeys drains the key queue and toggles bound overlays.
func (g *Game) handleOverlayKeys() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := g.overlays.HandleKeyPress(key); ok {
			slog.Debug("overlay toggled", "overlay", id, "enabled", on, "shown", g.overlays.EnabledOverlays())
		}
	}
}

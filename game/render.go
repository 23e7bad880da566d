package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pathsnake/ui"
)

// initUI creates the raylib views. The window need not exist yet.
func (g *Game) initUI() {
	d := g.cfg.Derived
	g.hud = ui.NewHUD()
	g.board = ui.NewBoardView(int32(g.cfg.Screen.CellSize), d.GridTop)
	g.buttons = ui.NewButtonBar(d.GridTop+int32(g.cfg.Grid.Height*g.cfg.Screen.CellSize), d.WindowWidth)
	g.gameOver = ui.NewGameOverOverlay()
	g.overlays = ui.NewOverlayRegistry()
	g.controls = ui.NewControlsPanel(10, d.GridTop+10, 200)
	g.perfPanel = ui.NewPerfPanel(10, d.GridTop+10)
}

// Draw renders the current snapshot and handles button clicks.
func (g *Game) Draw() {
	if g.hud == nil {
		return
	}

	rl.BeginDrawing()
	defer rl.EndDrawing()

	theme := ui.DefaultTheme()
	rl.ClearBackground(theme.Background)

	snap := g.Snapshot()
	g.board.Draw(ui.BoardData{
		Width:     snap.Width,
		Height:    snap.Height,
		Snake:     snap.Snake,
		Path:      snap.Path,
		Food:      snap.Food,
		HasFood:   snap.HasFood,
		Obstacles: snap.Obstacles,
	}, g.overlays)

	g.hud.Draw(ui.HUDData{
		Score:       snap.Score,
		HighScore:   snap.HighScore,
		Tick:        snap.Tick,
		FPS:         rl.GetFPS(),
		Paused:      snap.Paused,
		ScreenWidth: g.cfg.Derived.WindowWidth,
	})

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.drawPerfPanel()
	}
	if g.overlays.IsEnabled(ui.OverlayHelp) {
		g.controls.Draw(g.overlays, ui.DefaultKeyBindings())
	}

	if snap.Alive {
		g.apply(g.buttons.Draw())
		return
	}

	g.apply(g.gameOver.Draw(ui.GameOverData{
		Score:        snap.Score,
		HighScore:    snap.HighScore,
		Cause:        string(snap.Cause),
		ScreenWidth:  g.cfg.Derived.WindowWidth,
		ScreenHeight: g.cfg.Derived.WindowHeight,
	}))
}

func (g *Game) drawPerfPanel() {
	names := g.perf.SortedNames()
	times := make(map[string]time.Duration, len(names))
	for _, name := range names {
		times[name] = g.perf.Avg(name)
	}
	g.perfPanel.Draw(ui.PerfPanelData{SectionTimes: times, Total: g.perf.Total()}, names)
}

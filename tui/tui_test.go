package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pathsnake/components"
	"github.com/pthm-cable/pathsnake/game"
)

type fakeController struct {
	ticks, restarts, ends, pauses int
	done                          bool
	snap                          game.Snapshot
}

func (f *fakeController) UpdateHeadless()         { f.ticks++ }
func (f *fakeController) Snapshot() game.Snapshot { return f.snap }
func (f *fakeController) Restart()                { f.restarts++ }
func (f *fakeController) EndRun()                 { f.ends++ }
func (f *fakeController) TogglePause()            { f.pauses++ }
func (f *fakeController) Terminate()              { f.done = true }
func (f *fakeController) Done() bool              { return f.done }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		bound bool
		check func(*fakeController) bool
	}{
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), true, func(f *fakeController) bool { return f.restarts == 1 }},
		{"end", tcell.NewEventKey(tcell.KeyRune, 'E', tcell.ModNone), true, func(f *fakeController) bool { return f.ends == 1 }},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true, func(f *fakeController) bool { return f.done }},
		{"pause", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), true, func(f *fakeController) bool { return f.pauses == 1 }},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, func(f *fakeController) bool { return f.done }},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false, func(f *fakeController) bool { return !f.done }},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false, func(f *fakeController) bool { return !f.done }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeController{}
			if got := HandleKey(f, tt.ev); got != tt.bound {
				t.Errorf("HandleKey bound = %v, want %v", got, tt.bound)
			}
			if !tt.check(f) {
				t.Errorf("unexpected controller state %+v", f)
			}
		})
	}
}

func TestRenderPlacesCells(t *testing.T) {
	screen := newScreen(t)
	snap := game.Snapshot{
		Width:     6,
		Height:    4,
		Snake:     []components.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}},
		Food:      components.Cell{X: 4, Y: 3},
		HasFood:   true,
		Obstacles: []components.Cell{{X: 0, Y: 0}},
		Alive:     true,
	}
	Render(screen, snap)

	tests := []struct {
		cell components.Cell
		want rune
	}{
		{components.Cell{X: 2, Y: 1}, '█'},
		{components.Cell{X: 1, Y: 1}, '▒'},
		{components.Cell{X: 4, Y: 3}, '●'},
		{components.Cell{X: 0, Y: 0}, '▓'},
	}
	for _, tt := range tests {
		for dx := 0; dx < 2; dx++ {
			r, _, _, _ := screen.GetContent(originX+tt.cell.X*2+dx, originY+tt.cell.Y)
			if r != tt.want {
				t.Errorf("cell %v col %d = %q, want %q", tt.cell, dx, r, tt.want)
			}
		}
	}

	if r, _, _, _ := screen.GetContent(originX-1, originY-1); r != '┌' {
		t.Errorf("top-left border = %q", r)
	}
	if r, _, _, _ := screen.GetContent(originX+snap.Width*2, originY+snap.Height); r != '┘' {
		t.Errorf("bottom-right border = %q", r)
	}
}

func TestRunStopsOnTerminate(t *testing.T) {
	screen := newScreen(t)
	f := &fakeController{snap: game.Snapshot{Width: 3, Height: 3, Snake: []components.Cell{{}}, Alive: true}}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Run(ctx, screen, f, time.Millisecond); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !f.done {
		t.Error("controller not terminated")
	}
}

package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlayToggleExclusive(t *testing.T) {
	reg := NewOverlayRegistry()

	if reg.IsEnabled(OverlayPath) {
		t.Fatal("overlays start disabled")
	}
	if !reg.Toggle(OverlayPerf) || !reg.IsEnabled(OverlayPerf) {
		t.Fatal("expected perf overlay enabled")
	}
	reg.Toggle(OverlayHelp)
	if reg.IsEnabled(OverlayPerf) {
		t.Error("enabling help should disable perf")
	}
	if reg.Toggle("nope") {
		t.Error("unknown overlay toggled on")
	}
}

func TestOverlayHandleKeyPress(t *testing.T) {
	reg := NewOverlayRegistry()

	id, on, handled := reg.HandleKeyPress(rl.KeyP)
	if !handled || id != OverlayPath || !on {
		t.Fatalf("HandleKeyPress(P) = %q, %v, %v", id, on, handled)
	}
	if _, _, handled := reg.HandleKeyPress(rl.KeyZ); handled {
		t.Error("Z is not bound")
	}

	enabled := reg.EnabledOverlays()
	if len(enabled) != 1 || enabled[0] != OverlayPath {
		t.Errorf("EnabledOverlays = %v", enabled)
	}
}

func TestOverlayCategories(t *testing.T) {
	reg := NewOverlayRegistry()
	cats := reg.Categories()
	if len(cats) != 2 || cats[0] != "board" || cats[1] != "debug" {
		t.Errorf("Categories = %v", cats)
	}
	if n := len(reg.ByCategory("board")); n != 2 {
		t.Errorf("board overlays = %d, want 2", n)
	}
}

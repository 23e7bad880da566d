package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/pthm-cable/pathsnake/components"
	"github.com/pthm-cable/pathsnake/config"
	"github.com/pthm-cable/pathsnake/systems"
)

func testConfig(width, height int, policy string) *config.Config {
	cfg := config.Default()
	cfg.Grid.Width = width
	cfg.Grid.Height = height
	cfg.Game.NoPathPolicy = policy
	return cfg
}

func mustLayout(t *testing.T, cfg *config.Config, layout Layout) *World {
	t.Helper()
	w, err := NewWorldFromLayout(cfg, rand.New(rand.NewSource(1)), 0, layout)
	if err != nil {
		t.Fatalf("NewWorldFromLayout: %v", err)
	}
	return w
}

// dumpState renders a snapshot as ASCII for failure messages.
func dumpState(s Snapshot) string {
	rows := make([][]byte, s.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", s.Width))
	}
	for _, c := range s.Obstacles {
		rows[c.Y][c.X] = '#'
	}
	if s.HasFood {
		rows[s.Food.Y][s.Food.X] = '*'
	}
	for i, c := range s.Snake {
		if i == 0 {
			rows[c.Y][c.X] = 'H'
		} else {
			rows[c.Y][c.X] = 'o'
		}
	}
	var b strings.Builder
	for _, r := range rows {
		b.Write(r)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestNewWorldInitialLayout(t *testing.T) {
	cfg := config.Default()
	for seed := int64(1); seed <= 20; seed++ {
		w := NewWorld(cfg, rand.New(rand.NewSource(seed)), 3)
		s := w.Snapshot()

		if len(s.Snake) != 1 || s.Snake[0] != (components.Cell{X: 10, Y: 10}) {
			t.Fatalf("seed %d: snake = %v, want [(10,10)]", seed, s.Snake)
		}
		if w.Direction() != components.DirRight {
			t.Errorf("seed %d: direction = %v, want right", seed, w.Direction())
		}
		if !s.HasFood || s.Food == s.Snake[0] {
			t.Fatalf("seed %d: bad food %v (has=%v)", seed, s.Food, s.HasFood)
		}
		if len(s.Obstacles) != cfg.Game.Obstacles {
			t.Fatalf("seed %d: %d obstacles, want %d", seed, len(s.Obstacles), cfg.Game.Obstacles)
		}
		obs := systems.NewCellSet(s.Obstacles)
		if len(obs) != len(s.Obstacles) {
			t.Errorf("seed %d: duplicate obstacles %v", seed, s.Obstacles)
		}
		if obs.Has(s.Food) || obs.Has(s.Snake[0]) {
			t.Errorf("seed %d: obstacle overlaps snake or food\n%s", seed, dumpState(s))
		}
		if s.HighScore != 3 || s.Score != 0 || !s.Alive {
			t.Errorf("seed %d: unexpected score state %+v", seed, s)
		}
	}
}

func TestNewWorldFromLayoutRejects(t *testing.T) {
	cfg := testConfig(5, 5, config.PolicyHold)
	tests := []struct {
		name   string
		layout Layout
	}{
		{"empty snake", Layout{}},
		{"snake out of bounds", Layout{Snake: []components.Cell{{X: 5, Y: 0}}}},
		{"snake overlaps", Layout{Snake: []components.Cell{{X: 1, Y: 1}, {X: 1, Y: 1}}}},
		{"obstacle on snake", Layout{
			Snake:     []components.Cell{{X: 1, Y: 1}},
			Obstacles: []components.Cell{{X: 1, Y: 1}},
		}},
		{"food on obstacle", Layout{
			Snake:     []components.Cell{{X: 1, Y: 1}},
			Obstacles: []components.Cell{{X: 2, Y: 2}},
			Food:      components.Cell{X: 2, Y: 2},
			HasFood:   true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorldFromLayout(cfg, rand.New(rand.NewSource(1)), 0, tt.layout)
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("err = %v, want ErrInvalidLayout", err)
			}
		})
	}
}

func TestWorldBlockersAndSnapshotCopy(t *testing.T) {
	w := mustLayout(t, testConfig(6, 6, config.PolicyHold), Layout{
		Snake:     []components.Cell{{X: 2, Y: 2}, {X: 2, Y: 3}},
		Obstacles: []components.Cell{{X: 4, Y: 4}},
		Food:      components.Cell{X: 0, Y: 0},
		HasFood:   true,
	})

	b := w.Blockers()
	for _, c := range []components.Cell{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 4, Y: 4}} {
		if !b.Has(c) {
			t.Errorf("blockers missing %v", c)
		}
	}
	if b.Has(components.Cell{X: 0, Y: 0}) {
		t.Error("food must not be a blocker")
	}

	s := w.Snapshot()
	s.Snake[0] = components.Cell{X: 5, Y: 5}
	if w.Head() != (components.Cell{X: 2, Y: 2}) {
		t.Error("mutating a snapshot changed the world")
	}
}

func TestWorldEnd(t *testing.T) {
	w := mustLayout(t, testConfig(5, 5, config.PolicyHold), Layout{
		Snake:   []components.Cell{{X: 1, Y: 1}},
		Food:    components.Cell{X: 3, Y: 3},
		HasFood: true,
	})
	w.End()
	if w.Alive() || w.Cause() != CauseEnded {
		t.Fatalf("alive = %v, cause = %q after End", w.Alive(), w.Cause())
	}
	res := w.Step(systems.NewAStarPlanner(w.Grid()))
	if res.Outcome != OutcomeDead || res.Cause != CauseEnded {
		t.Errorf("step after End = %v/%q, want dead/ended", res.Outcome, res.Cause)
	}
}

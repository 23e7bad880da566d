package components

import "testing"

func TestDirectionFromDelta(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   Direction
		ok     bool
	}{
		{0, -1, DirUp, true},
		{0, 1, DirDown, true},
		{-1, 0, DirLeft, true},
		{1, 0, DirRight, true},
		{0, 0, DirNone, false},
		{1, 1, DirNone, false},
		{0, -2, DirNone, false},
	}

	for _, tc := range tests {
		got, ok := DirectionFromDelta(tc.dx, tc.dy)
		if got != tc.want || ok != tc.ok {
			t.Errorf("DirectionFromDelta(%d,%d) = %v,%v want %v,%v", tc.dx, tc.dy, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		back, ok := DirectionFromDelta(dx, dy)
		if !ok || back != d {
			t.Errorf("%v: delta (%d,%d) maps back to %v", d, dx, dy, back)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = %v", d.String(), parsed)
		}
	}
}

func TestCellAddAndManhattan(t *testing.T) {
	c := Cell{X: 5, Y: 5}
	if got := c.Add(DirUp); got != (Cell{X: 5, Y: 4}) {
		t.Errorf("Add(up) = %v", got)
	}
	if got := Manhattan(Cell{X: 1, Y: 2}, Cell{X: 4, Y: 0}); got != 5 {
		t.Errorf("Manhattan = %d, want 5", got)
	}
}

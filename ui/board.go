package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pathsnake/components"
)

// BoardData is everything the board view draws.
type BoardData struct {
	Width, Height int
	Snake         []components.Cell
	Path          []components.Cell
	Food          components.Cell
	HasFood       bool
	Obstacles     []components.Cell
}

// BoardView draws the grid at a fixed pixel offset.
type BoardView struct {
	renderer *Renderer
	cellSize int32
	top      int32
}

// NewBoardView creates a board view with the grid's top edge at top.
func NewBoardView(cellSize, top int32) *BoardView {
	return &BoardView{
		renderer: NewRenderer(),
		cellSize: cellSize,
		top:      top,
	}
}

// Draw renders the board. Overlays decide whether grid lines and the
// planned path are shown.
func (b *BoardView) Draw(data BoardData, overlays *OverlayRegistry) {
	t := b.renderer.Theme

	if overlays.IsEnabled(OverlayGridLines) {
		b.drawGridLines(data.Width, data.Height)
	}

	for _, c := range data.Obstacles {
		b.fillCell(c, t.Obstacle)
	}
	if data.HasFood {
		b.fillCell(data.Food, t.Food)
	}
	if overlays.IsEnabled(OverlayPath) {
		for _, c := range data.Path {
			b.insetCell(c, t.Path)
		}
	}
	for i, c := range data.Snake {
		color := t.SnakeBody
		if i == 0 {
			color = t.SnakeHead
		}
		b.fillCell(c, color)
	}
}

func (b *BoardView) fillCell(c components.Cell, color rl.Color) {
	rl.DrawRectangle(int32(c.X)*b.cellSize, b.top+int32(c.Y)*b.cellSize, b.cellSize, b.cellSize, color)
}

func (b *BoardView) insetCell(c components.Cell, color rl.Color) {
	inset := b.cellSize / 4
	rl.DrawRectangle(
		int32(c.X)*b.cellSize+inset, b.top+int32(c.Y)*b.cellSize+inset,
		b.cellSize-2*inset, b.cellSize-2*inset, color,
	)
}

func (b *BoardView) drawGridLines(width, height int) {
	color := b.renderer.Theme.GridLine
	w := int32(width) * b.cellSize
	h := int32(height) * b.cellSize
	for x := int32(0); x <= int32(width); x++ {
		rl.DrawLine(x*b.cellSize, b.top, x*b.cellSize, b.top+h, color)
	}
	for y := int32(0); y <= int32(height); y++ {
		rl.DrawLine(0, b.top+y*b.cellSize, w, b.top+y*b.cellSize, color)
	}
}

// Package tui is a terminal front end for the game built on tcell.
// Each board cell is two columns wide so the board looks square.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pathsnake/components"
	"github.com/pthm-cable/pathsnake/game"
)

// Board origin on screen: one HUD row, then the top border.
const (
	originX = 1
	originY = 2
)

var (
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead     = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Controller is the part of game.Game the terminal loop drives.
type Controller interface {
	UpdateHeadless()
	Snapshot() game.Snapshot
	Restart()
	EndRun()
	TogglePause()
	Terminate()
	Done() bool
}

// Run drives the game at the given tick interval until the game is
// terminated, the user quits, or ctx is cancelled.
func Run(ctx context.Context, screen tcell.Screen, g Controller, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	Render(screen, g.Snapshot())

	for !g.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				HandleKey(g, ev)
			case *tcell.EventResize:
				screen.Sync()
			}
			Render(screen, g.Snapshot())

		case <-ticker.C:
			g.UpdateHeadless()
			Render(screen, g.Snapshot())
		}
	}
	return nil
}

// HandleKey maps a key press to a game control. It reports whether the
// key was bound.
func HandleKey(g Controller, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.Terminate()
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'r', 'R':
		g.Restart()
	case 'e', 'E':
		g.EndRun()
	case 'q', 'Q':
		g.Terminate()
	case ' ':
		g.TogglePause()
	default:
		return false
	}
	return true
}

// Render draws a snapshot and shows the screen.
func Render(screen tcell.Screen, s game.Snapshot) {
	screen.Clear()

	status := "[R]estart [E]nd [Q]uit [Space] pause"
	if s.Paused {
		status = "PAUSED"
	}
	drawText(screen, 0, 0, styleHUD, fmt.Sprintf("Score: %d  High Score: %d  %s", s.Score, s.HighScore, status))

	drawBorder(screen, s.Width, s.Height)

	for _, c := range s.Obstacles {
		setCell(screen, c, '▓', styleObstacle)
	}
	if s.HasFood {
		setCell(screen, s.Food, '●', styleFood)
	}
	for i, c := range s.Snake {
		if i == 0 {
			setCell(screen, c, '█', styleHead)
		} else {
			setCell(screen, c, '▒', styleBody)
		}
	}

	if !s.Alive {
		msg := fmt.Sprintf("GAME OVER (%s)  [R]estart [Q]uit", s.Cause)
		drawText(screen, originX, originY+s.Height+1, styleGameOver, msg)
	}

	screen.Show()
}

// setCell fills both columns of a board cell.
func setCell(screen tcell.Screen, c components.Cell, r rune, style tcell.Style) {
	x := originX + c.X*2
	y := originY + c.Y
	screen.SetContent(x, y, r, nil, style)
	screen.SetContent(x+1, y, r, nil, style)
}

func drawBorder(screen tcell.Screen, width, height int) {
	left, right := originX-1, originX+width*2
	top, bottom := originY-1, originY+height
	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, '─', nil, styleBorder)
		screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, '│', nil, styleBorder)
		screen.SetContent(right, y, '│', nil, styleBorder)
	}
	screen.SetContent(left, top, '┌', nil, styleBorder)
	screen.SetContent(right, top, '┐', nil, styleBorder)
	screen.SetContent(left, bottom, '└', nil, styleBorder)
	screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

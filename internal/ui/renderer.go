package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/connectn/internal/board"
)

const (
	originX   = 2 // Left margin
	originY   = 2 // Rows reserved for the title and cursor
	cellWidth = 2 // Screen columns per board column
)

// View is everything the renderer needs for one frame.
type View struct {
	Board  *board.Board
	Colors map[board.Cell]tcell.Color // Piece colours by glyph
	Cursor int                        // Selected column
	Title  string
	Status string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the title, the cursor, the board and the status line.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	b := v.Board

	r.screen.DrawText(0, 0, v.Title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	cursorStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	r.screen.SetContent(originX+v.Cursor*cellWidth, originY-1, 'v', cursorStyle)

	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < b.Width(); x++ {
		style := headerStyle
		if x == v.Cursor {
			style = cursorStyle
		}
		// last digit keeps wide boards aligned
		digit := strconv.Itoa(x % 10)
		r.screen.DrawText(originX+x*cellWidth, originY, digit, style)
	}

	lastRow, lastCol, hasLast := b.LastMove()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			cell := b.At(y, x)
			style := r.cellStyle(cell, v.Colors)
			if hasLast && y == lastRow && x == lastCol {
				style = style.Underline(true)
			}
			r.screen.SetContent(originX+x*cellWidth, originY+1+y, cell.Rune(), style)
		}
	}

	r.RenderMessage(v.Status, originY+b.Height()+2)
	r.screen.Show()
}

// cellStyle returns the style for a cell's piece.
func (r *Renderer) cellStyle(cell board.Cell, colors map[board.Cell]tcell.Color) tcell.Style {
	if cell.IsEmpty() {
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	if c, ok := colors[cell]; ok {
		return tcell.StyleDefault.Foreground(c).Bold(true)
	}
	return tcell.StyleDefault
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

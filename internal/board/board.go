package board

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

const (
	// Default board dimensions and run length
	DefaultWidth     = 7
	DefaultHeight    = 6
	DefaultRunLength = 4
)

// Board is the game grid. Row 0 is the top row; pieces settle toward
// row height-1.
type Board struct {
	width     int
	height    int
	runLength int
	cells     [][]Cell
	moves     int

	// last move coordinates, -1 until the first drop
	lastRow, lastCol int

	// Logger receives diagnostics such as win checks on an unstarted game.
	Logger *log.Logger
}

// New creates an empty board.
func New(width, height, runLength int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, width, height)
	}
	if runLength <= 0 {
		return nil, fmt.Errorf("%w: run length %d must be positive", ErrInvalidConfig, runLength)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Empty
		}
	}

	return &Board{
		width:     width,
		height:    height,
		runLength: runLength,
		cells:     cells,
		lastRow:   -1,
		lastCol:   -1,
		Logger:    log.Default(),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// RunLength returns the number of aligned pieces needed to win.
func (b *Board) RunLength() int { return b.runLength }

// Moves returns how many pieces have been dropped.
func (b *Board) Moves() int { return b.moves }

// IsFull returns true once every cell is occupied.
func (b *Board) IsFull() bool {
	return b.moves == b.width*b.height
}

// At returns the cell at the given position. Out-of-range positions read as Empty.
func (b *Board) At(row, col int) Cell {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return Empty
	}
	return b.cells[row][col]
}

// LastMove returns the coordinates of the most recent drop.
// ok is false if no piece has been dropped yet.
func (b *Board) LastMove() (row, col int, ok bool) {
	if b.lastCol == -1 {
		return -1, -1, false
	}
	return b.lastRow, b.lastCol, true
}

// ColumnFull returns true if the column has no empty cell.
// Invalid columns report false.
func (b *Board) ColumnFull(col int) bool {
	if col < 0 || col >= b.width {
		return false
	}
	// gravity keeps the top cell last to fill
	return !b.cells[0][col].IsEmpty()
}

// Drop places piece in the lowest empty row of col and returns the
// resulting coordinates. A failed drop leaves the board unchanged.
func (b *Board) Drop(col int, piece Cell) (int, int, error) {
	if col < 0 || col >= b.width {
		return -1, -1, fmt.Errorf("%w: %d is outside 0..%d", ErrInvalidColumn, col, b.width-1)
	}
	if piece.IsEmpty() {
		return -1, -1, fmt.Errorf("%w: %q", ErrInvalidPiece, piece.Rune())
	}

	for row := b.height - 1; row >= 0; row-- {
		if b.cells[row][col].IsEmpty() {
			b.cells[row][col] = piece
			b.lastRow, b.lastCol = row, col
			b.moves++
			return row, col, nil
		}
	}

	return -1, -1, fmt.Errorf("%w: column %d", ErrColumnFull, col)
}

// IsWinningPosition reports whether the last drop completed a run.
// Called before any drop it logs a diagnostic and returns false.
func (b *Board) IsWinningPosition() bool {
	won, err := b.CheckWin()
	if err != nil {
		if b.Logger != nil {
			b.Logger.Printf("win check: %v", err)
		}
		return false
	}
	return won
}

// CheckWin is IsWinningPosition with the unstarted-game case returned as
// ErrUnstartedGame.
func (b *Board) CheckWin() (bool, error) {
	if b.lastCol == -1 {
		return false, ErrUnstartedGame
	}

	piece := b.cells[b.lastRow][b.lastCol]
	for _, line := range [][]Cell{
		b.Row(),
		b.Column(),
		b.SlashDiagonal(),
		b.BackslashDiagonal(),
	} {
		if hasRun(line, piece, b.runLength) {
			return true, nil
		}
	}
	return false, nil
}

// Render returns the column index header followed by one line per row.
func (b *Board) Render() string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteString(strconv.Itoa(x))
	}
	for y := 0; y < b.height; y++ {
		sb.WriteByte('\n')
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y][x].Rune())
		}
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (b *Board) String() string {
	return b.Render()
}

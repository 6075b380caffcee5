package board

// The line extractors below return the cells of one line through the last
// move, top row first, clipped to the board. They return nil before the
// first drop.

// Row returns the row containing the last move.
func (b *Board) Row() []Cell {
	if b.lastCol == -1 {
		return nil
	}
	line := make([]Cell, b.width)
	copy(line, b.cells[b.lastRow])
	return line
}

// Column returns the column containing the last move.
func (b *Board) Column() []Cell {
	if b.lastCol == -1 {
		return nil
	}
	line := make([]Cell, 0, b.height)
	for y := 0; y < b.height; y++ {
		line = append(line, b.cells[y][b.lastCol])
	}
	return line
}

// SlashDiagonal returns the "/" diagonal through the last move, the cells
// where col+row equals lastCol+lastRow.
func (b *Board) SlashDiagonal() []Cell {
	if b.lastCol == -1 {
		return nil
	}
	line := make([]Cell, 0, b.height)
	for y := 0; y < b.height; y++ {
		x := b.lastCol + b.lastRow - y
		if x >= 0 && x < b.width {
			line = append(line, b.cells[y][x])
		}
	}
	return line
}

// BackslashDiagonal returns the "\" diagonal through the last move, the
// cells where col-row equals lastCol-lastRow.
func (b *Board) BackslashDiagonal() []Cell {
	if b.lastCol == -1 {
		return nil
	}
	line := make([]Cell, 0, b.height)
	for y := 0; y < b.height; y++ {
		x := b.lastCol - b.lastRow + y
		if x >= 0 && x < b.width {
			line = append(line, b.cells[y][x])
		}
	}
	return line
}

// hasRun reports whether line holds n consecutive copies of piece.
// Empty never forms a run.
func hasRun(line []Cell, piece Cell, n int) bool {
	if piece.IsEmpty() || n <= 0 {
		return false
	}
	count := 0
	for _, c := range line {
		if c != piece {
			count = 0
			continue
		}
		count++
		if count >= n {
			return true
		}
	}
	return false
}

// Package board implements the drop-piece grid and its win detection.
package board

// Cell is the content of a single grid position.
type Cell rune

// Empty marks an unoccupied cell.
const Empty Cell = '-'

// IsEmpty returns true if no piece occupies the cell.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}

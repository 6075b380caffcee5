package board

import "errors"

var (
	// ErrInvalidConfig is returned by New for non-positive dimensions or run length.
	ErrInvalidConfig = errors.New("invalid board configuration")
	// ErrInvalidColumn is returned when a column index lies outside the board.
	ErrInvalidColumn = errors.New("invalid column")
	// ErrColumnFull is returned when a column has no empty cell left.
	ErrColumnFull = errors.New("column is full")
	// ErrInvalidPiece is returned when Empty is dropped as a player piece.
	ErrInvalidPiece = errors.New("invalid piece")
	// ErrUnstartedGame is reported when a win check runs before any move.
	ErrUnstartedGame = errors.New("no move has been made yet")
)

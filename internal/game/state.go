// Package game provides the session state machine and the loops that drive it.
package game

// State represents where a single game stands.
type State int

const (
	// StateAwaitingMove waits for the current player's column.
	StateAwaitingMove State = iota
	// StateWon means the last move completed a run.
	StateWon
	// StateDraw means the board filled up without a run.
	StateDraw
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingMove:
		return "awaiting_move"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the game is over.
func (s State) IsTerminal() bool {
	return s == StateWon || s == StateDraw
}

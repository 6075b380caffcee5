package game

import (
	"fmt"

	"github.com/samdwyer/connectn/internal/board"
	"github.com/samdwyer/connectn/internal/gamedata"
)

// Player identifies one of the two seats.
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Number returns the 1-based seat number shown to users.
func (p Player) Number() int {
	return int(p) + 1
}

// Other returns the opponent.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// String returns "Player 1" or "Player 2".
func (p Player) String() string {
	return fmt.Sprintf("Player %d", p.Number())
}

// Seat is one player's configuration.
type Seat struct {
	Color *gamedata.ColorDef
}

// Piece returns the board symbol for this seat.
func (s Seat) Piece() board.Cell {
	return board.Cell(s.Color.GlyphRune())
}

// Players maps each seat to its colour. It is fixed for a whole session.
type Players struct {
	One Seat
	Two Seat
}

// NewPlayers gives player one the colour with the given ID and player two the other one.
func NewPlayers(colors *gamedata.ColorRegistry, playerOneColor string) (Players, error) {
	one := colors.GetByID(playerOneColor)
	if one == nil {
		return Players{}, fmt.Errorf("unknown color %q", playerOneColor)
	}
	return Players{
		One: Seat{Color: one},
		Two: Seat{Color: colors.Other(playerOneColor)},
	}, nil
}

// Seat returns the configuration for p.
func (ps Players) Seat(p Player) Seat {
	if p == PlayerTwo {
		return ps.Two
	}
	return ps.One
}

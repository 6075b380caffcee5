package game

import (
	"testing"

	"github.com/samdwyer/connectn/internal/board"
	"github.com/samdwyer/connectn/internal/gamedata"
)

func TestPlayer(t *testing.T) {
	if PlayerOne.Other() != PlayerTwo || PlayerTwo.Other() != PlayerOne {
		t.Error("Other() should swap the two players")
	}
	if PlayerOne.Number() != 1 || PlayerTwo.Number() != 2 {
		t.Errorf("Number() = %d, %d; want 1, 2", PlayerOne.Number(), PlayerTwo.Number())
	}
	if got := PlayerTwo.String(); got != "Player 2" {
		t.Errorf("PlayerTwo.String() = %q, want %q", got, "Player 2")
	}
}

func TestNewPlayers(t *testing.T) {
	colors := gamedata.MustLoadColorRegistry()

	tests := []struct {
		choice   string
		one, two board.Cell
	}{
		{"r", 'r', 'y'},
		{"y", 'y', 'r'},
	}

	for _, tt := range tests {
		players, err := NewPlayers(colors, tt.choice)
		if err != nil {
			t.Fatalf("NewPlayers(%q) error: %v", tt.choice, err)
		}
		if got := players.Seat(PlayerOne).Piece(); got != tt.one {
			t.Errorf("NewPlayers(%q) player one piece = %q, want %q", tt.choice, got.Rune(), tt.one.Rune())
		}
		if got := players.Seat(PlayerTwo).Piece(); got != tt.two {
			t.Errorf("NewPlayers(%q) player two piece = %q, want %q", tt.choice, got.Rune(), tt.two.Rune())
		}
	}

	if _, err := NewPlayers(colors, "g"); err == nil {
		t.Error("NewPlayers(\"g\") should fail for an unknown color")
	}
}

package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func runText(t *testing.T, cfg Config, input string) (string, error) {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	var out bytes.Buffer
	err = g.RunText(context.Background(), strings.NewReader(input), &out)
	return out.String(), err
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n--- output ---\n%s", want, out)
		}
	}
}

func TestRunTextHorizontalWin(t *testing.T) {
	out, err := runText(t, DefaultConfig(), "r 0 0 1 1 2 2 3 0")
	if err != nil {
		t.Fatalf("RunText() error: %v", err)
	}

	assertContains(t, out,
		"Player one, do you want red or yellow (r or y): ",
		"Use 0-6 to choose a column\n0123456\n-------\n",
		"Player 1, what column do you want to put your piece? ",
		"Player 2, what column do you want to put your piece? ",
		"yyy----\nrrrr---\n",
		"\nPlayer 1 wins!\n",
		"Do you want to play again (0-no, 1-yes)? ",
	)
	if strings.Contains(out, "Lets play again") {
		t.Error("a rematch started after answering 0")
	}
}

func TestRunTextRepromptsInvalidInput(t *testing.T) {
	// Colour "g" is rejected, player one takes yellow. Then an out-of-range
	// column, a negative one and a word before the real moves.
	out, err := runText(t, DefaultConfig(), "g y 7 -1 abc 6 5 6 5 6 5 6 0")
	if err != nil {
		t.Fatalf("RunText() error: %v", err)
	}

	assertContains(t, out,
		"Please, enter valid color: ",
		"Column must be between 0 and 6\n",
		`"abc" is not a number`,
		"Player 1 wins!",
	)
	if got := strings.Count(out, "Column must be between 0 and 6"); got != 2 {
		t.Errorf("range message printed %d times, want 2", got)
	}

	// Player one chose yellow, so the winning column is all 'y'.
	assertContains(t, out, "-------\n------y\n-----ry\n-----ry\n-----ry\n")
}

func TestRunTextFullColumnDrawAndRematch(t *testing.T) {
	cfg := Config{Width: 3, Height: 2, RunLength: 3, Mode: ModeText}

	// Third drop into column 0 is rejected; the game then fills up.
	out, err := runText(t, cfg, "r 0 0 0 1 2 1 2 1")
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("RunText() error = %v, want ErrInputClosed", err)
	}

	assertContains(t, out,
		"Use 0-2 to choose a column\n012\n---\n---\n",
		"Column 0 is full.\n",
		"012\nyry\nrry\n",
		"Game over. No winner. Try again!\n",
		"\nLets play again,\n012\n---\n---\n",
	)
	if strings.Contains(out, "wins!") {
		t.Error("a draw should not announce a winner")
	}
}

func TestRunTextSetup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Setup = true

	input := strings.Join([]string{
		"0 5 4", // rejected width
		"3 3 0", // zero run length
		"-2",    // negative run length
		"3",
		"r",
		"0 1 0 1 0", // vertical win for player one
		"0",
	}, "\n")

	out, err := runText(t, cfg, input)
	if err != nil {
		t.Fatalf("RunText() error: %v", err)
	}

	assertContains(t, out,
		"Enter width, height and run length separated by spaces: ",
		"Width and height must be positive.\n",
		"You cannot have 0 pieces to connect.\n",
		"You cannot have a negative number of pieces to connect.\n",
		"Please enter a positive, non-zero integer for the number of pieces to connect: ",
		"Use 0-2 to choose a column\n012\n---\n---\n---\n",
		"012\nr--\nry-\nry-\n",
		"Player 1 wins!",
	)
}

func TestRunTextInputClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"after color", "r"},
		{"mid game", "y 0 1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runText(t, DefaultConfig(), tt.input)
			if !errors.Is(err, ErrInputClosed) {
				t.Errorf("RunText() error = %v, want ErrInputClosed", err)
			}
		})
	}
}

func TestGameRunUsesTextMode(t *testing.T) {
	g, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	var out bytes.Buffer
	if err := g.Run(context.Background(), strings.NewReader("r 0 1 0 1 0 1 0 0"), &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	assertContains(t, out.String(), "Player 1 wins!")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{Width: 7, Height: 6, RunLength: 4, Mode: "web"}); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("New() error = %v, want ErrUnknownMode", err)
	}
}

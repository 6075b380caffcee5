package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/connectn/internal/board"
	"github.com/samdwyer/connectn/internal/gamedata"
)

// ErrInputClosed is returned when the input ends before the session does.
var ErrInputClosed = errors.New("input closed")

// prompter reads whitespace-separated tokens and writes prompts.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &prompter{in: sc, out: out}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// token returns the next input word.
func (p *prompter) token() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return p.in.Text(), nil
}

// readInt returns the next integer, asking again after non-numeric words.
func (p *prompter) readInt() (int, error) {
	for {
		tok, err := p.token()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err == nil {
			return n, nil
		}
		p.printf("%q is not a number, please enter a whole number: ", tok)
	}
}

// readSetup asks for width, height and run length on one line.
func (p *prompter) readSetup(cfg Config) (Config, error) {
	for {
		p.printf("Enter width, height and run length separated by spaces: ")
		var vals [3]int
		for i := range vals {
			n, err := p.readInt()
			if err != nil {
				return cfg, err
			}
			vals[i] = n
		}
		cfg.Width, cfg.Height, cfg.RunLength = vals[0], vals[1], vals[2]
		if cfg.Width > 0 && cfg.Height > 0 {
			break
		}
		p.printf("Width and height must be positive.\n")
	}

	for cfg.RunLength <= 0 {
		if cfg.RunLength == 0 {
			p.printf("You cannot have 0 pieces to connect.\n")
		} else {
			p.printf("You cannot have a negative number of pieces to connect.\n")
		}
		p.printf("\nPlease enter a positive, non-zero integer for the number of pieces to connect: ")
		n, err := p.readInt()
		if err != nil {
			return cfg, err
		}
		cfg.RunLength = n
	}

	return cfg, nil
}

// choosePlayers lets player one pick a colour.
func (p *prompter) choosePlayers(colors *gamedata.ColorRegistry) (Players, error) {
	defs := colors.All()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = strings.ToLower(d.Name)
	}
	p.printf("\nPlayer one, do you want %s (%s): ",
		strings.Join(names, " or "), strings.Join(colors.IDs(), " or "))

	for {
		choice, err := p.token()
		if err != nil {
			return Players{}, err
		}
		if colors.GetByID(choice) != nil {
			return NewPlayers(colors, choice)
		}
		p.printf("Please, enter valid color: ")
	}
}

// chooseAndDrop asks the current player for a column until the drop succeeds.
func (p *prompter) chooseAndDrop(ctx context.Context, s *Session) (Outcome, error) {
	width := s.Board().Width()
	for {
		p.printf("\n%s, what column do you want to put your piece? ", s.Turn())
		col, err := p.readInt()
		if err != nil {
			return Outcome{}, err
		}

		outcome, err := s.Play(ctx, col)
		switch {
		case err == nil:
			return outcome, nil
		case errors.Is(err, board.ErrInvalidColumn):
			p.printf("Column must be between 0 and %d\n", width-1)
		case errors.Is(err, board.ErrColumnFull):
			p.printf("Column %d is full.\n", col)
		default:
			return Outcome{}, err
		}
	}
}

// askReplay returns true unless the answer is 0.
func (p *prompter) askReplay() (bool, error) {
	p.printf("\nDo you want to play again (0-no, 1-yes)? ")
	n, err := p.readInt()
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

// RunText plays the line-based game on in/out until a player declines a
// rematch. It returns ErrInputClosed if in ends first.
func (g *Game) RunText(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, span := g.tracer.Start(ctx, "game.session")
	defer span.End()

	p := newPrompter(in, out)

	cfg := g.cfg
	if cfg.Setup {
		var err error
		if cfg, err = p.readSetup(cfg); err != nil {
			return err
		}
	}

	players, err := p.choosePlayers(g.colors)
	if err != nil {
		return err
	}

	session, err := NewSession(ctx, cfg, players)
	if err != nil {
		return err
	}

	p.printf("Use 0-%d to choose a column\n", cfg.Width-1)
	p.printf("%s\n", session.Board().Render())

	for {
		outcome, err := p.chooseAndDrop(ctx, session)
		if err != nil {
			return err
		}
		p.printf("%s\n", session.Board().Render())

		switch outcome.State {
		case StateWon:
			p.printf("\n%s wins!\n", outcome.Player)
		case StateDraw:
			p.printf("Game over. No winner. Try again!\n")
		default:
			continue
		}

		again, err := p.askReplay()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}

		p.printf("\nLets play again,\n")
		if err := session.NewGame(ctx); err != nil {
			return err
		}
		p.printf("%s\n", session.Board().Render())
	}
}

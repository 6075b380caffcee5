package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/connectn/internal/board"
	"github.com/samdwyer/connectn/internal/gamedata"
	"github.com/samdwyer/connectn/internal/ui"
)

// terminal holds the full-screen front end's state between key presses.
type terminal struct {
	cfg     Config
	colors  *gamedata.ColorRegistry
	session *Session // nil until player one picks a colour
	cursor  int
	status  string
	running bool
}

func newTerminal(cfg Config, colors *gamedata.ColorRegistry) *terminal {
	t := &terminal{
		cfg:     cfg,
		colors:  colors,
		cursor:  cfg.Width / 2,
		running: true,
	}
	t.status = t.colorPrompt()
	return t
}

func (t *terminal) colorPrompt() string {
	var opts []string
	for _, c := range t.colors.All() {
		opts = append(opts, fmt.Sprintf("%s (%s)", c.ID, strings.ToLower(c.Name)))
	}
	return "Player one, choose a color: " + strings.Join(opts, " or ")
}

func (t *terminal) turnPrompt() string {
	return fmt.Sprintf("%s, choose a column (left/right, enter to drop)", t.session.Turn())
}

// handleKey processes keyboard input.
func (t *terminal) handleKey(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.running = false
		return nil
	case tcell.KeyLeft:
		t.moveCursor(-1)
	case tcell.KeyRight:
		t.moveCursor(1)
	case tcell.KeyEnter:
		return t.drop(ctx)
	case tcell.KeyRune:
		return t.handleRune(ctx, ev.Rune())
	}
	return nil
}

func (t *terminal) handleRune(ctx context.Context, r rune) error {
	switch {
	case r == 'q' || r == 'Q':
		t.running = false
	case t.session == nil:
		return t.chooseColor(ctx, string(r))
	case r == ' ':
		return t.drop(ctx)
	case r >= '0' && r <= '9':
		if col := int(r - '0'); col < t.cfg.Width {
			t.cursor = col
		}
	case (r == 'n' || r == 'N') && t.session.State().IsTerminal():
		if err := t.session.NewGame(ctx); err != nil {
			return err
		}
		t.status = t.turnPrompt()
	}
	return nil
}

func (t *terminal) chooseColor(ctx context.Context, id string) error {
	if t.colors.GetByID(id) == nil {
		t.status = "Please, enter valid color. " + t.colorPrompt()
		return nil
	}
	players, err := NewPlayers(t.colors, id)
	if err != nil {
		return err
	}
	if t.session, err = NewSession(ctx, t.cfg, players); err != nil {
		return err
	}
	t.status = t.turnPrompt()
	return nil
}

func (t *terminal) moveCursor(delta int) {
	t.cursor += delta
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor >= t.cfg.Width {
		t.cursor = t.cfg.Width - 1
	}
}

func (t *terminal) drop(ctx context.Context) error {
	if t.session == nil || t.session.State().IsTerminal() {
		return nil
	}

	outcome, err := t.session.Play(ctx, t.cursor)
	switch {
	case errors.Is(err, board.ErrColumnFull):
		t.status = fmt.Sprintf("Column %d is full. %s", t.cursor, t.turnPrompt())
		return nil
	case err != nil:
		return err
	}

	switch outcome.State {
	case StateWon:
		t.status = fmt.Sprintf("%s wins! Press n for a new game or q to quit.", outcome.Player)
	case StateDraw:
		t.status = "Game over. No winner. Press n for a new game or q to quit."
	default:
		t.status = t.turnPrompt()
	}
	return nil
}

// view builds the frame for the renderer. Before a colour is chosen it
// shows an empty board of the configured size.
func (t *terminal) view() ui.View {
	v := ui.View{
		Cursor: t.cursor,
		Title:  fmt.Sprintf("connectn: line up %d to win", t.cfg.RunLength),
		Status: t.status,
		Colors: make(map[board.Cell]tcell.Color),
	}
	for _, c := range t.colors.All() {
		v.Colors[board.Cell(c.GlyphRune())] = c.TCellColor()
	}

	if t.session != nil {
		v.Board = t.session.Board()
	} else {
		// Config was validated by New, so this cannot fail.
		v.Board, _ = board.New(t.cfg.Width, t.cfg.Height, t.cfg.RunLength)
	}
	return v
}

// RunTerminal plays in a full-screen tcell interface until the user quits.
func (g *Game) RunTerminal(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.session")
	defer span.End()

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen)
	t := newTerminal(g.cfg, g.colors)

	for t.running {
		renderer.Render(t.view())

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if err := t.handleKey(ctx, ev); err != nil {
				return err
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// screen finalized
			return nil
		}
	}
	return nil
}

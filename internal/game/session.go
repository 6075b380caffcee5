package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/connectn/internal/board"
	"github.com/samdwyer/connectn/internal/telemetry"
)

// ErrGameOver is returned by Play once the current game has ended.
var ErrGameOver = errors.New("game is over")

// Outcome describes a successful move.
type Outcome struct {
	Player Player
	Row    int
	Column int
	State  State // State after the move
}

// Session runs consecutive games between the same two players with the
// same configuration. Each game gets a fresh board.
type Session struct {
	cfg     Config
	players Players
	board   *board.Board
	turn    Player
	state   State
	games   int
}

// NewSession validates cfg and starts the first game.
func NewSession(ctx context.Context, cfg Config, players Players) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg, players: players}
	if err := s.NewGame(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame discards the current board and starts over with player one to move.
func (s *Session) NewGame(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.start")
	defer span.End()

	b, err := board.New(s.cfg.Width, s.cfg.Height, s.cfg.RunLength)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	s.board = b
	s.turn = PlayerOne
	s.state = StateAwaitingMove
	s.games++

	span.SetAttributes(
		attribute.Int("game.number", s.games),
		attribute.Int("board.width", s.cfg.Width),
		attribute.Int("board.height", s.cfg.Height),
		attribute.Int("board.run_length", s.cfg.RunLength),
		attribute.String("player_one.color", s.players.One.Color.ID),
	)
	return nil
}

// Play drops the current player's piece into col. Board errors
// (board.ErrInvalidColumn, board.ErrColumnFull) leave the turn unchanged
// so the same player can choose again.
func (s *Session) Play(ctx context.Context, col int) (Outcome, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.move")
	defer span.End()

	player := s.turn
	span.SetAttributes(
		attribute.Int("player", player.Number()),
		attribute.Int("column", col),
		attribute.Int("game.number", s.games),
	)

	if s.state.IsTerminal() {
		span.RecordError(ErrGameOver)
		return Outcome{}, ErrGameOver
	}

	row, col, err := s.board.Drop(col, s.players.Seat(player).Piece())
	if err != nil {
		// Rejected moves are expected input; keep the span status unset.
		span.RecordError(err)
		return Outcome{}, err
	}

	switch {
	case s.board.IsWinningPosition():
		s.state = StateWon
	case s.board.IsFull():
		s.state = StateDraw
	default:
		s.turn = player.Other()
	}

	span.SetAttributes(
		attribute.Int("row", row),
		attribute.String("state", s.state.String()),
	)

	if s.state.IsTerminal() {
		s.recordEnd(ctx, player)
	}

	return Outcome{Player: player, Row: row, Column: col, State: s.state}, nil
}

// recordEnd emits a span summarising the finished game.
func (s *Session) recordEnd(ctx context.Context, last Player) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end")
	defer span.End()

	span.SetAttributes(
		attribute.String("outcome", s.state.String()),
		attribute.Int("moves", s.board.Moves()),
		attribute.Int("game.number", s.games),
	)
	if s.state == StateWon {
		span.SetAttributes(attribute.Int("winner", last.Number()))
	}
}

// Board returns the current game's board. Callers must not drop pieces on it.
func (s *Session) Board() *board.Board { return s.board }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Players returns the seat configuration.
func (s *Session) Players() Players { return s.players }

// State returns the current game's state.
func (s *Session) State() State { return s.state }

// Turn returns the player to move. After a win it is the winner.
func (s *Session) Turn() Player { return s.turn }

// Games returns how many games have been started in this session.
func (s *Session) Games() int { return s.games }

// Winner returns the winning player once the game is won.
func (s *Session) Winner() (Player, bool) {
	if s.state != StateWon {
		return PlayerOne, false
	}
	return s.turn, true
}

package game

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/connectn/internal/gamedata"
	"github.com/samdwyer/connectn/internal/telemetry"
)

// Game wires configuration and the colour palette to a front end.
type Game struct {
	cfg    Config
	colors *gamedata.ColorRegistry
	tracer trace.Tracer
}

// New creates a new game instance from a validated config and the embedded palette.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	colors, err := gamedata.LoadColorRegistry()
	if err != nil {
		return nil, fmt.Errorf("load piece colors: %w", err)
	}

	return &Game{
		cfg:    cfg,
		colors: colors,
		tracer: telemetry.Tracer("game"),
	}, nil
}

// Run starts the front end selected by the config. in and out are only
// used by the text mode; the terminal mode owns the tty.
func (g *Game) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	switch g.cfg.Mode {
	case ModeTerminal:
		return g.RunTerminal(ctx)
	default:
		return g.RunText(ctx, in, out)
	}
}

// Config returns the game configuration.
func (g *Game) Config() Config { return g.cfg }

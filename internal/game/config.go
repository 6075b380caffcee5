package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samdwyer/connectn/internal/board"
)

// Mode selects how the game talks to the players.
type Mode string

const (
	// ModeText is the line-based prompt loop on stdin/stdout.
	ModeText Mode = "text"
	// ModeTerminal is the full-screen tcell interface.
	ModeTerminal Mode = "terminal"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvWidth     = "CONNECTN_WIDTH"
	EnvHeight    = "CONNECTN_HEIGHT"
	EnvRunLength = "CONNECTN_RUN"
	EnvMode      = "CONNECTN_MODE"
)

// ErrUnknownMode is returned for a mode other than text or terminal.
var ErrUnknownMode = errors.New("unknown mode")

// Config holds game configuration options.
type Config struct {
	Width     int // Number of columns
	Height    int // Number of rows
	RunLength int // Aligned pieces needed to win
	Mode      Mode

	// Setup makes the text loop ask for the dimensions and run length
	// before the first game. The terminal mode ignores it.
	Setup bool
}

// DefaultConfig returns the classic 7x6 board with a run of four.
func DefaultConfig() Config {
	return Config{
		Width:     board.DefaultWidth,
		Height:    board.DefaultHeight,
		RunLength: board.DefaultRunLength,
		Mode:      ModeText,
	}
}

// Validate checks the dimensions, run length and mode.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", board.ErrInvalidConfig, c.Width, c.Height)
	}
	if c.RunLength <= 0 {
		return fmt.Errorf("%w: run length %d must be positive", board.ErrInvalidConfig, c.RunLength)
	}
	switch c.Mode {
	case ModeText, ModeTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	return nil
}

// ConfigFromEnv returns DefaultConfig overridden by any CONNECTN_*
// variables lookup finds. Pass os.LookupEnv in production.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	for _, v := range []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvRunLength, &cfg.RunLength},
	} {
		raw, ok := lookup(v.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", v.name, err)
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvMode); ok && raw != "" {
		cfg.Mode = Mode(raw)
	}

	return cfg, nil
}

package game

import (
	"errors"
	"testing"

	"github.com/samdwyer/connectn/internal/board"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 7 || cfg.Height != 6 || cfg.RunLength != 4 {
		t.Errorf("DefaultConfig() = %+v, want 7x6 run 4", cfg)
	}
	if cfg.Mode != ModeText {
		t.Errorf("DefaultConfig().Mode = %q, want %q", cfg.Mode, ModeText)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid terminal", func(c *Config) { c.Mode = ModeTerminal }, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, board.ErrInvalidConfig},
		{"negative height", func(c *Config) { c.Height = -1 }, board.ErrInvalidConfig},
		{"zero run", func(c *Config) { c.RunLength = 0 }, board.ErrInvalidConfig},
		{"unknown mode", func(c *Config) { c.Mode = "gui" }, ErrUnknownMode},
		{"empty mode", func(c *Config) { c.Mode = "" }, ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := ConfigFromEnv(mapLookup(map[string]string{
		EnvWidth:     "9",
		EnvHeight:    "8",
		EnvRunLength: "5",
		EnvMode:      "terminal",
	}))
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}

	want := Config{Width: 9, Height: 8, RunLength: 5, Mode: ModeTerminal}
	if cfg != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv(mapLookup(map[string]string{EnvWidth: ""}))
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ConfigFromEnv() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestConfigFromEnvInvalidNumber(t *testing.T) {
	if _, err := ConfigFromEnv(mapLookup(map[string]string{EnvHeight: "tall"})); err == nil {
		t.Error("ConfigFromEnv() should fail for a non-numeric height")
	}
}

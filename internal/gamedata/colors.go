package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorDef defines a piece colour a player can choose, loaded from JSON.
type ColorDef struct {
	ID    string `json:"id"`    // What the player types to choose it (e.g., "r")
	Name  string `json:"name"`  // Display name (e.g., "Red")
	Glyph string `json:"glyph"` // Single character placed on the board (e.g., "r")
	Color string `json:"color"` // Hex colour used by the terminal renderer
}

// GlyphRune returns the glyph as a rune for the board.
func (c *ColorDef) GlyphRune() rune {
	if len(c.Glyph) == 0 {
		return '?'
	}
	return rune(c.Glyph[0])
}

// TCellColor returns the colour as a tcell.Color.
func (c *ColorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ColorsFile represents the structure of colors.json.
type ColorsFile struct {
	Colors []ColorDef `json:"colors"`
}

// LoadColors loads colour definitions from the embedded colors.json file.
func LoadColors() ([]ColorDef, error) {
	file, err := Load[ColorsFile]("colors.json")
	if err != nil {
		return nil, err
	}
	return file.Colors, nil
}

// ParseHexColor converts a hex colour string ("#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]int32
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid %s component in %s: %w", name, hex, err)
		}
		rgb[i] = int32(v)
	}

	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}

package gamedata

import (
	"errors"
	"fmt"
)

// ColorRegistry holds the loaded piece colours. A game needs exactly two.
type ColorRegistry struct {
	colors []ColorDef
}

// NewColorRegistry creates a registry from loaded colour definitions.
func NewColorRegistry(colors []ColorDef) (*ColorRegistry, error) {
	if len(colors) != 2 {
		return nil, fmt.Errorf("need exactly 2 piece colors, got %d", len(colors))
	}
	if colors[0].GlyphRune() == colors[1].GlyphRune() {
		return nil, fmt.Errorf("piece colors %q and %q share glyph %q", colors[0].ID, colors[1].ID, colors[0].Glyph)
	}
	for _, c := range colors {
		if c.Glyph == "-" {
			return nil, errors.New("piece glyph '-' is reserved for empty cells")
		}
	}
	return &ColorRegistry{colors: colors}, nil
}

// LoadColorRegistry loads and creates a registry from the embedded colors.json.
func LoadColorRegistry() (*ColorRegistry, error) {
	colors, err := LoadColors()
	if err != nil {
		return nil, err
	}
	return NewColorRegistry(colors)
}

// MustLoadColorRegistry loads a registry, panicking on error.
func MustLoadColorRegistry() *ColorRegistry {
	registry, err := LoadColorRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the colour definition with the given ID, or nil if not found.
func (r *ColorRegistry) GetByID(id string) *ColorDef {
	for i := range r.colors {
		if r.colors[i].ID == id {
			return &r.colors[i]
		}
	}
	return nil
}

// Other returns the colour that was not chosen, or nil for an unknown ID.
func (r *ColorRegistry) Other(id string) *ColorDef {
	if r.GetByID(id) == nil {
		return nil
	}
	for i := range r.colors {
		if r.colors[i].ID != id {
			return &r.colors[i]
		}
	}
	return nil
}

// IDs returns the selectable colour IDs in file order.
func (r *ColorRegistry) IDs() []string {
	ids := make([]string, len(r.colors))
	for i, c := range r.colors {
		ids[i] = c.ID
	}
	return ids
}

// All returns all colour definitions.
func (r *ColorRegistry) All() []ColorDef {
	return r.colors
}

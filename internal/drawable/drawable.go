// Package drawable models the layered images a launcher icon is made of.
//
// Every drawable carries an integer level (0-10000 on the host platform)
// which selects the frame or rotation it renders at. Clock icons drive
// their hand layers purely through levels, so this model keeps only what
// is needed to hold and inspect that state.
package drawable

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxLevel is the level at which a Rotate drawable reaches its end angle
const MaxLevel = 10000

// Drawable is a single renderable element whose state is driven by a level
type Drawable interface {
	// Level returns the current level
	Level() int

	// SetLevel updates the level and reports whether it changed
	SetLevel(level int) bool

	// Clone returns an independent copy with the same state
	Clone() Drawable
}

// Color is a solid ARGB fill
type Color struct {
	ARGB  uint32
	level int
}

// NewColor creates a solid drawable
func NewColor(argb uint32) *Color {
	return &Color{ARGB: argb}
}

// Level returns the current level
func (c *Color) Level() int { return c.level }

// SetLevel records the level. A colour renders identically at every level
// but still reports the change so callers see consistent semantics.
func (c *Color) SetLevel(level int) bool {
	if c.level == level {
		return false
	}
	c.level = level
	return true
}

// Clone returns a copy of the colour
func (c *Color) Clone() Drawable {
	cp := *c
	return &cp
}

// Rotate is a layer rotated proportionally to its level, such as a clock hand
type Rotate struct {
	Name        string
	FromDegrees float64
	ToDegrees   float64
	Tint        uint32 // 0 means untinted
	level       int
}

// NewRotate creates a rotating layer sweeping from..to over [0, MaxLevel]
func NewRotate(name string, from, to float64) *Rotate {
	return &Rotate{Name: name, FromDegrees: from, ToDegrees: to}
}

// Level returns the current level
func (r *Rotate) Level() int { return r.level }

// SetLevel updates the rotation level
func (r *Rotate) SetLevel(level int) bool {
	if r.level == level {
		return false
	}
	r.level = level
	return true
}

// Degrees returns the rotation angle for the current level
func (r *Rotate) Degrees() float64 {
	return r.FromDegrees + (r.ToDegrees-r.FromDegrees)*float64(r.level)/MaxLevel
}

// Clone returns a copy of the rotating layer
func (r *Rotate) Clone() Drawable {
	cp := *r
	return &cp
}

// ParseColor parses #RRGGBB or #AARRGGBB. Six digit values are fully opaque.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex = "ff" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}

// FormatColor renders an ARGB value as #AARRGGBB
func FormatColor(argb uint32) string {
	return fmt.Sprintf("#%08X", argb)
}

package provider

import (
	"github.com/zgpcy/clock-icon-animator/internal/drawable"
)

// Metadata is the integer key/value metadata an app or theme attaches to an icon
type Metadata map[string]int

// Int returns the value stored under key, or def when it is missing
func (m Metadata) Int(key string, def int) int {
	if m == nil {
		return def
	}
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Source is the interface every icon source must implement
type Source interface {
	// Name returns a human readable name for the source
	Name() string

	// Packages returns the packages that carry icon metadata, in a stable order
	Packages() []string

	// Metadata returns the icon metadata for a package. The boolean is false
	// when the package is unknown.
	Metadata(pkg string) (Metadata, bool)

	// Drawable loads the drawable for a resource id for the given package.
	// Every call returns an independent copy the caller may mutate.
	Drawable(pkg string, resID int) (drawable.Drawable, error)
}

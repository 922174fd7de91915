package clockicon

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/zgpcy/clock-icon-animator/internal/drawable"
	"github.com/zgpcy/clock-icon-animator/internal/provider"
)

// TimeDrivenVisual is implemented by anything that renders clock levels onto
// its own layer model
type TimeDrivenVisual interface {
	// ApplyLevels pushes the present levels onto the layers named by cfg and
	// reports whether anything visible changed
	ApplyLevels(cfg Config, levels Levels) bool
}

// Icon is an adaptive icon whose foreground hands follow the clock
type Icon struct {
	Package string

	computer   *Computer
	icon       *drawable.Adaptive
	foreground *drawable.Layers

	mu sync.Mutex // guards the layer model
}

// Construct validates metadata and the drawable it references, returning the
// config and the adaptive icon to animate. A valid second hand layer is
// cleared from the foreground when settings disable seconds.
func Construct(meta provider.Metadata, load func(resID int) (drawable.Drawable, error), settings Settings) (Config, *drawable.Adaptive, error) {
	if meta == nil {
		return Config{}, nil, fmt.Errorf("%w: no metadata", ErrConfigInvalid)
	}

	resID := meta.Int(KeyRoundIcon, 0)
	if resID == 0 {
		return Config{}, nil, fmt.Errorf("%w: %s not set", ErrConfigInvalid, KeyRoundIcon)
	}

	d, err := load(resID)
	if err != nil {
		return Config{}, nil, fmt.Errorf("%w: loading drawable %d: %w", ErrConfigInvalid, resID, err)
	}

	icon, ok := d.(*drawable.Adaptive)
	if !ok || icon == nil {
		return Config{}, nil, fmt.Errorf("%w: drawable %d is not an adaptive icon", ErrConfigInvalid, resID)
	}
	foreground, ok := icon.Foreground.(*drawable.Layers)
	if !ok || foreground == nil {
		return Config{}, nil, fmt.Errorf("%w: drawable %d foreground is not a layer stack", ErrConfigInvalid, resID)
	}

	cfg := configFromMetadata(meta, foreground.NumberOfLayers())
	if settings.DisableSeconds && cfg.secondLayer != InvalidIndex {
		foreground.SetLayer(cfg.secondLayer, nil)
		cfg.secondLayer = InvalidIndex
	}

	return cfg, icon, nil
}

// Load builds the clock icon for a package of src. Hand layers keep their
// resource levels until the first Tick, so callers tick before rendering.
func Load(src provider.Source, pkg string, settings Settings) (*Icon, error) {
	meta, ok := src.Metadata(pkg)
	if !ok {
		return nil, fmt.Errorf("%w: package %q not found in %s", ErrConfigInvalid, pkg, src.Name())
	}

	cfg, icon, err := Construct(meta, func(resID int) (drawable.Drawable, error) {
		return src.Drawable(pkg, resID)
	}, settings)
	if err != nil {
		return nil, err
	}

	return &Icon{
		Package:    pkg,
		computer:   NewComputer(cfg),
		icon:       icon,
		foreground: icon.Foreground.(*drawable.Layers),
	}, nil
}

// LoadAll loads every package of src. Packages that cannot be animated are
// returned in failed, keyed by package, and should be shown statically.
func LoadAll(src provider.Source, settings Settings) (icons []*Icon, failed map[string]error) {
	failed = make(map[string]error)
	for _, pkg := range src.Packages() {
		icon, err := Load(src, pkg, settings)
		if err != nil {
			failed[pkg] = err
			continue
		}
		icons = append(icons, icon)
	}
	sort.Slice(icons, func(i, j int) bool { return icons[i].Package < icons[j].Package })
	return icons, failed
}

// Config returns the icon's clock config
func (i *Icon) Config() Config {
	return i.computer.Config()
}

// Tick computes the levels for now and applies them to the foreground.
// Changed is set when either the levels or the layer model changed.
func (i *Icon) Tick(now time.Time) Levels {
	levels := i.computer.Compute(now)
	if i.ApplyLevels(i.computer.Config(), levels) {
		levels.Changed = true
	}
	return levels
}

// Levels returns the most recent tick's levels
func (i *Icon) Levels() (Levels, bool) {
	return i.computer.Last()
}

// ApplyLevels implements TimeDrivenVisual over the icon's foreground stack
func (i *Icon) ApplyLevels(cfg Config, levels Levels) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	invalidate := false
	for _, h := range Hands {
		level, ok := levels.Get(h)
		if !ok || !cfg.Has(h) {
			continue
		}
		if i.foreground.SetLayerLevel(cfg.Layer(h), level) {
			invalidate = true
		}
	}
	return invalidate
}

// Degrees returns the rotation of a hand's layer. The boolean is false when
// the hand is absent or its layer does not rotate.
func (i *Icon) Degrees(h Hand) (float64, bool) {
	cfg := i.computer.Config()
	if !cfg.Has(h) {
		return 0, false
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	r, ok := i.foreground.Layer(cfg.Layer(h)).(*drawable.Rotate)
	if !ok {
		return 0, false
	}
	return r.Degrees(), true
}

// Drawable returns the animated icon. Callers must not mutate it while ticks run.
func (i *Icon) Drawable() *drawable.Adaptive {
	return i.icon
}

var _ TimeDrivenVisual = (*Icon)(nil)

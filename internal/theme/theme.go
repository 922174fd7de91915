// Package theme loads icon theme packs: drawable resources and the clock
// metadata attached to each package.
package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/zgpcy/clock-icon-animator/internal/drawable"
	"github.com/zgpcy/clock-icon-animator/internal/provider"
	"gopkg.in/yaml.v3"
)

// Default plate colours used by themed icons when the pack does not set them
const (
	DefaultPlateBackground = "#FF202124"
	DefaultPlateForeground = "#FFE8EAED"
)

// ErrResourceNotFound is returned when a drawable id is not defined by the pack
var ErrResourceNotFound = errors.New("resource not found")

// Document is the on-disk layout of a theme pack
type Document struct {
	Name      string         `yaml:"name"`
	Plate     Plate          `yaml:"plate"`
	Drawables []DrawableSpec `yaml:"drawables"`
	Icons     []IconSpec     `yaml:"icons"`
}

// Plate holds the colours themed icons are rendered with
type Plate struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// DrawableSpec defines one drawable resource. With a background it is an
// adaptive icon whose foreground is either the layer stack or a single
// foreground layer. Without one it is a bare layer stack.
type DrawableSpec struct {
	ID         int         `yaml:"id"`
	Name       string      `yaml:"name"`
	Background *LayerSpec  `yaml:"background"`
	Foreground *LayerSpec  `yaml:"foreground"`
	Layers     []LayerSpec `yaml:"layers"`
}

// LayerSpec is a single layer: exactly one of Color or Rotate must be set
type LayerSpec struct {
	Name   string      `yaml:"name"`
	Color  string      `yaml:"color"`
	Rotate *RotateSpec `yaml:"rotate"`
}

// RotateSpec describes a layer rotating over the full level range
type RotateSpec struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// IconSpec attaches clock metadata to a package. Themed icons list their
// metadata as flat key/value pairs and are drawn on the pack's plate colours.
type IconSpec struct {
	Package  string         `yaml:"package"`
	Metadata map[string]int `yaml:"metadata"`
	Themed   []any          `yaml:"themed"`
}

type iconEntry struct {
	meta   provider.Metadata
	themed bool
}

// Pack is a parsed theme pack. It implements provider.Source.
type Pack struct {
	name      string
	plateBG   uint32
	plateFG   uint32
	drawables map[int]drawable.Drawable
	icons     map[string]iconEntry
	order     []string
}

// Load reads and parses a theme pack from a YAML file
func Load(path string) (*Pack, error) {
	// #nosec G304 -- Theme path is provided by the administrator via config
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	pack, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	return pack, nil
}

// Parse builds a pack from YAML
func Parse(data []byte) (*Pack, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return New(doc)
}

// New validates a document and builds the pack
func New(doc Document) (*Pack, error) {
	p := &Pack{
		name:      doc.Name,
		drawables: make(map[int]drawable.Drawable, len(doc.Drawables)),
		icons:     make(map[string]iconEntry, len(doc.Icons)),
	}
	if p.name == "" {
		p.name = "unnamed"
	}

	var err error
	if p.plateBG, err = parseOr(doc.Plate.Background, DefaultPlateBackground); err != nil {
		return nil, fmt.Errorf("plate background: %w", err)
	}
	if p.plateFG, err = parseOr(doc.Plate.Foreground, DefaultPlateForeground); err != nil {
		return nil, fmt.Errorf("plate foreground: %w", err)
	}

	for i, spec := range doc.Drawables {
		if spec.ID == 0 {
			return nil, fmt.Errorf("drawable at index %d has no id", i)
		}
		if _, dup := p.drawables[spec.ID]; dup {
			return nil, fmt.Errorf("duplicate drawable id %d", spec.ID)
		}
		d, err := buildDrawable(spec)
		if err != nil {
			return nil, fmt.Errorf("drawable %d: %w", spec.ID, err)
		}
		p.drawables[spec.ID] = d
	}

	for i, spec := range doc.Icons {
		if spec.Package == "" {
			return nil, fmt.Errorf("icon at index %d has empty package", i)
		}
		if _, dup := p.icons[spec.Package]; dup {
			return nil, fmt.Errorf("duplicate icon package %q", spec.Package)
		}
		entry, err := buildIcon(spec)
		if err != nil {
			return nil, fmt.Errorf("icon %q: %w", spec.Package, err)
		}
		p.icons[spec.Package] = entry
		p.order = append(p.order, spec.Package)
	}

	return p, nil
}

func parseOr(value, def string) (uint32, error) {
	if value == "" {
		value = def
	}
	return drawable.ParseColor(value)
}

func buildDrawable(spec DrawableSpec) (drawable.Drawable, error) {
	var stack *drawable.Layers
	if len(spec.Layers) > 0 {
		layers := make([]drawable.Drawable, 0, len(spec.Layers))
		for i, ls := range spec.Layers {
			l, err := buildLayer(ls)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			layers = append(layers, l)
		}
		stack = drawable.NewLayers(layers...)
	}

	if spec.Background == nil {
		if spec.Foreground != nil {
			return nil, errors.New("foreground requires a background")
		}
		if stack == nil {
			return nil, errors.New("no layers defined")
		}
		return stack, nil
	}

	bg, err := buildLayer(*spec.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	switch {
	case stack != nil && spec.Foreground != nil:
		return nil, errors.New("set either foreground or layers, not both")
	case stack != nil:
		return drawable.NewAdaptive(bg, stack), nil
	case spec.Foreground != nil:
		fg, err := buildLayer(*spec.Foreground)
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		return drawable.NewAdaptive(bg, fg), nil
	default:
		return nil, errors.New("adaptive icon has no foreground")
	}
}

func buildLayer(spec LayerSpec) (drawable.Drawable, error) {
	switch {
	case spec.Color != "" && spec.Rotate != nil:
		return nil, errors.New("layer sets both color and rotate")
	case spec.Color != "":
		argb, err := drawable.ParseColor(spec.Color)
		if err != nil {
			return nil, err
		}
		return drawable.NewColor(argb), nil
	case spec.Rotate != nil:
		return drawable.NewRotate(spec.Name, spec.Rotate.From, spec.Rotate.To), nil
	default:
		return nil, errors.New("layer sets neither color nor rotate")
	}
}

func buildIcon(spec IconSpec) (iconEntry, error) {
	switch {
	case spec.Metadata != nil && spec.Themed != nil:
		return iconEntry{}, errors.New("set either metadata or themed, not both")
	case spec.Themed != nil:
		meta, err := PairsToMetadata(spec.Themed)
		if err != nil {
			return iconEntry{}, err
		}
		return iconEntry{meta: meta, themed: true}, nil
	default:
		return iconEntry{meta: provider.Metadata(spec.Metadata)}, nil
	}
}

// PairsToMetadata converts a flat key, value, key, value list into metadata.
// Keys must be strings and values integers.
func PairsToMetadata(pairs []any) (provider.Metadata, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("themed pairs must have an even length, got %d", len(pairs))
	}

	meta := make(provider.Metadata, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok || key == "" {
			return nil, fmt.Errorf("themed entry %d: key must be a non-empty string, got %v", i, pairs[i])
		}
		value, ok := pairs[i+1].(int)
		if !ok {
			return nil, fmt.Errorf("themed entry %d: value for %s must be an integer, got %v", i+1, key, pairs[i+1])
		}
		meta[key] = value
	}
	return meta, nil
}

// Name returns the pack name
func (p *Pack) Name() string {
	return p.name
}

// Packages returns every package with icon metadata in document order
func (p *Pack) Packages() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Metadata returns the metadata for a package
func (p *Pack) Metadata(pkg string) (provider.Metadata, bool) {
	entry, ok := p.icons[pkg]
	if !ok {
		return nil, false
	}
	meta := make(provider.Metadata, len(entry.meta))
	for k, v := range entry.meta {
		meta[k] = v
	}
	return meta, true
}

// Themed reports whether a package's icon is drawn on the plate colours
func (p *Pack) Themed(pkg string) bool {
	return p.icons[pkg].themed
}

// Drawable returns a fresh copy of a drawable resource. Themed packages get
// the resource as the tinted foreground of a plate-coloured adaptive icon.
func (p *Pack) Drawable(pkg string, resID int) (drawable.Drawable, error) {
	proto, ok := p.drawables[resID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d in pack %s", ErrResourceNotFound, resID, p.name)
	}

	d := proto.Clone()
	if !p.icons[pkg].themed {
		return d, nil
	}

	if stack, ok := d.(*drawable.Layers); ok {
		stack.SetTint(p.plateFG)
	}
	return drawable.NewAdaptive(drawable.NewColor(p.plateBG), d), nil
}

var _ provider.Source = (*Pack)(nil)

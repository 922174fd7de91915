package drawable

// Layers is a stack of drawables rendered in order. A nil slot is a cleared
// layer and renders nothing.
type Layers struct {
	layers []Drawable
	level  int
}

// NewLayers creates a stack from the given layers
func NewLayers(layers ...Drawable) *Layers {
	return &Layers{layers: layers}
}

// NumberOfLayers returns the number of slots, cleared ones included
func (l *Layers) NumberOfLayers() int {
	return len(l.layers)
}

// Layer returns the drawable at index, or nil if cleared or out of range
func (l *Layers) Layer(index int) Drawable {
	if index < 0 || index >= len(l.layers) {
		return nil
	}
	return l.layers[index]
}

// SetLayer replaces the drawable at index. Passing nil clears the slot.
// Out of range indices are ignored.
func (l *Layers) SetLayer(index int, d Drawable) {
	if index < 0 || index >= len(l.layers) {
		return
	}
	l.layers[index] = d
}

// SetLayerLevel sets the level of a single layer and reports whether it changed.
// Cleared or missing layers never change.
func (l *Layers) SetLayerLevel(index, level int) bool {
	d := l.Layer(index)
	if d == nil {
		return false
	}
	return d.SetLevel(level)
}

// SetTint applies a tint to every rotating layer in the stack
func (l *Layers) SetTint(argb uint32) {
	for _, d := range l.layers {
		if r, ok := d.(*Rotate); ok {
			r.Tint = argb
		}
	}
}

// Level returns the level of the stack itself
func (l *Layers) Level() int { return l.level }

// SetLevel propagates the level to every layer, reporting true if any changed
func (l *Layers) SetLevel(level int) bool {
	changed := l.level != level
	l.level = level
	for _, d := range l.layers {
		if d != nil && d.SetLevel(level) {
			changed = true
		}
	}
	return changed
}

// Clone deep-copies the stack
func (l *Layers) Clone() Drawable {
	cp := &Layers{layers: make([]Drawable, len(l.layers)), level: l.level}
	for i, d := range l.layers {
		if d != nil {
			cp.layers[i] = d.Clone()
		}
	}
	return cp
}

// Adaptive is a two-layer icon made of a background and a foreground
type Adaptive struct {
	Background Drawable
	Foreground Drawable
	level      int
}

// NewAdaptive creates an adaptive icon
func NewAdaptive(background, foreground Drawable) *Adaptive {
	return &Adaptive{Background: background, Foreground: foreground}
}

// Level returns the level of the icon
func (a *Adaptive) Level() int { return a.level }

// SetLevel records the icon level without touching its children
func (a *Adaptive) SetLevel(level int) bool {
	if a.level == level {
		return false
	}
	a.level = level
	return true
}

// Clone deep-copies the icon
func (a *Adaptive) Clone() Drawable {
	cp := &Adaptive{level: a.level}
	if a.Background != nil {
		cp.Background = a.Background.Clone()
	}
	if a.Foreground != nil {
		cp.Foreground = a.Foreground.Clone()
	}
	return cp
}

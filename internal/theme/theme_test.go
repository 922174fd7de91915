package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zgpcy/clock-icon-animator/internal/clockicon"
	"github.com/zgpcy/clock-icon-animator/internal/drawable"
)

const stockClock = "com.google.android.deskclock"
const themedClock = "com.android.deskclock"

func TestLoad_ExamplePack(t *testing.T) {
	pack, err := Load(filepath.Join("testdata", "theme.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Pixel clocks", pack.Name())
	assert.Equal(t, []string{stockClock, themedClock}, pack.Packages())

	meta, ok := pack.Metadata(stockClock)
	require.True(t, ok)
	assert.Equal(t, 2131230900, meta.Int(clockicon.KeyRoundIcon, 0))
	assert.Equal(t, 10, meta.Int(clockicon.KeyDefaultHour, 0))

	assert.False(t, pack.Themed(stockClock))
	assert.True(t, pack.Themed(themedClock))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read theme file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drawables: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPack_DrawableReturnsFreshCopies(t *testing.T) {
	pack, err := Load(filepath.Join("testdata", "theme.yaml"))
	require.NoError(t, err)

	a, err := pack.Drawable(stockClock, 2131230900)
	require.NoError(t, err)
	b, err := pack.Drawable(stockClock, 2131230900)
	require.NoError(t, err)

	a.(*drawable.Adaptive).Foreground.(*drawable.Layers).SetLayer(3, nil)
	assert.NotNil(t, b.(*drawable.Adaptive).Foreground.(*drawable.Layers).Layer(3))
}

func TestPack_DrawableNotFound(t *testing.T) {
	pack, err := Load(filepath.Join("testdata", "theme.yaml"))
	require.NoError(t, err)

	_, err = pack.Drawable(stockClock, 42)
	assert.True(t, errors.Is(err, ErrResourceNotFound))
}

func TestPack_ThemedIconIsPlated(t *testing.T) {
	pack, err := Load(filepath.Join("testdata", "theme.yaml"))
	require.NoError(t, err)

	d, err := pack.Drawable(themedClock, 2131230901)
	require.NoError(t, err)

	icon, ok := d.(*drawable.Adaptive)
	require.True(t, ok, "themed drawable should be wrapped in an adaptive icon")

	bg, ok := icon.Background.(*drawable.Color)
	require.True(t, ok)
	assert.Equal(t, uint32(0xFF202124), bg.ARGB)

	fg := icon.Foreground.(*drawable.Layers)
	hour := fg.Layer(0).(*drawable.Rotate)
	assert.Equal(t, uint32(0xFFE8EAED), hour.Tint)
}

func TestPack_LoadsAsClockIcons(t *testing.T) {
	pack, err := Load(filepath.Join("testdata", "theme.yaml"))
	require.NoError(t, err)

	icons, failed := clockicon.LoadAll(pack, clockicon.DefaultSettings())
	assert.Empty(t, failed)
	require.Len(t, icons, 2)

	for _, icon := range icons {
		cfg := icon.Config()
		assert.True(t, cfg.Has(clockicon.HandHour), icon.Package)
		assert.True(t, cfg.Has(clockicon.HandMinute), icon.Package)
		assert.False(t, cfg.Has(clockicon.HandSecond), icon.Package)
	}
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "drawable without id",
			yaml:    "drawables:\n  - layers:\n      - color: \"#FFFFFF\"\n",
			wantErr: "has no id",
		},
		{
			name: "duplicate drawable id",
			yaml: `
drawables:
  - id: 1
    layers: [{color: "#FFFFFF"}]
  - id: 1
    layers: [{color: "#000000"}]
`,
			wantErr: "duplicate drawable id",
		},
		{
			name:    "layer with both kinds",
			yaml:    "drawables:\n  - id: 1\n    layers:\n      - color: \"#FFFFFF\"\n        rotate: {from: 0, to: 1}\n",
			wantErr: "both color and rotate",
		},
		{
			name:    "empty layer",
			yaml:    "drawables:\n  - id: 1\n    layers:\n      - name: nothing\n",
			wantErr: "neither color nor rotate",
		},
		{
			name:    "bad color",
			yaml:    "drawables:\n  - id: 1\n    layers:\n      - color: \"blue\"\n",
			wantErr: "invalid color",
		},
		{
			name:    "no layers",
			yaml:    "drawables:\n  - id: 1\n",
			wantErr: "no layers defined",
		},
		{
			name:    "foreground and layers",
			yaml:    "drawables:\n  - id: 1\n    background: {color: \"#FFFFFF\"}\n    foreground: {color: \"#FFFFFF\"}\n    layers: [{color: \"#FFFFFF\"}]\n",
			wantErr: "not both",
		},
		{
			name:    "duplicate package",
			yaml:    "icons:\n  - package: a\n    metadata: {k: 1}\n  - package: a\n    metadata: {k: 2}\n",
			wantErr: "duplicate icon package",
		},
		{
			name:    "empty package",
			yaml:    "icons:\n  - metadata: {k: 1}\n",
			wantErr: "empty package",
		},
		{
			name:    "odd themed pairs",
			yaml:    "icons:\n  - package: a\n    themed: [key, 1, dangling]\n",
			wantErr: "even length",
		},
		{
			name:    "metadata and themed",
			yaml:    "icons:\n  - package: a\n    metadata: {k: 1}\n    themed: [key, 1]\n",
			wantErr: "not both",
		},
		{
			name:    "bad plate",
			yaml:    "plate:\n  background: \"#12\"\n",
			wantErr: "plate background",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPairsToMetadata(t *testing.T) {
	meta, err := PairsToMetadata([]any{"a", 1, "b", 2})
	require.NoError(t, err)
	assert.Equal(t, 1, meta["a"])
	assert.Equal(t, 2, meta["b"])

	_, err = PairsToMetadata([]any{1, 1})
	assert.ErrorContains(t, err, "key must be a non-empty string")

	_, err = PairsToMetadata([]any{"a", "one"})
	assert.ErrorContains(t, err, "must be an integer")
}

func TestParse_NonAdaptiveIconFailsAsClock(t *testing.T) {
	pack, err := Parse([]byte(`
drawables:
  - id: 7
    layers:
      - rotate: {from: 0, to: 5000}
icons:
  - package: flat.clock
    metadata:
      com.android.launcher3.LEVEL_PER_TICK_ICON_ROUND: 7
      com.android.launcher3.HOUR_LAYER_INDEX: 0
`))
	require.NoError(t, err)

	_, err = clockicon.Load(pack, "flat.clock", clockicon.DefaultSettings())
	assert.ErrorIs(t, err, clockicon.ErrConfigInvalid)
}

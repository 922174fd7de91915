package clockicon

import (
	"errors"
	"time"

	"github.com/zgpcy/clock-icon-animator/internal/provider"
)

// InvalidIndex marks a hand whose layer is absent
const InvalidIndex = -1

// LevelsPerSecond is the number of levels the second hand advances per second
const LevelsPerSecond = 10

// Launcher metadata keys describing an animated clock icon
const (
	launcherPackage = "com.android.launcher3"

	KeyRoundIcon     = launcherPackage + ".LEVEL_PER_TICK_ICON_ROUND"
	KeyHourLayer     = launcherPackage + ".HOUR_LAYER_INDEX"
	KeyMinuteLayer   = launcherPackage + ".MINUTE_LAYER_INDEX"
	KeySecondLayer   = launcherPackage + ".SECOND_LAYER_INDEX"
	KeyDefaultHour   = launcherPackage + ".DEFAULT_HOUR"
	KeyDefaultMinute = launcherPackage + ".DEFAULT_MINUTE"
	KeyDefaultSecond = launcherPackage + ".DEFAULT_SECOND"
)

// Tick cadences
const (
	MinuteTick = time.Minute
	SecondTick = 200 * time.Millisecond
)

// ErrConfigInvalid is returned when an icon cannot be animated as a clock.
// Callers should fall back to rendering the icon statically.
var ErrConfigInvalid = errors.New("clock icon config invalid")

// Hand identifies one of the three clock hands
type Hand string

// Clock hands
const (
	HandHour   Hand = "hour"
	HandMinute Hand = "minute"
	HandSecond Hand = "second"
)

// Hands lists every hand in display order
var Hands = []Hand{HandHour, HandMinute, HandSecond}

// Settings is the process-wide clock behaviour passed to construction
type Settings struct {
	// DisableSeconds drops the second hand from every icon, trading accuracy
	// for a once-per-minute tick
	DisableSeconds bool

	// TickInterval overrides the tick cadence. Zero selects the default for
	// DisableSeconds.
	TickInterval time.Duration
}

// DefaultSettings returns settings with seconds disabled
func DefaultSettings() Settings {
	return Settings{DisableSeconds: true}
}

// DefaultTickInterval returns the cadence needed to keep hands accurate
func DefaultTickInterval(disableSeconds bool) time.Duration {
	if disableSeconds {
		return MinuteTick
	}
	return SecondTick
}

// Interval returns the effective tick cadence
func (s Settings) Interval() time.Duration {
	if s.TickInterval > 0 {
		return s.TickInterval
	}
	return DefaultTickInterval(s.DisableSeconds)
}

// Config describes which foreground layers hold clock hands and the time the
// artwork shows at level 0. It is immutable once built.
type Config struct {
	hourLayer   int
	minuteLayer int
	secondLayer int

	defaultHour   int
	defaultMinute int
	defaultSecond int

	layerCount int
}

// NewConfig reads the hand indices and default time from metadata and
// normalises every index outside [0, layerCount) to InvalidIndex. With
// seconds disabled the second hand is always absent.
func NewConfig(meta provider.Metadata, layerCount int, settings Settings) Config {
	cfg := configFromMetadata(meta, layerCount)
	if settings.DisableSeconds {
		cfg.secondLayer = InvalidIndex
	}
	return cfg
}

func configFromMetadata(meta provider.Metadata, layerCount int) Config {
	return Config{
		hourLayer:     validIndex(meta.Int(KeyHourLayer, InvalidIndex), layerCount),
		minuteLayer:   validIndex(meta.Int(KeyMinuteLayer, InvalidIndex), layerCount),
		secondLayer:   validIndex(meta.Int(KeySecondLayer, InvalidIndex), layerCount),
		defaultHour:   wrap(meta.Int(KeyDefaultHour, 0), 12),
		defaultMinute: wrap(meta.Int(KeyDefaultMinute, 0), 60),
		defaultSecond: wrap(meta.Int(KeyDefaultSecond, 0), 60),
		layerCount:    layerCount,
	}
}

func validIndex(index, layerCount int) int {
	if index < 0 || index >= layerCount {
		return InvalidIndex
	}
	return index
}

// wrap reduces v into [0, n) so out of range defaults cannot push levels negative
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// Layer returns the layer index driven by a hand, or InvalidIndex
func (c Config) Layer(h Hand) int {
	switch h {
	case HandHour:
		return c.hourLayer
	case HandMinute:
		return c.minuteLayer
	case HandSecond:
		return c.secondLayer
	}
	return InvalidIndex
}

// Has reports whether a hand is animated
func (c Config) Has(h Hand) bool {
	return c.Layer(h) != InvalidIndex
}

// LayerCount returns the number of foreground layers the config was validated against
func (c Config) LayerCount() int { return c.layerCount }

// DefaultTime returns the time the artwork shows at level 0
func (c Config) DefaultTime() (hour, minute, second int) {
	return c.defaultHour, c.defaultMinute, c.defaultSecond
}

// Levels holds the hand levels for one tick. A level is meaningful only when
// its Has flag is set.
type Levels struct {
	Hour      int
	Minute    int
	Second    int
	HasHour   bool
	HasMinute bool
	HasSecond bool

	// Changed is true when any present level differs from the previous tick
	Changed bool
}

// Get returns the level of a hand and whether that hand is present
func (l Levels) Get(h Hand) (int, bool) {
	switch h {
	case HandHour:
		return l.Hour, l.HasHour
	case HandMinute:
		return l.Minute, l.HasMinute
	case HandSecond:
		return l.Second, l.HasSecond
	}
	return 0, false
}

// sameLevels compares present levels only
func sameLevels(a, b Levels) bool {
	return a.HasHour == b.HasHour && a.HasMinute == b.HasMinute && a.HasSecond == b.HasSecond &&
		(!a.HasHour || a.Hour == b.Hour) &&
		(!a.HasMinute || a.Minute == b.Minute) &&
		(!a.HasSecond || a.Second == b.Second)
}

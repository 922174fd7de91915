package collector

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zgpcy/clock-icon-animator/internal/clock"
	"github.com/zgpcy/clock-icon-animator/internal/clockicon"
	"github.com/zgpcy/clock-icon-animator/internal/logger"
	"github.com/zgpcy/clock-icon-animator/internal/version"
)

// IconSnapshot is the state of one animated icon after the latest tick
type IconSnapshot struct {
	Package string             `json:"package"`
	Levels  map[string]int     `json:"levels"`
	Layers  map[string]int     `json:"layers"`
	Degrees map[string]float64 `json:"degrees,omitempty"`
	Redraws uint64             `json:"redraws"`
}

// StaticIcon is an icon that could not be animated and is shown as-is
type StaticIcon struct {
	Package string `json:"package"`
	Reason  string `json:"reason"`
}

// ClockCollector drives clock icons on a ticker and implements prometheus.Collector
type ClockCollector struct {
	icons    []*clockicon.Icon
	static   []StaticIcon
	settings clockicon.Settings
	logger   *logger.Logger
	clock    clock.Clock // Time provider for testing

	// Metrics
	levelMetric        *prometheus.Desc
	degreesMetric      *prometheus.Desc
	iconsMetric        *prometheus.Desc
	lastTickMetric     *prometheus.Desc
	tickDurationMetric *prometheus.Desc
	ticksTotal         prometheus.Counter
	redrawsTotal       *prometheus.CounterVec
	buildInfo          *prometheus.GaugeVec // Build version information

	// State
	mu               sync.RWMutex
	lastTick         time.Time
	lastTickDuration time.Duration
	redraws          map[string]uint64
	tickStarted      atomic.Bool // Prevent multiple tick goroutines
	isReady          bool
}

// NewClockCollector creates a collector for the loaded icons. failed lists
// the packages that fell back to static rendering. A nil clk uses the
// system clock.
func NewClockCollector(icons []*clockicon.Icon, failed map[string]error, settings clockicon.Settings, clk clock.Clock, log *logger.Logger) *ClockCollector {
	if clk == nil {
		clk = clock.New()
	}

	static := make([]StaticIcon, 0, len(failed))
	for pkg, err := range failed {
		static = append(static, StaticIcon{Package: pkg, Reason: err.Error()})
	}
	sort.Slice(static, func(i, j int) bool { return static[i].Package < static[j].Package })

	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "clock_icon_build_info",
			Help: "Build version information",
		},
		[]string{"version", "git_commit", "build_date", "go_version"},
	)
	info := version.Get()
	buildInfo.With(prometheus.Labels{
		"version":    info.Version,
		"git_commit": info.GitCommit,
		"build_date": info.BuildDate,
		"go_version": info.GoVersion,
	}).Set(1)

	return &ClockCollector{
		icons:    icons,
		static:   static,
		settings: settings,
		logger:   log,
		clock:    clk,
		levelMetric: prometheus.NewDesc(
			"clock_icon_level",
			"Current level of a clock hand layer",
			[]string{"icon", "hand"},
			nil,
		),
		degreesMetric: prometheus.NewDesc(
			"clock_icon_hand_degrees",
			"Current rotation of a clock hand layer in degrees",
			[]string{"icon", "hand"},
			nil,
		),
		iconsMetric: prometheus.NewDesc(
			"clock_icon_icons",
			"Number of clock icons by state (animated or static fallback)",
			[]string{"state"},
			nil,
		),
		lastTickMetric: prometheus.NewDesc(
			"clock_icon_last_tick_timestamp_seconds",
			"Unix timestamp of the last tick",
			nil,
			nil,
		),
		tickDurationMetric: prometheus.NewDesc(
			"clock_icon_tick_duration_seconds",
			"Duration of the last tick in seconds",
			nil,
			nil,
		),
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clock_icon_ticks_total",
			Help: "Total number of ticks since startup",
		}),
		redrawsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clock_icon_redraws_total",
				Help: "Total number of ticks that changed an icon and required a redraw",
			},
			[]string{"icon"},
		),
		buildInfo: buildInfo,
		redraws:   make(map[string]uint64, len(icons)),
	}
}

// Describe implements prometheus.Collector
func (c *ClockCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.levelMetric
	ch <- c.degreesMetric
	ch <- c.iconsMetric
	ch <- c.lastTickMetric
	ch <- c.tickDurationMetric
	c.ticksTotal.Describe(ch)
	c.redrawsTotal.Describe(ch)
	c.buildInfo.Describe(ch)
}

// Collect implements prometheus.Collector
func (c *ClockCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, icon := range c.icons {
		levels, ok := icon.Levels()
		if !ok {
			continue
		}
		for _, hand := range clockicon.Hands {
			level, present := levels.Get(hand)
			if !present {
				continue
			}
			ch <- prometheus.MustNewConstMetric(
				c.levelMetric,
				prometheus.GaugeValue,
				float64(level),
				icon.Package,
				string(hand),
			)
			if deg, ok := icon.Degrees(hand); ok {
				ch <- prometheus.MustNewConstMetric(
					c.degreesMetric,
					prometheus.GaugeValue,
					deg,
					icon.Package,
					string(hand),
				)
			}
		}
	}

	ch <- prometheus.MustNewConstMetric(c.iconsMetric, prometheus.GaugeValue, float64(len(c.icons)), "animated")
	ch <- prometheus.MustNewConstMetric(c.iconsMetric, prometheus.GaugeValue, float64(len(c.static)), "static")

	if !c.lastTick.IsZero() {
		ch <- prometheus.MustNewConstMetric(
			c.lastTickMetric,
			prometheus.GaugeValue,
			float64(c.lastTick.Unix()),
		)
	}

	ch <- prometheus.MustNewConstMetric(
		c.tickDurationMetric,
		prometheus.GaugeValue,
		c.lastTickDuration.Seconds(),
	)

	c.ticksTotal.Collect(ch)
	c.redrawsTotal.Collect(ch)
	c.buildInfo.Collect(ch)
}

// StartTicking performs an immediate tick, then ticks on the configured
// interval until ctx is cancelled. Uses atomic flag to prevent multiple tick goroutines.
func (c *ClockCollector) StartTicking(ctx context.Context) {
	if !c.tickStarted.CompareAndSwap(false, true) {
		c.logger.Warn("Ticking already started, skipping")
		return
	}

	c.Tick()

	interval := c.settings.Interval()
	ticker := c.clock.NewTicker(interval)
	c.logger.Info("Clock ticking started",
		"interval", interval.String(),
		"animated_icons", len(c.icons),
		"static_icons", len(c.static))

	go func() {
		defer ticker.Stop()
		defer c.tickStarted.Store(false) // Reset on exit
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Stopping clock ticking")
				return
			case <-ticker.Chan():
				c.Tick()
			}
		}
	}()
}

// Tick recomputes every icon for the current time and counts the icons that
// need a redraw
func (c *ClockCollector) Tick() {
	start := c.clock.Now()

	var changed []string
	for _, icon := range c.icons {
		levels := icon.Tick(start)
		if levels.Changed {
			changed = append(changed, icon.Package)
			c.redrawsTotal.WithLabelValues(icon.Package).Inc()
		}
	}
	c.ticksTotal.Inc()
	duration := c.clock.Since(start)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastTick = start
	c.lastTickDuration = duration
	for _, pkg := range changed {
		c.redraws[pkg]++
	}
	c.isReady = true

	c.logger.Debug("Tick complete",
		"time", start.Format(time.TimeOnly),
		"redrawn", len(changed),
		"duration_seconds", duration.Seconds())
}

// IsReady returns true once the first tick has completed
func (c *ClockCollector) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// LastTick returns the wall-clock time of the last tick
func (c *ClockCollector) LastTick() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastTick
}

// Interval returns the tick cadence
func (c *ClockCollector) Interval() time.Duration {
	return c.settings.Interval()
}

// Snapshot returns the state of every animated icon, sorted by package
func (c *ClockCollector) Snapshot() []IconSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]IconSnapshot, 0, len(c.icons))
	for _, icon := range c.icons {
		out = append(out, c.snapshotLocked(icon))
	}
	return out
}

// Icon returns the snapshot of one animated icon
func (c *ClockCollector) Icon(pkg string) (IconSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, icon := range c.icons {
		if icon.Package == pkg {
			return c.snapshotLocked(icon), true
		}
	}
	return IconSnapshot{}, false
}

// Static returns the icons that fell back to static rendering
func (c *ClockCollector) Static() []StaticIcon {
	out := make([]StaticIcon, len(c.static))
	copy(out, c.static)
	return out
}

func (c *ClockCollector) snapshotLocked(icon *clockicon.Icon) IconSnapshot {
	cfg := icon.Config()
	snap := IconSnapshot{
		Package: icon.Package,
		Levels:  make(map[string]int),
		Layers:  make(map[string]int),
		Redraws: c.redraws[icon.Package],
	}

	levels, ticked := icon.Levels()
	for _, hand := range clockicon.Hands {
		if !cfg.Has(hand) {
			continue
		}
		snap.Layers[string(hand)] = cfg.Layer(hand)
		if !ticked {
			continue
		}
		if level, ok := levels.Get(hand); ok {
			snap.Levels[string(hand)] = level
		}
		if deg, ok := icon.Degrees(hand); ok {
			if snap.Degrees == nil {
				snap.Degrees = make(map[string]float64)
			}
			snap.Degrees[string(hand)] = deg
		}
	}
	return snap
}

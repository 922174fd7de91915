// Package collector drives clock icons and exposes their state as Prometheus metrics.
//
// The ClockCollector owns every animated icon loaded from the theme pack.
// StartTicking ticks once immediately and then on the configured interval
// (one minute with seconds disabled, 200ms otherwise). Each tick computes
// the hand levels for every icon and counts a redraw for each icon whose
// levels changed.
//
// Exported metrics:
//   - clock_icon_level{icon,hand}: current level of each hand layer
//   - clock_icon_hand_degrees{icon,hand}: rotation of each rotating hand layer
//   - clock_icon_icons{state}: animated and static icon counts
//   - clock_icon_ticks_total: ticks since startup
//   - clock_icon_redraws_total{icon}: ticks that required a redraw
//   - clock_icon_last_tick_timestamp_seconds: time of the last tick
//   - clock_icon_tick_duration_seconds: duration of the last tick
//   - clock_icon_build_info: build version labels
//
// Example usage:
//
//	icons, failed := clockicon.LoadAll(pack, cfg.Settings())
//	c := collector.NewClockCollector(icons, failed, cfg.Settings(), clk, log)
//	prometheus.MustRegister(c)
//	c.StartTicking(ctx)
package collector

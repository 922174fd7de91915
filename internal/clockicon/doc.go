// Package clockicon animates analog clock icons.
//
// A clock icon is an adaptive icon whose foreground is a layer stack where
// some layers are clock hands. Launcher metadata names the hand layers and
// the time the artwork shows at level 0:
//
//	com.android.launcher3.LEVEL_PER_TICK_ICON_ROUND  resource id of the icon
//	com.android.launcher3.HOUR_LAYER_INDEX           hour hand layer (-1 if none)
//	com.android.launcher3.MINUTE_LAYER_INDEX         minute hand layer
//	com.android.launcher3.SECOND_LAYER_INDEX         second hand layer
//	com.android.launcher3.DEFAULT_HOUR               0-11
//	com.android.launcher3.DEFAULT_MINUTE             0-59
//	com.android.launcher3.DEFAULT_SECOND             0-59
//
// On every tick the wall-clock time is re-based onto the artwork's default
// time and mapped to levels:
//
//	hour   = convertedHour*60 + minute    (0-719)
//	minute = hour*60 + convertedMinute    (0-719)
//	second = convertedSecond * 10         (0-590)
//
// The hour level uses the real minute so the hand sweeps smoothly within the
// hour; the minute level likewise uses the real hour.
//
// Construction fails with ErrConfigInvalid when the metadata or drawable
// cannot describe a clock; callers then show the icon statically. Computing
// levels never fails.
//
// Example usage:
//
//	icon, err := clockicon.Load(pack, "com.google.android.deskclock", clockicon.DefaultSettings())
//	if err != nil {
//		// render statically
//	}
//	if levels := icon.Tick(time.Now()); levels.Changed {
//		// redraw
//	}
package clockicon

package calendar

import "time"

// Viewport is the visible hour range of a day column in the week view.
type Viewport struct {
	StartHour int
	EndHour   int
}

// DefaultViewport shows 06:00-22:00, a 16 hour window.
var DefaultViewport = Viewport{StartHour: 6, EndHour: 22}

// MinVisibleHeight keeps degenerate or heavily clipped events tall
// enough to stay clickable.
const MinVisibleHeight = 0.05

// Minutes returns the viewport height in minutes.
func (v Viewport) Minutes() float64 {
	return float64(v.EndHour-v.StartHour) * 60
}

// Placement positions an event inside a day column, both values as
// ratios of the viewport height.
type Placement struct {
	Top    float64
	Height float64
}

// WeekDays returns the 7 consecutive dates of the week containing
// anchor, starting on Sunday.
func WeekDays(anchor time.Time) []time.Time {
	start := StartOfWeek(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// PositionEvent maps an event onto day's column within the viewport.
// The second return is false when the event lies entirely outside the
// visible window. Height measures from the event's real start, so an
// event running past the window bottom may exceed 1 and is expected to
// be clipped by the renderer. Temporally overlapping events are not
// split into lanes; they simply overlap.
func PositionEvent(start, end, day time.Time, vp Viewport) (Placement, bool) {
	d := StartOfDay(day)
	windowStart := d.Add(time.Duration(vp.StartHour) * time.Hour)
	windowEnd := d.Add(time.Duration(vp.EndHour) * time.Hour)

	if !end.After(windowStart) || !start.Before(windowEnd) {
		return Placement{}, false
	}

	total := vp.Minutes()

	top := start.Sub(windowStart).Minutes() / total
	if top < 0 {
		top = 0
	}
	if top > 1 {
		top = 1
	}

	clampedEnd := end
	if clampedEnd.After(windowEnd) {
		clampedEnd = windowEnd
	}
	height := clampedEnd.Sub(start).Minutes() / total
	if height < MinVisibleHeight {
		height = MinVisibleHeight
	}

	return Placement{Top: top, Height: height}, true
}

package calendar

import (
	"time"

	"meetbook/internal/models"
)

// DateLayout keys grid cells and event buckets by UTC date.
const DateLayout = "2006-01-02"

// GridDays is always 42: six full weeks keep the month view a uniform
// height regardless of month length or leap years.
const GridDays = 42

// Day is a single cell of the month grid.
type Day struct {
	Date    time.Time
	InMonth bool
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Sunday on or before t, at midnight UTC.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// MonthGrid projects a month onto 42 consecutive dates, anchored at the
// Sunday on or before the 1st. Cells belonging to the neighbouring
// months carry InMonth=false.
func MonthGrid(year int, month time.Month) []Day {
	cur := StartOfWeek(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	days := make([]Day, 0, GridDays)
	for i := 0; i < GridDays; i++ {
		days = append(days, Day{Date: cur, InMonth: cur.Month() == month})
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// BucketByDay groups meetups by the UTC date of their start instant, so
// a grid consumer can fill each cell in constant time.
func BucketByDay(meetups []models.Meetup) map[string][]models.Meetup {
	buckets := make(map[string][]models.Meetup)
	for _, m := range meetups {
		key := m.Start.UTC().Format(DateLayout)
		buckets[key] = append(buckets[key], m)
	}
	return buckets
}

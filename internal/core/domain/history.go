package domain

import "time"

// HistoryPoint is one (date, rate) sample of a pair's exchange-rate series.
type HistoryPoint struct {
	Date time.Time `json:"date"`
	Rate float64   `json:"rate"`
}

// MinChartPoints is the minimum series length before any chart is drawn.
// Shorter series are "insufficient data", not an error.
const MinChartPoints = 2

// TimeRange is a named preset mapped to a fixed historical date window.
type TimeRange string

const (
	Range1D   TimeRange = "1D"
	Range5D   TimeRange = "5D"
	Range1M   TimeRange = "1M"
	Range6M   TimeRange = "6M"
	Range1A   TimeRange = "1A"
	Range6A   TimeRange = "6A"
	RangeTodo TimeRange = "TODO" // everything since the fixed epoch
)

// historyEpoch is the window start for RangeTodo.
var historyEpoch = time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseTimeRange validates a range token.
func ParseTimeRange(s string) (TimeRange, bool) {
	switch TimeRange(s) {
	case Range1D, Range5D, Range1M, Range6M, Range1A, Range6A, RangeTodo:
		return TimeRange(s), true
	}
	return "", false
}

// WindowStart returns the start of the historical window for this range,
// relative to now. The offsets are a fixed table, not calendar-exact
// trading windows: the short ranges over-fetch a few days so weekends and
// holidays still leave enough points to chart.
func (r TimeRange) WindowStart(now time.Time) time.Time {
	switch r {
	case Range1D:
		return now.AddDate(0, 0, -3)
	case Range5D:
		return now.AddDate(0, 0, -8)
	case Range1M:
		return now.AddDate(0, -1, 0)
	case Range6M:
		return now.AddDate(0, -6, 0)
	case Range1A:
		return now.AddDate(-1, 0, 0)
	case Range6A:
		return now.AddDate(-6, 0, 0)
	case RangeTodo:
		return historyEpoch
	}
	return now.AddDate(0, -1, 0)
}

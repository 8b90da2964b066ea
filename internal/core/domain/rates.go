package domain

import "time"

// RateSnapshot holds the full mapping of currency code to rate relative to a
// base currency, as returned by one successful fetch. A snapshot is replaced
// wholesale on each successful fetch and never partially merged.
type RateSnapshot struct {
	Base       string             `json:"base"`
	Rates      map[string]float64 `json:"rates"`
	LastUpdate time.Time          `json:"lastUpdate"` // upstream's last-update instant
	FetchedAt  time.Time          `json:"fetchedAt"`
}

// Rate returns the rate for a code and whether it is known. An absent key
// means "rate unknown", never "worthless".
func (s *RateSnapshot) Rate(code string) (float64, bool) {
	if s == nil || s.Rates == nil {
		return 0, false
	}
	rate, ok := s.Rates[code]
	return rate, ok
}

// LastUpdateDisplay formats the upstream last-update instant for display,
// split into date and time parts the way the client renders them.
func (s *RateSnapshot) LastUpdateDisplay() (date string, clock string) {
	if s == nil || s.LastUpdate.IsZero() {
		return "", ""
	}
	return s.LastUpdate.Format("02 Jan 2006"), s.LastUpdate.Format("15:04:05")
}

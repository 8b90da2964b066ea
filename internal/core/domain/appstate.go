package domain

// Tab identifies the active client view.
type Tab string

const (
	TabConverter Tab = "inicio"
	TabFavorites Tab = "favoritos"
	TabSettings  Tab = "ajustes"
)

// ParseTab validates a tab token.
func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabConverter, TabFavorites, TabSettings:
		return Tab(s), true
	}
	return "", false
}

// Theme is the client color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AppState is the session-scoped UI state. It is an explicit value passed
// through pure transition functions rather than a set of ambient globals,
// so each transition is testable in isolation from rendering.
type AppState struct {
	ActiveTab Tab       `json:"activeTab"`
	Theme     Theme     `json:"theme"`
	Amount    float64   `json:"amount"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Range     TimeRange `json:"range"`
}

// DefaultAppState mirrors the client's initial render.
func DefaultAppState() AppState {
	return AppState{
		ActiveTab: TabConverter,
		Theme:     ThemeLight,
		Amount:    1,
		From:      "USD",
		To:        "EUR",
		Range:     Range1M,
	}
}

// WithAmount returns the state with a new amount.
func (s AppState) WithAmount(amount float64) AppState {
	s.Amount = amount
	return s
}

// WithPair returns the state with a new conversion pair.
func (s AppState) WithPair(from, to string) AppState {
	s.From = from
	s.To = to
	return s
}

// Swapped exchanges from and to in a single transition, so no intermediate
// state with a half-swapped pair is ever observable.
func (s AppState) Swapped() AppState {
	s.From, s.To = s.To, s.From
	return s
}

// WithTab returns the state with a new active tab.
func (s AppState) WithTab(tab Tab) AppState {
	s.ActiveTab = tab
	return s
}

// WithTheme returns the state with a new theme.
func (s AppState) WithTheme(theme Theme) AppState {
	s.Theme = theme
	return s
}

// WithRange returns the state with a new history range.
func (s AppState) WithRange(r TimeRange) AppState {
	s.Range = r
	return s
}

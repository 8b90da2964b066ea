package domain

// SavedConversion is a favorite conversion saved by the user.
type SavedConversion struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	FromFlag string  `json:"fromFlag"`
	ToFlag   string  `json:"toFlag"`
}

// The list operations below are pure: they never mutate their input, so the
// favorites service stays trivially testable and persistence remains a thin
// adapter around them.

// FindEquivalent returns the first favorite matching (amount, from, to)
// exactly, or nil. Equivalence ignores the ID and flags.
func FindEquivalent(favorites []SavedConversion, amount float64, from, to string) *SavedConversion {
	for i := range favorites {
		f := &favorites[i]
		if f.Amount == amount && f.From == from && f.To == to {
			return f
		}
	}
	return nil
}

// PrependFavorite returns a new list with fav first; ordering is
// most-recently-added first.
func PrependFavorite(favorites []SavedConversion, fav SavedConversion) []SavedConversion {
	out := make([]SavedConversion, 0, len(favorites)+1)
	out = append(out, fav)
	return append(out, favorites...)
}

// RemoveFavoriteByID returns a new list without the favorite carrying id,
// and whether a record was removed.
func RemoveFavoriteByID(favorites []SavedConversion, id string) ([]SavedConversion, bool) {
	out := make([]SavedConversion, 0, len(favorites))
	removed := false
	for _, f := range favorites {
		if f.ID == id {
			removed = true
			continue
		}
		out = append(out, f)
	}
	return out, removed
}

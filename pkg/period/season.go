package period

// seasons in calendar order; the index is the rank.
var seasons = [...]string{"jaro", "léto", "podzim", "zima"}

// Seasons returns the season names in rank order.
func Seasons() []string {
	return append([]string(nil), seasons[:]...)
}

// IsSeason is case-sensitive and does not trim.
func IsSeason(s string) bool {
	_, ok := seasonIndex(s)
	return ok
}

func seasonIndex(s string) (int, bool) {
	for i, name := range seasons {
		if name == s {
			return i, true
		}
	}
	return -1, false
}

func SeasonRank(s string) (int, error) {
	rank, ok := seasonIndex(s)
	if !ok {
		return 0, newError("season rank", ErrInvalidSeason, s)
	}
	return rank, nil
}

// CompareSeasons returns a negative number, zero, or a positive number as a
// comes before, together with, or after b in the year.
func CompareSeasons(a, b string) (int, error) {
	ra, okA := seasonIndex(a)
	rb, okB := seasonIndex(b)
	if !okA || !okB {
		return 0, newError("compare seasons", ErrInvalidSeason, a, b)
	}
	return ra - rb, nil
}

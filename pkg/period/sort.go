package period

import "slices"

// Sort orders periods in place with ComparePeriods, keeping equal periods in
// their original order. If any pair cannot be compared the slice is left as it
// was and the first comparison error is returned.
func Sort(periods []string) error {
	return SortBy(periods, func(s string) string { return s })
}

// SortBy is Sort for any element type; key extracts the period string.
func SortBy[E any](items []E, key func(E) string) error {
	type keyed struct {
		item   E
		period Period
	}
	parsed := make([]keyed, len(items))
	for i, it := range items {
		parsed[i] = keyed{item: it, period: Parse(key(it))}
	}

	var firstErr error
	slices.SortStableFunc(parsed, func(a, b keyed) int {
		c, err := a.period.Compare(b.period)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return c
	})
	if firstErr != nil {
		return firstErr
	}

	for i, k := range parsed {
		items[i] = k.item
	}
	return nil
}

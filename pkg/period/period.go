package period

// Kind is the category a period string falls into.
type Kind int

const (
	KindInvalid Kind = iota
	KindSeason
	KindMonthRange
)

func (k Kind) String() string {
	switch k {
	case KindSeason:
		return "season"
	case KindMonthRange:
		return "month_range"
	default:
		return "invalid"
	}
}

// Period is a classified period string. Rank is set for seasons, Start and
// End for month ranges.
type Period struct {
	Raw   string
	Kind  Kind
	Rank  int
	Start int
	End   int
}

// Parse classifies s. A string that is neither a season nor a month range
// comes back with KindInvalid; Parse never fails.
func Parse(s string) Period {
	if rank, ok := seasonIndex(s); ok {
		return Period{Raw: s, Kind: KindSeason, Rank: rank}
	}
	if start, end, ok := parseMonthRange(s); ok {
		return Period{Raw: s, Kind: KindMonthRange, Start: start, End: end}
	}
	return Period{Raw: s, Kind: KindInvalid}
}

func (p Period) Valid() bool {
	return p.Kind != KindInvalid
}

// String is the display form: month ranges are spelled out, anything else is
// returned as written.
func (p Period) String() string {
	if p.Kind == KindMonthRange {
		return translateMonths(p.Start, p.End)
	}
	return p.Raw
}

// Compare orders two periods of the same category.
func (p Period) Compare(other Period) (int, error) {
	switch {
	case p.Kind == KindSeason && other.Kind == KindSeason:
		return p.Rank - other.Rank, nil
	case p.Kind == KindSeason || other.Kind == KindSeason:
		return 0, newError("compare periods", ErrMixedCategory, p.Raw, other.Raw)
	case p.Kind == KindMonthRange && other.Kind == KindMonthRange:
		return compareMonths(p.Start, p.End, other.Start, other.End), nil
	case p.Kind == KindMonthRange || other.Kind == KindMonthRange:
		return 0, newError("compare periods", ErrMixedCategory, p.Raw, other.Raw)
	default:
		return 0, newError("compare periods", ErrInvalidPeriod, p.Raw, other.Raw)
	}
}

// ComparePeriods compares two seasons or two month ranges. Comparing across
// categories, or against a string that is neither, is an error.
func ComparePeriods(a, b string) (int, error) {
	return Parse(a).Compare(Parse(b))
}

// TranslatePeriod spells out a month range and returns any other string
// unchanged.
func TranslatePeriod(s string) string {
	return Parse(s).String()
}

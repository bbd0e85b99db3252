package period

import (
	"regexp"
	"strconv"
	"strings"
)

var months = [...]string{
	"leden",
	"únor",
	"březen",
	"duben",
	"květen",
	"červen",
	"červenec",
	"srpen",
	"září",
	"říjen",
	"listopad",
	"prosinec",
}

var monthRangePattern = regexp.MustCompile(`^(0?[1-9]|1[0-2])-(0?[1-9]|1[0-2])$`)

// rangeSeparator sits between the two month names of a translated range.
const rangeSeparator = " – "

func MonthName(n int) (string, error) {
	if n < 1 || n > len(months) {
		return "", newError("month name", ErrInvalidMonth, strconv.Itoa(n))
	}
	return months[n-1], nil
}

// IsMonthRange accepts "start-end" with both months in 1–12 and an optional
// leading zero, e.g. "3-7" or "03-07".
func IsMonthRange(s string) bool {
	return monthRangePattern.MatchString(s)
}

// parseMonthRange returns the endpoints of a valid month range.
func parseMonthRange(s string) (start, end int, ok bool) {
	m := monthRangePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	// The pattern admits only one or two digits in 1–12.
	start, _ = strconv.Atoi(m[1])
	end, _ = strconv.Atoi(m[2])
	return start, end, true
}

func TranslateMonthRange(s string) (string, error) {
	start, end, ok := parseMonthRange(s)
	if !ok {
		return "", newError("translate month range", ErrInvalidMonthRange, s)
	}
	return translateMonths(start, end), nil
}

func translateMonths(start, end int) string {
	return strings.Join([]string{months[start-1], months[end-1]}, rangeSeparator)
}

// CompareMonthRanges orders ranges by start month, then by end month.
func CompareMonthRanges(a, b string) (int, error) {
	startA, endA, okA := parseMonthRange(a)
	startB, endB, okB := parseMonthRange(b)
	if !okA || !okB {
		return 0, newError("compare month ranges", ErrInvalidMonthRange, a, b)
	}
	return compareMonths(startA, endA, startB, endB), nil
}

func compareMonths(startA, endA, startB, endB int) int {
	if startA == startB {
		return endA - endB
	}
	return startA - startB
}

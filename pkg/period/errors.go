package period

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSeason     = errors.New("invalid season")
	ErrInvalidMonth      = errors.New("invalid month number")
	ErrInvalidMonthRange = errors.New("invalid month range")
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrMixedCategory     = errors.New("periods of different categories are not comparable")
)

// PeriodError records the operation and inputs behind a validation failure.
// Err is always one of the package sentinels.
type PeriodError struct {
	Op     string
	Values []string
	Err    error
}

func (e *PeriodError) Error() string {
	if e == nil {
		return "<nil>"
	}
	quoted := make([]string, 0, len(e.Values))
	for _, v := range e.Values {
		quoted = append(quoted, fmt.Sprintf("%q", v))
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, strings.Join(quoted, ", "))
}

func (e *PeriodError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a PeriodError wrapping the given sentinel.
func IsKind(err, kind error) bool {
	var pe *PeriodError
	if errors.As(err, &pe) {
		return errors.Is(pe.Err, kind)
	}
	return false
}

func newError(op string, kind error, values ...string) error {
	return &PeriodError{Op: op, Values: values, Err: kind}
}

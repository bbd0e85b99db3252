package period

import (
	"context"

	"github.com/ib-77/periodgate/pkg/rop"
	"github.com/ib-77/periodgate/pkg/rop/solo"
)

// Check classifies s onto the result railway; strings that are neither a
// season nor a month range become a failure wrapping ErrInvalidPeriod.
func Check(ctx context.Context, s string) rop.Result[Period] {
	return solo.Try(ctx, solo.Succeed(s), func(_ context.Context, s string) (Period, error) {
		p := Parse(s)
		if !p.Valid() {
			return p, newError("check period", ErrInvalidPeriod, s)
		}
		return p, nil
	})
}

// TranslateResult maps a checked period to its display form.
func TranslateResult(ctx context.Context, r rop.Result[Period]) rop.Result[string] {
	return solo.Map(ctx, r, func(_ context.Context, p Period) string {
		return p.String()
	})
}

package period

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Period{Raw: "podzim", Kind: KindSeason, Rank: 2}, Parse("podzim"))
	assert.Equal(t, Period{Raw: "03-11", Kind: KindMonthRange, Start: 3, End: 11}, Parse("03-11"))
	assert.Equal(t, Period{Raw: "foo", Kind: KindInvalid}, Parse("foo"))
	assert.False(t, Parse("13-1").Valid())
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "season", KindSeason.String())
	assert.Equal(t, "month_range", KindMonthRange.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}

func TestComparePeriods(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		a, b    string
		sign    int
		wantErr error
	}{
		{name: "seasons", a: "jaro", b: "zima", sign: -1},
		{name: "equal seasons", a: "léto", b: "léto", sign: 0},
		{name: "month ranges", a: "4-1", b: "3-12", sign: 1},
		{name: "season and month range", a: "jaro", b: "3-7", wantErr: ErrMixedCategory},
		{name: "month range and season", a: "3-7", b: "zima", wantErr: ErrMixedCategory},
		{name: "season and junk", a: "jaro", b: "foo", wantErr: ErrMixedCategory},
		{name: "month range and junk", a: "foo", b: "3-7", wantErr: ErrMixedCategory},
		{name: "both junk", a: "foo", b: "bar", wantErr: ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ComparePeriods(tt.a, tt.b)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, IsKind(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sign, sign(got))
		})
	}
}

func TestTranslatePeriod(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "jaro", TranslatePeriod("jaro"))
	assert.Equal(t, "březen – červenec", TranslatePeriod("3-7"))
	assert.Equal(t, "already translated", TranslatePeriod("already translated"))
	assert.Equal(t, "13-07", TranslatePeriod("13-07"))
}

func TestPeriodError(t *testing.T) {
	t.Parallel()
	_, err := ComparePeriods("foo", "bar")

	var pe *PeriodError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "compare periods", pe.Op)
	assert.Equal(t, []string{"foo", "bar"}, pe.Values)
	assert.EqualError(t, err, `compare periods: invalid period: "foo", "bar"`)
	assert.False(t, IsKind(err, ErrMixedCategory))
	assert.False(t, IsKind(errors.New("invalid period"), ErrInvalidPeriod))
}

func TestCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Check(ctx, "3-7")
	require.True(t, ok.IsSuccess())
	assert.Equal(t, KindMonthRange, ok.Result().Kind)

	translated := TranslateResult(ctx, ok)
	require.True(t, translated.IsSuccess())
	assert.Equal(t, "březen – červenec", translated.Result())

	bad := TranslateResult(ctx, Check(ctx, "foo"))
	require.True(t, bad.IsFailure())
	assert.False(t, bad.IsCancel())
	assert.ErrorIs(t, bad.Err(), ErrInvalidPeriod)
}

package parsing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errFallbackStub = errors.New("fallback stub failure")

func TestParseDefaults(t *testing.T) {
	type Test struct {
		Str      string
		Expected Parsed
	}
	tests := []Test{
		{
			"2016-06-05",
			Parsed{Kind: KindDateTime, Year: 2016, Month: 6, Day: 5},
		},
		{
			"2016-06-05 12:30:45.123456789",
			Parsed{Kind: KindDateTime, Year: 2016, Month: 6, Day: 5, Hour: 12, Minute: 30, Second: 45, Microsecond: 123456},
		},
		{
			"2016/06/05",
			Parsed{Kind: KindDateTime, Year: 2016, Month: 6, Day: 5},
		},
		{
			"2016",
			Parsed{Kind: KindDateTime, Year: 2016, Month: 1, Day: 1},
		},
	}

	for _, test := range tests {
		parsed, err := Parse(test.Str)
		require.NoError(t, err, test.Str)
		require.Equal(t, test.Expected, parsed, test.Str)
	}
}

func TestParseTimeOnlyBackfillsFromNow(t *testing.T) {
	now := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	parsed, err := Parse("12:30", WithNow(now))
	require.NoError(t, err)
	require.Equal(t, Parsed{
		Kind: KindDateTime,
		Year: 2021, Month: 1, Day: 1,
		Hour: 12, Minute: 30,
	}, parsed)
}

func TestParseExact(t *testing.T) {
	parsed, err := Parse("12:30", WithExact(true))
	require.NoError(t, err)
	require.Equal(t, Parsed{Kind: KindTime, Hour: 12, Minute: 30}, parsed)

	parsed, err = Parse("2016-06-05", WithExact(true))
	require.NoError(t, err)
	require.Equal(t, Parsed{Kind: KindDate, Year: 2016, Month: 6, Day: 5}, parsed)

	parsed, err = Parse("2016-06-05T12:30:45", WithExact(true))
	require.NoError(t, err)
	require.Equal(t, Parsed{
		Kind: KindDateTime,
		Year: 2016, Month: 6, Day: 5,
		Hour: 12, Minute: 30, Second: 45,
	}, parsed)
}

func TestParseDayFirst(t *testing.T) {
	// Goes through the fallback parser: the common grammar wants the year
	// up front.
	parsed, err := Parse("05/06/2016", WithStrict(false))
	require.NoError(t, err)
	require.Equal(t, Parsed{Kind: KindDateTime, Year: 2016, Month: 5, Day: 6}, parsed)

	parsed, err = Parse("05/06/2016", WithStrict(false), WithDayFirst(true))
	require.NoError(t, err)
	require.Equal(t, Parsed{Kind: KindDateTime, Year: 2016, Month: 6, Day: 5}, parsed)
}

func TestParseFailure(t *testing.T) {
	_, err := Parse("not a date")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "not a date", parseErr.Text)

	// The built-in fuzzy parser doesn't recognize it either
	_, err = Parse("not a date", WithStrict(false))
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "not a date", parseErr.Text)
}

func TestParseInvalidValueIsTerminal(t *testing.T) {
	fallback := &stubFallback{}

	// Structurally ISO 8601, month out of range: terminal even with the
	// fallback available, and never a *ParseError.
	_, err := Parse("2016-13-05", WithStrict(false), WithFallback(fallback))
	require.ErrorIs(t, err, ErrInvalidValue)
	var parseErr *ParseError
	require.False(t, errors.As(err, &parseErr))
	require.Empty(t, fallback.Calls)

	// Same for the common grammar
	_, err = Parse("2016/13/05", WithStrict(false), WithFallback(fallback))
	require.ErrorIs(t, err, ErrInvalidValue)
	require.Empty(t, fallback.Calls)
}

type stubFallback struct {
	Calls     []string
	DayFirst  bool
	YearFirst bool
	Result    Parsed
	Err       error
}

func (s *stubFallback) Parse(text string, dayFirst bool, yearFirst bool) (Parsed, error) {
	s.Calls = append(s.Calls, text)
	s.DayFirst = dayFirst
	s.YearFirst = yearFirst
	return s.Result, s.Err
}

func TestParseFallbackDelegation(t *testing.T) {
	result := Parsed{Kind: KindDateTime, Year: 1999, Month: 8, Day: 28}

	// Not consulted in strict mode
	fallback := &stubFallback{Result: result}
	_, err := Parse("anything at all", WithFallback(fallback))
	require.Error(t, err)
	require.Empty(t, fallback.Calls)

	// Not consulted when a structured matcher succeeds
	fallback = &stubFallback{Result: result}
	_, err = Parse("2016-06-05", WithStrict(false), WithFallback(fallback))
	require.NoError(t, err)
	require.Empty(t, fallback.Calls)

	// Consulted exactly once after both matchers fail, hints forwarded
	fallback = &stubFallback{Result: result}
	parsed, err := Parse(
		"anything at all",
		WithStrict(false), WithFallback(fallback),
		WithDayFirst(true), WithYearFirst(false),
	)
	require.NoError(t, err)
	require.Equal(t, result, parsed)
	require.Equal(t, []string{"anything at all"}, fallback.Calls)
	require.True(t, fallback.DayFirst)
	require.False(t, fallback.YearFirst)

	// A fallback failure is the terminal failure
	fallback = &stubFallback{Err: errFallbackStub}
	_, err = Parse("anything at all", WithStrict(false), WithFallback(fallback))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "anything at all", parseErr.Text)
	require.ErrorIs(t, err, errFallbackStub)
}

func TestNormalizeIdempotent(t *testing.T) {
	options := Options{Now: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)}
	values := []Parsed{
		{Kind: KindDate, Year: 2016, Month: 6, Day: 5},
		{Kind: KindTime, Hour: 12, Minute: 30},
		{Kind: KindDateTime, Year: 2016, Month: 6, Day: 5, Hour: 12, Minute: 30},
	}
	for _, value := range values {
		once := normalize(value, options)
		require.Equal(t, KindDateTime, once.Kind)
		require.Equal(t, once, normalize(once, options), value.String())
	}
}

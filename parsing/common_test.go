package parsing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommon(t *testing.T) {
	type Test struct {
		Str      string
		DayFirst bool
		Expected Parsed
	}
	tests := []Test{
		// Date only, "/" or ":" separators or none at all
		{"2016/06/05", false, Parsed{Kind: KindDate, Year: 2016, Month: 6, Day: 5}},
		{"2016:06:05", false, Parsed{Kind: KindDate, Year: 2016, Month: 6, Day: 5}},
		{"20160605", false, Parsed{Kind: KindDate, Year: 2016, Month: 6, Day: 5}},
		{"2016/0605", false, Parsed{Kind: KindDate, Year: 2016, Month: 6, Day: 5}},
		{"201606/05", false, Parsed{Kind: KindDate, Year: 2016, Month: 6, Day: 5}},

		// Year only: month and day default to 1
		{"2016", false, Parsed{Kind: KindDate, Year: 2016, Month: 1, Day: 1}},

		// The day-first hint swaps the two groups
		{"2016/05/06", false, Parsed{Kind: KindDate, Year: 2016, Month: 5, Day: 6}},
		{"2016/05/06", true, Parsed{Kind: KindDate, Year: 2016, Month: 6, Day: 5}},

		// Time only
		{"12:30", false, Parsed{Kind: KindTime, Hour: 12, Minute: 30}},
		{"5:06", false, Parsed{Kind: KindTime, Hour: 5, Minute: 6}},
		{"12:30:45", false, Parsed{Kind: KindTime, Hour: 12, Minute: 30, Second: 45}},
		{" 12:30", false, Parsed{Kind: KindTime, Hour: 12, Minute: 30}},
		{"12:", false, Parsed{Kind: KindTime, Hour: 12}},
		{"12::45", false, Parsed{Kind: KindTime, Hour: 12, Second: 45}},

		// Fractional seconds: padded to six digits or truncated to six
		{"12:30:45.123", false, Parsed{Kind: KindTime, Hour: 12, Minute: 30, Second: 45, Microsecond: 123000}},
		{"12:30:45,123", false, Parsed{Kind: KindTime, Hour: 12, Minute: 30, Second: 45, Microsecond: 123000}},
		{"12:30:45.123456789", false, Parsed{Kind: KindTime, Hour: 12, Minute: 30, Second: 45, Microsecond: 123456}},

		// Both segments
		{
			"2016/06/05 12:30:45",
			false,
			Parsed{Kind: KindDateTime, Year: 2016, Month: 6, Day: 5, Hour: 12, Minute: 30, Second: 45},
		},
		{
			"2016 12:30",
			false,
			Parsed{Kind: KindDateTime, Year: 2016, Month: 1, Day: 1, Hour: 12, Minute: 30},
		},
		{
			"20160605 12:30",
			false,
			Parsed{Kind: KindDateTime, Year: 2016, Month: 6, Day: 5, Hour: 12, Minute: 30},
		},
	}

	for _, test := range tests {
		parsed, err := parseCommon(test.Str, Options{DayFirst: test.DayFirst})
		require.NoError(t, err, test.Str)
		require.Equal(t, test.Expected, parsed, test.Str)
	}
}

func TestParseCommonNoMatch(t *testing.T) {
	tests := []string{
		"",
		"not a date",
		"2016-06-05", // dashes belong to the ISO 8601 grammar
		"2016:06",    // month without day
		"201",
		"12",
		"12:30 ",
		"12:30x",
		"x12:30",
		"12:30:",
		"12:30:45.",
		"12:30:45.1234567890", // more than nine fraction digits
		"123:30",
	}
	for _, test := range tests {
		_, err := parseCommon(test, Options{})
		require.ErrorIs(t, err, errNoMatch, test)
	}
}

func TestParseCommonInvalidValue(t *testing.T) {
	tests := []string{
		"2016/13/05",
		"2016/00/05",
		"2016/05/32",
		"2016/05/00",
		"25:30",
		"12:60",
		"12:30:60",
		"0000",
	}
	for _, test := range tests {
		_, err := parseCommon(test, Options{})
		require.ErrorIs(t, err, ErrInvalidValue, test)
	}
}

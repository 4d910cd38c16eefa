package parsing

import (
	"time"

	"github.com/winarcooo/pendulum/oops"
)

// The ISO 8601 matcher is attempted first because the standard is unambiguous:
// no day/month ordering hints apply. It recognizes calendar dates (2016-06-05,
// 20160605), reduced precision (2016, 2016-06), ordinal dates (2016-157),
// week dates (2016-W21, 2016-W21-3) and an optional time part after "T" or a
// single space, with fractional seconds after "." or ",". Timezone designators
// are not consumed: resolving offsets is not this engine's job, so "...Z" or
// "...+02:00" falls through as a non-match.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitSpan counts decimal digits in str starting at start.
func digitSpan(str string, start int) int {
	span := 0
	for start+span < len(str) && isDigit(str[start+span]) {
		span++
	}
	return span
}

// number reads length digits at start. Callers check the span first.
func number(str string, start, length int) int {
	result := 0
	for i := start; i < start+length; i++ {
		result = result*10 + int(str[i]-'0')
	}
	return result
}

// microseconds interprets a run of fraction digits as a fixed-point count
// with exactly six digits: longer runs are truncated, shorter ones are
// right-padded with zeros.
func microseconds(str string, start, length int) int {
	if length > 6 {
		length = 6
	}
	result := number(str, start, length)
	for i := length; i < 6; i++ {
		result *= 10
	}
	return result
}

func ordinalToDate(year, ordinal int) (Parsed, error) {
	last := 365
	if isLeap(year) {
		last = 366
	}
	if ordinal < 1 || ordinal > last {
		return Parsed{}, oops.Wrapf(ErrInvalidValue, "ordinal day %d is out of range for %04d", ordinal, year)
	}
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, ordinal-1)
	return newDate(t.Year(), int(t.Month()), t.Day())
}

func weekToDate(year, week, weekday int) (Parsed, error) {
	_, lastWeek := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	if week < 1 || week > lastWeek {
		return Parsed{}, oops.Wrapf(ErrInvalidValue, "week %d is out of range for %04d", week, year)
	}
	if weekday < 1 || weekday > 7 {
		return Parsed{}, oops.Wrapf(ErrInvalidValue, "weekday %d is out of range", weekday)
	}
	// January 4 is always in week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	mondayOffset := (int(jan4.Weekday()) + 6) % 7
	t := jan4.AddDate(0, 0, -mondayOffset+(week-1)*7+weekday-1)
	return newDate(t.Year(), int(t.Month()), t.Day())
}

// parseISO8601 returns errNoMatch when text isn't shaped like ISO 8601 at
// all, and an ErrInvalidValue wrap when it is but a field is out of range.
func parseISO8601(text string) (Parsed, error) {
	if digitSpan(text, 0) < 4 {
		return Parsed{}, errNoMatch
	}
	year := number(text, 0, 4)
	i := 4

	month, day := 1, 1
	dayPrecision := false // whether the date resolves a specific day
	var date Parsed
	var err error
	dateDone := false

	switch {
	case digitSpan(text, i) > 0:
		// Basic format: YYYYMMDD or ordinal YYYYDDD.
		span := digitSpan(text, i)
		switch span {
		case 4:
			month = number(text, i, 2)
			day = number(text, i+2, 2)
			dayPrecision = true
		case 3:
			date, err = ordinalToDate(year, number(text, i, 3))
			if err != nil {
				return Parsed{}, err
			}
			dateDone = true
			dayPrecision = true
		default:
			return Parsed{}, errNoMatch
		}
		i += span
	case i < len(text) && text[i] == '-':
		i++
		if i < len(text) && (text[i] == 'W' || text[i] == 'w') {
			// Extended week date: YYYY-Www or YYYY-Www-D.
			i++
			if digitSpan(text, i) != 2 {
				return Parsed{}, errNoMatch
			}
			week := number(text, i, 2)
			i += 2
			weekday := 1
			if i < len(text) && text[i] == '-' {
				if digitSpan(text, i+1) != 1 {
					return Parsed{}, errNoMatch
				}
				weekday = number(text, i+1, 1)
				i += 2
				dayPrecision = true
			}
			date, err = weekToDate(year, week, weekday)
			if err != nil {
				return Parsed{}, err
			}
			dateDone = true
		} else {
			span := digitSpan(text, i)
			switch span {
			case 2:
				month = number(text, i, 2)
				i += 2
				if i < len(text) && text[i] == '-' {
					if digitSpan(text, i+1) != 2 {
						return Parsed{}, errNoMatch
					}
					day = number(text, i+1, 2)
					i += 3
					dayPrecision = true
				}
			case 3:
				date, err = ordinalToDate(year, number(text, i, 3))
				if err != nil {
					return Parsed{}, err
				}
				dateDone = true
				dayPrecision = true
				i += 3
			default:
				return Parsed{}, errNoMatch
			}
		}
	case i < len(text) && (text[i] == 'W' || text[i] == 'w'):
		// Basic week date: YYYYWww or YYYYWwwD.
		i++
		span := digitSpan(text, i)
		week := 0
		weekday := 1
		switch span {
		case 2:
			week = number(text, i, 2)
		case 3:
			week = number(text, i, 2)
			weekday = number(text, i+2, 1)
			dayPrecision = true
		default:
			return Parsed{}, errNoMatch
		}
		i += span
		date, err = weekToDate(year, week, weekday)
		if err != nil {
			return Parsed{}, err
		}
		dateDone = true
	}

	if !dateDone {
		date, err = newDate(year, month, day)
		if err != nil {
			return Parsed{}, err
		}
	}

	if i == len(text) {
		return date, nil
	}
	if text[i] != 'T' && text[i] != ' ' {
		return Parsed{}, errNoMatch
	}
	if !dayPrecision {
		// A time part after a reduced-precision date ("2016-06 12:30")
		// isn't ISO 8601.
		return Parsed{}, errNoMatch
	}
	i++

	hour, minute, second, micro := 0, 0, 0, 0
	hasSecond := false
	span := digitSpan(text, i)
	switch span {
	case 2:
		hour = number(text, i, 2)
		i += 2
		if i < len(text) && text[i] == ':' {
			if digitSpan(text, i+1) != 2 {
				return Parsed{}, errNoMatch
			}
			minute = number(text, i+1, 2)
			i += 3
			if i < len(text) && text[i] == ':' {
				if digitSpan(text, i+1) != 2 {
					return Parsed{}, errNoMatch
				}
				second = number(text, i+1, 2)
				i += 3
				hasSecond = true
			}
		}
	case 4:
		hour = number(text, i, 2)
		minute = number(text, i+2, 2)
		i += 4
	case 6:
		hour = number(text, i, 2)
		minute = number(text, i+2, 2)
		second = number(text, i+4, 2)
		i += 6
		hasSecond = true
	default:
		return Parsed{}, errNoMatch
	}

	if i < len(text) && (text[i] == '.' || text[i] == ',') {
		if !hasSecond {
			return Parsed{}, errNoMatch
		}
		fraction := digitSpan(text, i+1)
		if fraction == 0 || fraction > 9 {
			return Parsed{}, errNoMatch
		}
		micro = microseconds(text, i+1, fraction)
		i += 1 + fraction
	}
	if i != len(text) {
		return Parsed{}, errNoMatch
	}

	return newDateTime(date.Year, date.Month, date.Day, hour, minute, second, micro)
}

package parsing

// The common matcher recognizes a loose regional format: an optional date
// (4-digit year, optionally followed by a 2-digit month and a 2-digit day
// with optional "/" or ":" separators), then an optional time (1-2 digit
// hour, ":", optional minute, optional ":"+second, optional "."/"," fraction
// of 1-9 digits), with an optional single space in between. Matching is
// anchored at both ends: partial matches are rejected. At least one of the
// two segments must be present.

// commonResult is the structured intermediate record the scanner fills in.
// first/second are the raw month/day groups before the day-first swap.
type commonResult struct {
	hasDate       bool
	year          int
	first, second int // month/day groups in source order, 0 when absent
	hasMonthDay   bool
	hasTime       bool
	hour          int
	minute        int
	sec           int
	microsecond   int
}

// scanCommon recognizes the grammar without interpreting it. Returns false
// when the text isn't fully consumed.
func scanCommon(text string) (commonResult, bool) {
	var result commonResult
	i := 0

	// Date segment.
	if digitSpan(text, 0) >= 4 {
		result.hasDate = true
		result.year = number(text, 0, 4)
		i = 4

		// The month/day pair is all-or-nothing: a month without a day
		// doesn't belong to this grammar.
		j := i
		if j < len(text) && (text[j] == '/' || text[j] == ':') {
			j++
		}
		if digitSpan(text, j) >= 2 {
			first := number(text, j, 2)
			j += 2
			k := j
			if k < len(text) && (text[k] == '/' || text[k] == ':') {
				k++
			}
			if digitSpan(text, k) >= 2 {
				result.first = first
				result.second = number(text, k, 2)
				result.hasMonthDay = true
				i = k + 2
			}
		}
	}

	// Time segment, with its optional leading space.
	j := i
	if j < len(text) && text[j] == ' ' {
		j++
	}
	hourSpan := digitSpan(text, j)
	if hourSpan >= 1 && hourSpan <= 2 && j+hourSpan < len(text) && text[j+hourSpan] == ':' {
		result.hasTime = true
		result.hour = number(text, j, hourSpan)
		j += hourSpan + 1

		minuteSpan := digitSpan(text, j)
		if minuteSpan > 2 {
			return commonResult{}, false
		}
		result.minute = number(text, j, minuteSpan)
		j += minuteSpan

		if j < len(text) && text[j] == ':' {
			secondSpan := digitSpan(text, j+1)
			if secondSpan < 1 || secondSpan > 2 {
				return commonResult{}, false
			}
			result.sec = number(text, j+1, secondSpan)
			j += 1 + secondSpan
		}

		if j < len(text) && (text[j] == '.' || text[j] == ',') {
			fraction := digitSpan(text, j+1)
			if fraction < 1 || fraction > 9 {
				return commonResult{}, false
			}
			result.microsecond = microseconds(text, j+1, fraction)
			j += 1 + fraction
		}
		i = j
	}

	if i != len(text) {
		return commonResult{}, false
	}
	return result, true
}

func parseCommon(text string, options Options) (Parsed, error) {
	result, ok := scanCommon(text)
	if !ok || (!result.hasDate && !result.hasTime) {
		return Parsed{}, errNoMatch
	}

	month, day := 1, 1
	if result.hasMonthDay {
		if options.DayFirst {
			day, month = result.first, result.second
		} else {
			month, day = result.first, result.second
		}
	}

	switch {
	case result.hasDate && result.hasTime:
		return newDateTime(
			result.year, month, day,
			result.hour, result.minute, result.sec, result.microsecond,
		)
	case result.hasDate:
		return newDate(result.year, month, day)
	default:
		return newTime(result.hour, result.minute, result.sec, result.microsecond)
	}
}

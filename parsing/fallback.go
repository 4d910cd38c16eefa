package parsing

import (
	"time"

	"github.com/winarcooo/pendulum/oops"
	"github.com/winarcooo/pendulum/parsing/fuzzy"
)

// fuzzyFallback is the built-in Fallback: it runs the fuzzy parser and turns
// its partial result into a datetime, backfilling missing date components
// from the reference instant and missing time components with zero.
type fuzzyFallback struct {
	now time.Time
}

func (f *fuzzyFallback) Parse(text string, dayFirst bool, yearFirst bool) (Parsed, error) {
	date := fuzzy.Parse(text, fuzzy.Hints{DayFirst: dayFirst, YearFirst: yearFirst})
	if !date.HasAny() {
		return Parsed{}, oops.Newf("no date or time recognized in [%s]", text)
	}

	year, month, day := f.now.Year(), int(f.now.Month()), f.now.Day()
	if date.YearIsSet {
		year = date.Year
	}
	if date.MonthIsSet {
		month = date.Month
	}
	if date.DayIsSet {
		day = date.Day
	}

	var hour, minute, second, microsecond int
	if date.HourIsSet {
		hour = date.Hour
	}
	if date.MinuteIsSet {
		minute = date.Minute
	}
	if date.SecondIsSet {
		second = date.Second
	}
	if date.NanosecondIsSet {
		microsecond = date.Nanosecond / 1000
	}

	return newDateTime(year, month, day, hour, minute, second, microsecond)
}

// Package fuzzy recognizes dates and times buried in free-form text, in the
// manner of Ruby's Date._parse: known fragments (weekday names, clock times,
// word dates, numeric dates) are matched and consumed one by one, each
// filling in the fields it understands. Whatever is recognized is reported
// through per-field IsSet flags; nothing is validated against the calendar.
package fuzzy

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/winarcooo/pendulum/log"
)

// Hints disambiguate numeric dates.
type Hints struct {
	// DayFirst assigns the first group of an ambiguous slashed date to the
	// day instead of the month.
	DayFirst bool
	// YearFirst assigns the first group of an all-two-digit dashed date to
	// the year instead of the month or day.
	YearFirst bool
}

// Date is a partial result: each field only means something when its IsSet
// flag is true.
type Date struct {
	Year            int
	YearIsSet       bool
	Month           int
	MonthIsSet      bool
	Day             int
	DayIsSet        bool
	Weekday         int // 0 is Sunday
	WeekdayIsSet    bool
	Hour            int
	HourIsSet       bool
	Minute          int
	MinuteIsSet     bool
	Second          int
	SecondIsSet     bool
	Nanosecond      int
	NanosecondIsSet bool
}

// HasAny reports whether anything at all was recognized.
func (d *Date) HasAny() bool {
	return d.YearIsSet || d.MonthIsSet || d.DayIsSet ||
		d.HourIsSet || d.MinuteIsSet || d.SecondIsSet
}

const maxLength = 128

const abbrWeekdays = "sun|mon|tue|wed|thu|fri|sat"
const abbrMonths = "jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec"

var abbrWeekdaysArr = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
var abbrMonthsArr = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// number that isn't a continuation of a longer digit run
const freeNumber = "(?<!\\d)\\d"

const regexTimeout = 250 * time.Millisecond

var scrubRegex *regexp2.Regexp
var weekdayRegex *regexp2.Regexp
var clockRegex *regexp2.Regexp
var meridiemRegex *regexp2.Regexp
var dayMonthYearRegex *regexp2.Regexp
var monthDayYearRegex *regexp2.Regexp
var dashedRegex *regexp2.Regexp
var slashedRegex *regexp2.Regexp
var dottedRegex *regexp2.Regexp
var apostropheYearRegex *regexp2.Regexp
var monthNameRegex *regexp2.Regexp
var ordinalDayRegex *regexp2.Regexp
var fragmentRegex *regexp2.Regexp

func init() {
	scrubRegex = regexp2.MustCompile("[^-+',./:A-Za-z0-9]+", regexp2.None)

	weekdayRegex = regexp2.MustCompile(
		"\\b("+abbrWeekdays+")[^-/\\d\\s]*",
		regexp2.IgnoreCase,
	)

	clockRegex = regexp2.MustCompile(""+
		/**/ "("+freeNumber+"\\d?)"+
		/**/ "\\s*:\\s*(\\d{1,2})"+
		/**/ "(?:"+
		/*  */ "\\s*:\\s*(\\d{1,2})(?:[.,](\\d+))?"+
		/**/ ")?"+
		/**/ "(?:"+
		/*  */ "\\s*([ap])(?:m\\b|\\.m\\.)"+
		/**/ ")?",
		regexp2.IgnoreCase,
	)
	clockRegex.MatchTimeout = regexTimeout

	meridiemRegex = regexp2.MustCompile(
		"("+freeNumber+"\\d?)\\s*([ap])(?:m\\b|\\.m\\.)",
		regexp2.IgnoreCase,
	)
	meridiemRegex.MatchTimeout = regexTimeout

	dayMonthYearRegex = regexp2.MustCompile(""+
		/**/ "('?"+freeNumber+"+)[^-\\d\\s]*"+
		/**/ "\\s*"+
		/**/ "("+abbrMonths+")[^-\\d\\s']*"+
		/**/ "(?:"+
		/*  */ "\\s*,?"+
		/*  */ "\\s*('?-?\\d+)"+
		/**/ ")?",
		regexp2.IgnoreCase,
	)
	dayMonthYearRegex.MatchTimeout = regexTimeout

	monthDayYearRegex = regexp2.MustCompile(""+
		/**/ "\\b("+abbrMonths+")[^-\\d\\s']*"+
		/**/ "\\s*"+
		/**/ "('?\\d+)[^-\\d\\s']*"+
		/**/ "(?:"+
		/*  */ "\\s*,?"+
		/*  */ "\\s*('?-?\\d+)"+
		/**/ ")?",
		regexp2.IgnoreCase,
	)
	monthDayYearRegex.MatchTimeout = regexTimeout

	dashedRegex = regexp2.MustCompile(
		"('?[-+]?"+freeNumber+"+)-(\\d+)-('?-?\\d+)",
		regexp2.None,
	)
	dashedRegex.MatchTimeout = regexTimeout

	slashedRegex = regexp2.MustCompile(
		"('?-?"+freeNumber+"+)/\\s*('?\\d+)(?:\\D\\s*('?-?\\d+))?",
		regexp2.IgnoreCase,
	)
	slashedRegex.MatchTimeout = regexTimeout

	dottedRegex = regexp2.MustCompile(
		"('?-?"+freeNumber+"+)\\.\\s*('?\\d+)\\.\\s*('?-?\\d+)",
		regexp2.IgnoreCase,
	)
	dottedRegex.MatchTimeout = regexTimeout

	apostropheYearRegex = regexp2.MustCompile("'(\\d+)\\b", regexp2.None)

	monthNameRegex = regexp2.MustCompile(
		"\\b("+abbrMonths+")\\S*",
		regexp2.IgnoreCase,
	)

	ordinalDayRegex = regexp2.MustCompile(
		"("+freeNumber+"+)(st|nd|rd|th)\\b",
		regexp2.IgnoreCase,
	)
	ordinalDayRegex.MatchTimeout = regexTimeout

	fragmentRegex = regexp2.MustCompile("\\A\\s*(\\d{1,2})\\s*\\z", regexp2.None)
}

func weekdayNum(str string) (int, bool) {
	for i, weekday := range abbrWeekdaysArr {
		if strings.EqualFold(weekday, str) {
			return i, true
		}
	}
	return 0, false
}

func monthNum(str string) (int, bool) {
	for i, month := range abbrMonthsArr {
		if strings.EqualFold(month, str) {
			return i + 1, true
		}
	}
	return 0, false
}

type parser struct {
	str   string
	hints Hints
	date  Date
	// fullYear locks two-digit year expansion: the year token carried more
	// than two digits or a sign, so it already is a full year.
	fullYear bool
}

// Parse scans str for date and time fragments. The result may be empty;
// callers check the IsSet flags or HasAny.
func Parse(str string, hints Hints) Date {
	if len(str) > maxLength {
		return Date{}
	}
	str, _ = scrubRegex.Replace(str, " ", -1, -1)

	p := parser{str: str, hints: hints}
	p.weekday()
	p.clock()

	_ = p.dayMonthYear() ||
		p.monthDayYear() ||
		p.dashed() ||
		p.slashed() ||
		p.dotted() ||
		p.apostropheYear() ||
		p.monthName() ||
		p.ordinalDay()

	p.fragment()
	p.expandYear()
	return p.date
}

// find runs re over the remaining text, swallowing regex timeouts as
// non-matches.
func (p *parser) find(re *regexp2.Regexp) *regexp2.Match {
	match, err := re.FindStringMatch(p.str)
	if err != nil {
		log.Warn().Err(err).Msg("Fuzzy date regex gave up")
		return nil
	}
	return match
}

// consume blanks out the matched fragment so later passes don't see it.
func (p *parser) consume(match *regexp2.Match) {
	p.str = strings.Replace(p.str, match.String(), " ", 1)
}

func (p *parser) weekday() {
	match := p.find(weekdayRegex)
	if match == nil {
		return
	}
	p.consume(match)

	p.date.Weekday, p.date.WeekdayIsSet = weekdayNum(match.Groups()[1].String())
}

func (p *parser) clock() {
	match := p.find(clockRegex)
	if match == nil {
		match = p.find(meridiemRegex)
		if match == nil {
			return
		}
		p.consume(match)
		groups := match.Groups()
		hour, err := strconv.Atoi(groups[1].String())
		if err != nil {
			return
		}
		p.setHour(hour, groups[2].String())
		return
	}
	p.consume(match)
	groups := match.Groups()

	hour, err := strconv.Atoi(groups[1].String())
	if err != nil {
		return
	}

	if minute, err := strconv.Atoi(groups[2].String()); err == nil {
		p.date.Minute = minute
		p.date.MinuteIsSet = true
	}
	if groups[3].Length > 0 {
		if second, err := strconv.Atoi(groups[3].String()); err == nil {
			p.date.Second = second
			p.date.SecondIsSet = true
		}
	}
	p.subsecond(groups[4].String())
	p.setHour(hour, groups[5].String())
}

func (p *parser) setHour(hour int, meridiem string) {
	if meridiem != "" {
		hour %= 12
		if meridiem[0] == 'P' || meridiem[0] == 'p' {
			hour += 12
		}
	}
	p.date.Hour = hour
	p.date.HourIsSet = true
}

func (p *parser) subsecond(fractionStr string) {
	if fractionStr == "" || len(fractionStr) > 9 {
		return
	}
	fraction, err := strconv.Atoi(fractionStr)
	if err != nil {
		return
	}
	for i := len(fractionStr); i < 9; i++ {
		fraction *= 10
	}
	p.date.Nanosecond = fraction
	p.date.NanosecondIsSet = true
}

func (p *parser) dayMonthYear() bool {
	match := p.find(dayMonthYearRegex)
	if match == nil {
		return false
	}
	p.consume(match)
	groups := match.Groups()

	month, _ := monthNum(groups[2].String())
	p.assign(groups[3].String(), strconv.Itoa(month), groups[1].String())
	return true
}

func (p *parser) monthDayYear() bool {
	match := p.find(monthDayYearRegex)
	if match == nil {
		return false
	}
	p.consume(match)
	groups := match.Groups()

	month, _ := monthNum(groups[1].String())
	p.assign(groups[3].String(), strconv.Itoa(month), groups[2].String())
	return true
}

func (p *parser) dashed() bool {
	match := p.find(dashedRegex)
	if match == nil {
		return false
	}
	p.consume(match)
	groups := match.Groups()

	first := groups[1].String()
	second := groups[2].String()
	third := groups[3].String()

	switch {
	case p.hints.YearFirst || tokenDigits(first) > 2 || tokenMarked(first):
		p.assign(first, second, third)
	case p.hints.DayFirst:
		p.assign(third, second, first)
	default:
		p.assign(third, first, second)
	}
	return true
}

func (p *parser) slashed() bool {
	match := p.find(slashedRegex)
	if match == nil {
		return false
	}
	p.consume(match)
	groups := match.Groups()

	first := groups[1].String()
	second := groups[2].String()
	third := groups[3].String()

	switch {
	case tokenDigits(first) > 2 || tokenMarked(first):
		p.assign(first, second, third)
	case p.hints.DayFirst:
		p.assign(third, second, first)
	default:
		p.assign(third, first, second)
	}
	return true
}

func (p *parser) dotted() bool {
	match := p.find(dottedRegex)
	if match == nil {
		return false
	}
	p.consume(match)
	groups := match.Groups()

	p.assign(groups[1].String(), groups[2].String(), groups[3].String())
	return true
}

func (p *parser) apostropheYear() bool {
	match := p.find(apostropheYearRegex)
	if match == nil {
		return false
	}
	p.consume(match)

	if year, err := strconv.Atoi(match.Groups()[1].String()); err == nil {
		p.date.Year = year
		p.date.YearIsSet = true
	}
	return true
}

func (p *parser) monthName() bool {
	match := p.find(monthNameRegex)
	if match == nil {
		return false
	}
	p.consume(match)

	p.date.Month, p.date.MonthIsSet = monthNum(match.Groups()[1].String())
	return true
}

func (p *parser) ordinalDay() bool {
	match := p.find(ordinalDayRegex)
	if match == nil {
		return false
	}
	p.consume(match)

	if day, err := strconv.Atoi(match.Groups()[1].String()); err == nil {
		p.date.Day = day
		p.date.DayIsSet = true
	}
	return true
}

// fragment promotes a lone leftover 1-2 digit number to the day or the hour,
// whichever is still missing.
func (p *parser) fragment() {
	match := p.find(fragmentRegex)
	if match == nil {
		return
	}
	p.consume(match)

	num, err := strconv.Atoi(match.Groups()[1].String())
	if err != nil {
		return
	}
	if p.date.HourIsSet && !p.date.DayIsSet && num >= 1 && num <= 31 {
		p.date.Day = num
		p.date.DayIsSet = true
	} else if p.date.DayIsSet && !p.date.HourIsSet && num >= 0 && num <= 24 {
		p.date.Hour = num
		p.date.HourIsSet = true
	}
}

func (p *parser) expandYear() {
	if !p.date.YearIsSet || p.fullYear {
		return
	}
	if p.date.Year >= 0 && p.date.Year <= 99 {
		if p.date.Year >= 69 {
			p.date.Year += 1900
		} else {
			p.date.Year += 2000
		}
	}
}

// tokenDigits counts the digits of a raw token, skipping an apostrophe or
// sign prefix.
func tokenDigits(tok string) int {
	i := 0
	for i < len(tok) && (tok[i] < '0' || tok[i] > '9') {
		i++
	}
	n := 0
	for i+n < len(tok) && tok[i+n] >= '0' && tok[i+n] <= '9' {
		n++
	}
	return n
}

// tokenMarked reports an apostrophe or sign prefix, which pins the token to
// the year slot.
func tokenMarked(tok string) bool {
	return tok != "" && (tok[0] == '\'' || tok[0] == '-' || tok[0] == '+')
}

func tokenValue(tok string) (int, bool) {
	i := 0
	for i < len(tok) && (tok[i] < '0' || tok[i] > '9') {
		i++
	}
	n := tokenDigits(tok)
	if n == 0 {
		return 0, false
	}
	value, err := strconv.Atoi(tok[i : i+n])
	if err != nil {
		return 0, false
	}
	return value, true
}

// assign distributes three raw tokens over the year, month and day slots,
// shuffling the way Ruby's date parser does: a token with more than two
// digits, a sign or an apostrophe belongs in the year slot no matter where
// it appeared.
func (p *parser) assign(year, month, day string) {
	if year != "" && month != "" && day == "" {
		year, month, day = day, year, month
	}
	if year == "" && day != "" && (tokenDigits(day) > 2 || tokenMarked(day)) {
		year, day = day, ""
	}
	if month != "" && (tokenDigits(month) > 2 || tokenMarked(month)) {
		year, month, day = month, day, year
	}
	if day != "" && (tokenDigits(day) > 2 || tokenMarked(day)) {
		year, day = day, year
	}

	if year != "" {
		if tokenDigits(year) > 2 || (year != "" && (year[0] == '-' || year[0] == '+')) {
			p.fullYear = true
		}
		if value, ok := tokenValue(year); ok {
			p.date.Year = value
			p.date.YearIsSet = true
		}
	}
	if month != "" {
		if value, ok := tokenValue(month); ok && value > 0 {
			p.date.Month = value
			p.date.MonthIsSet = true
		}
	}
	if day != "" {
		if value, ok := tokenValue(day); ok {
			p.date.Day = value
			p.date.DayIsSet = true
		}
	}

	// The day/month ordering hints are preferences, not commands: a group
	// that can't be a month is a day.
	if p.date.MonthIsSet && p.date.DayIsSet && p.date.Month > 12 && p.date.Day <= 12 {
		p.date.Month, p.date.Day = p.date.Day, p.date.Month
	}
}

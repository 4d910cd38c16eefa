package parsing

import (
	"fmt"
	"time"

	"github.com/winarcooo/pendulum/oops"
)

type Kind int

const (
	KindDateTime Kind = iota
	KindDate
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindDateTime:
		return "datetime"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	default:
		panic("Unknown parsed kind")
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Parsed is the result of a parse: a date, a time or a datetime depending on
// Kind. Time fields are zero for KindDate, date fields are zero for KindTime.
// Microsecond always holds exactly six digits of subsecond precision.
type Parsed struct {
	Kind        Kind `json:"kind"`
	Year        int  `json:"year"`
	Month       int  `json:"month"`
	Day         int  `json:"day"`
	Hour        int  `json:"hour"`
	Minute      int  `json:"minute"`
	Second      int  `json:"second"`
	Microsecond int  `json:"microsecond"`
}

func (p Parsed) String() string {
	switch p.Kind {
	case KindDate:
		return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
	case KindTime:
		return p.timeString()
	default:
		return fmt.Sprintf("%04d-%02d-%02dT%s", p.Year, p.Month, p.Day, p.timeString())
	}
}

func (p Parsed) timeString() string {
	if p.Microsecond > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", p.Hour, p.Minute, p.Second, p.Microsecond)
	}
	return fmt.Sprintf("%02d:%02d:%02d", p.Hour, p.Minute, p.Second)
}

// Time converts to time.Time in UTC. For KindTime the date fields are zero,
// so the result sits on January 1 of year 1.
func (p Parsed) Time() time.Time {
	year, month, day := p.Year, p.Month, p.Day
	if p.Kind == KindTime {
		year, month, day = 1, 1, 1
	}
	return time.Date(
		year, time.Month(month), day,
		p.Hour, p.Minute, p.Second, p.Microsecond*1000, time.UTC,
	)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysInMonth is the number of days for non-leap years in each calendar month starting at 1
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysIn(month, year int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

func checkDate(year, month, day int) error {
	if year < 1 || year > 9999 {
		return oops.Wrapf(ErrInvalidValue, "year %d is out of range", year)
	}
	if month < 1 || month > 12 {
		return oops.Wrapf(ErrInvalidValue, "month %d is out of range", month)
	}
	if day < 1 || day > daysIn(month, year) {
		return oops.Wrapf(ErrInvalidValue, "day %d is out of range for %04d-%02d", day, year, month)
	}
	return nil
}

func checkTime(hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return oops.Wrapf(ErrInvalidValue, "hour %d is out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return oops.Wrapf(ErrInvalidValue, "minute %d is out of range", minute)
	}
	if second < 0 || second > 59 {
		return oops.Wrapf(ErrInvalidValue, "second %d is out of range", second)
	}
	return nil
}

func newDate(year, month, day int) (Parsed, error) {
	if err := checkDate(year, month, day); err != nil {
		return Parsed{}, err
	}
	return Parsed{Kind: KindDate, Year: year, Month: month, Day: day}, nil
}

func newTime(hour, minute, second, microsecond int) (Parsed, error) {
	if err := checkTime(hour, minute, second); err != nil {
		return Parsed{}, err
	}
	return Parsed{
		Kind: KindTime,
		Hour: hour, Minute: minute, Second: second, Microsecond: microsecond,
	}, nil
}

func newDateTime(year, month, day, hour, minute, second, microsecond int) (Parsed, error) {
	if err := checkDate(year, month, day); err != nil {
		return Parsed{}, err
	}
	if err := checkTime(hour, minute, second); err != nil {
		return Parsed{}, err
	}
	return Parsed{
		Kind: KindDateTime,
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second, Microsecond: microsecond,
	}, nil
}

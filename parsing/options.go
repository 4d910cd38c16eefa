package parsing

import "time"

// Fallback is the permissive parser consulted after both structured matchers
// fail, and only when strict mode is off. The hints mirror the DayFirst and
// YearFirst options. Implementations return a datetime-shaped value.
type Fallback interface {
	Parse(text string, dayFirst bool, yearFirst bool) (Parsed, error)
}

// Options is resolved once per Parse call and never mutated afterwards.
type Options struct {
	// DayFirst swaps the day/month assignment when a matched date is
	// ambiguous about their order. Also forwarded to the fallback parser.
	DayFirst bool
	// YearFirst is forwarded to the fallback parser only.
	YearFirst bool
	// Strict makes a non-match in both structured matchers a terminal
	// failure instead of consulting the fallback parser.
	Strict bool
	// Exact skips normalization, returning the raw shape the matcher
	// produced: a date, a time or a datetime.
	Exact bool
	// Now is the reference instant used to backfill missing components
	// during normalization. Zero means the wall clock at call time.
	Now time.Time
	// Fallback overrides the built-in fuzzy parser. Nil means built-in.
	Fallback Fallback
}

type Option func(*Options)

func WithDayFirst(dayFirst bool) Option {
	return func(options *Options) {
		options.DayFirst = dayFirst
	}
}

func WithYearFirst(yearFirst bool) Option {
	return func(options *Options) {
		options.YearFirst = yearFirst
	}
}

func WithStrict(strict bool) Option {
	return func(options *Options) {
		options.Strict = strict
	}
}

func WithExact(exact bool) Option {
	return func(options *Options) {
		options.Exact = exact
	}
}

func WithNow(now time.Time) Option {
	return func(options *Options) {
		options.Now = now
	}
}

func WithFallback(fallback Fallback) Option {
	return func(options *Options) {
		options.Fallback = fallback
	}
}

func resolveOptions(opts []Option) Options {
	options := Options{
		YearFirst: true,
		Strict:    true,
	}
	for _, opt := range opts {
		opt(&options)
	}
	// Captured once so that a call is deterministic when an explicit
	// reference instant is supplied.
	if options.Now.IsZero() {
		options.Now = time.Now()
	}
	return options
}

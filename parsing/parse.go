// Package parsing turns arbitrary strings into date, time or datetime values.
//
// Recognition tries three strategies in a fixed order: the ISO 8601 matcher,
// the common-format matcher, and (unless the Strict option is on) a
// permissive fallback parser. The first success wins, and the result is
// normalized into a full datetime unless the Exact option asks for the raw
// shape.
package parsing

import (
	"errors"

	"github.com/winarcooo/pendulum/oops"
)

type matcher func(text string, options Options) (Parsed, error)

var matchers = []matcher{
	func(text string, _ Options) (Parsed, error) { return parseISO8601(text) },
	parseCommon,
}

// Parse parses text with the given options.
func Parse(text string, opts ...Option) (Parsed, error) {
	options := resolveOptions(opts)
	parsed, err := attempt(text, options)
	if err != nil {
		return Parsed{}, err
	}
	return normalize(parsed, options), nil
}

func attempt(text string, options Options) (Parsed, error) {
	for _, match := range matchers {
		parsed, err := match(text, options)
		if err == nil {
			return parsed, nil
		}
		if errors.Is(err, errNoMatch) {
			continue
		}
		// The text matched this grammar structurally, so the author meant
		// it: an out-of-range field is terminal, not a fallthrough.
		return Parsed{}, oops.Wrapf(err, "unable to parse string [%s]", text)
	}

	if options.Strict {
		return Parsed{}, oops.Wrap(&ParseError{Text: text})
	}

	fallback := options.Fallback
	if fallback == nil {
		fallback = &fuzzyFallback{now: options.Now}
	}
	parsed, err := fallback.Parse(text, options.DayFirst, options.YearFirst)
	if err != nil {
		return Parsed{}, oops.Wrap(&ParseError{Text: text, cause: err})
	}
	return parsed, nil
}

package parsing

// normalize converts date-only and time-only values into full datetimes,
// backfilling the missing components from the reference instant. Already-full
// datetimes pass through unchanged, which makes normalization idempotent.
// Skipped entirely when the Exact option is set.
func normalize(parsed Parsed, options Options) Parsed {
	if options.Exact {
		return parsed
	}

	switch parsed.Kind {
	case KindTime:
		return Parsed{
			Kind:  KindDateTime,
			Year:  options.Now.Year(),
			Month: int(options.Now.Month()),
			Day:   options.Now.Day(),
			Hour:  parsed.Hour, Minute: parsed.Minute,
			Second: parsed.Second, Microsecond: parsed.Microsecond,
		}
	case KindDate:
		return Parsed{
			Kind: KindDateTime,
			Year: parsed.Year, Month: parsed.Month, Day: parsed.Day,
		}
	default:
		return parsed
	}
}

package parsing

import (
	"fmt"

	"github.com/pkg/errors"
)

// errNoMatch is the internal signal that a matcher didn't recognize the text
// at all. It only drives fallthrough to the next matcher and never reaches
// the caller.
var errNoMatch = errors.New("text doesn't match")

// ErrInvalidValue means the text matched a grammar but a numeric field is out
// of calendar or clock range. The author clearly intended that grammar, so
// the other matchers are not consulted.
var ErrInvalidValue = errors.New("value is out of range")

// ParseError is the terminal failure after all applicable matchers have been
// exhausted. Text is the original input.
type ParseError struct {
	Text  string
	cause error
}

func (err *ParseError) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("unable to parse string [%s]: %s", err.Text, err.cause)
	}
	return fmt.Sprintf("unable to parse string [%s]", err.Text)
}

func (err *ParseError) Unwrap() error {
	return err.cause
}

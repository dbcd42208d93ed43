package colorful

import (
	"errors"
	"fmt"
)

var (
	// ErrNotHexFormat is returned for strings which don't start with '#'.
	ErrNotHexFormat = errors.New("not a hex color")

	// ErrBadHexLength is returned when there are neither 3 nor 6 digits.
	ErrBadHexLength = errors.New("hex color must have 3 or 6 digits")

	// ErrMalformedHex is returned when the digits are not hexadecimal.
	ErrMalformedHex = errors.New("malformed hex digits")
)

// ParseError records a failed hex color parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("colorful: parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

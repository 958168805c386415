package resourceid

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch    = errors.New("identifier has invalid length")
	ErrPrefixMismatch    = errors.New("identifier has incorrect prefix")
	ErrInvalidSuffixChar = errors.New("identifier suffix contains invalid character")
	ErrZeroValue         = errors.New("zero identifier has no textual form")
)

// ParseError is returned by Parse for any invalid input. Err wraps one of
// the sentinel errors above, so errors.Is(err, ErrPrefixMismatch) etc.
// work on the returned value; for charset failures errors.As recovers a
// *SuffixCharError with the offending byte and position.
type ParseError struct {
	Prefix string // required prefix of the target type, e.g. "vpc-"
	Input  string // the rejected input
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("resourceid: parse %q id from %q: %s", e.Prefix, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SuffixCharError reports the first byte of the suffix that is not a
// lowercase hex digit. Pos is the byte offset within the full input, not
// within the suffix. It matches ErrInvalidSuffixChar under errors.Is.
type SuffixCharError struct {
	Pos  int
	Char byte
}

func (e *SuffixCharError) Error() string {
	return fmt.Sprintf("%s: byte %q at position %d", ErrInvalidSuffixChar, e.Char, e.Pos)
}

func (e *SuffixCharError) Unwrap() error {
	return ErrInvalidSuffixChar
}

package resourceid

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Prefix is implemented by the zero-size marker types that bind a concrete
// identifier type to its resource prefix (e.g. "vpc-"). The method is
// unexported so the set of resource types is closed; see ids.go for the
// full table.
type Prefix interface {
	prefix() string
}

// Suffix lengths AWS has used for generated resource identifiers: 8 hex
// characters before January 2016, 17 afterwards.
// https://docs.aws.amazon.com/AWSEC2/latest/UserGuide/resource-ids.html
const (
	shortSuffixLen = 8
	longSuffixLen  = 17
)

// ID is a validated AWS resource identifier of the general
// "prefix-uniquesuffix" format. Only the unique suffix is stored; the
// prefix is a compile-time property of the type parameter. The value is
// exactly 18 bytes with no indirection, so it is freely copyable, usable
// as a map key, and safe to share across goroutines.
//
// The zero value is not a valid identifier; construct values with Parse,
// MustParse, FromTrusted, or Generate.
type ID[P Prefix] struct {
	suffix [17]byte
	n      uint8 // 8, 17, or 0 for the zero value
}

// Parse validates s as an identifier of type P and returns it.
//
// Checks run in a fixed order and the first failure wins: total length
// must be len(prefix)+8 or len(prefix)+17 (ErrLengthMismatch), the leading
// bytes must equal the prefix exactly (ErrPrefixMismatch), and every
// suffix byte must be a lowercase hex digit (ErrInvalidSuffixChar). All
// failures are returned as *ParseError; match kinds with errors.Is.
func Parse[P Prefix](s string) (ID[P], error) {
	var id ID[P]
	var p P
	prefix := p.prefix()

	n := len(s) - len(prefix)
	if n != shortSuffixLen && n != longSuffixLen {
		return id, &ParseError{
			Prefix: prefix,
			Input:  s,
			Err: fmt.Errorf("%w: want %d or %d bytes, got %d",
				ErrLengthMismatch, len(prefix)+shortSuffixLen, len(prefix)+longSuffixLen, len(s)),
		}
	}
	if s[:len(prefix)] != prefix {
		return id, &ParseError{
			Prefix: prefix,
			Input:  s,
			Err:    fmt.Errorf("%w: want %q", ErrPrefixMismatch, prefix),
		}
	}
	for i := len(prefix); i < len(s); i++ {
		if !isLowerHex(s[i]) {
			return id, &ParseError{
				Prefix: prefix,
				Input:  s,
				Err:    &SuffixCharError{Pos: i, Char: s[i]},
			}
		}
	}

	copy(id.suffix[:], s[len(prefix):])
	id.n = uint8(n)
	return id, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// constants and test fixtures.
func MustParse[P Prefix](s string) ID[P] {
	id, err := Parse[P](s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromTrusted constructs an identifier from s without validation.
//
// The caller contracts that s is a valid textual form for type P, e.g.
// because it was previously produced by String on a parsed value and
// stored in a trusted place. Supplying anything else silently produces a
// corrupt value (truncated to the 17-byte suffix capacity if over-long,
// or panicking here if s is shorter than the prefix); that is a contract
// violation of the caller, not a reportable error. Later accessors never
// panic on such a value.
func FromTrusted[P Prefix](s string) ID[P] {
	var id ID[P]
	var p P
	suffix := s[len(p.prefix()):]
	id.n = uint8(copy(id.suffix[:], suffix))
	return id
}

// Generate returns a random identifier of type P with a 17-character
// suffix, drawn from crypto/rand. Useful for fixtures and fakes; the
// result is syntactically valid but refers to no real resource.
func Generate[P Prefix]() (ID[P], error) {
	var raw [9]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return ID[P]{}, err
	}
	var dst [18]byte
	hex.Encode(dst[:], raw[:]) // hex.Encode always produces lowercase

	var id ID[P]
	copy(id.suffix[:], dst[:longSuffixLen])
	id.n = longSuffixLen
	return id, nil
}

// String returns the full textual form, prefix included. This is the only
// allocating operation on the type.
func (id ID[P]) String() string {
	var p P
	prefix := p.prefix()
	b := make([]byte, 0, len(prefix)+int(id.n))
	b = append(b, prefix...)
	b = append(b, id.suffix[:id.n]...)
	return string(b)
}

// Prefix returns the static resource prefix for the type, e.g. "vpc-".
// It does not depend on the stored value.
func (id ID[P]) Prefix() string {
	var p P
	return p.prefix()
}

// Suffix returns the unique part after the prefix.
func (id ID[P]) Suffix() string {
	return string(id.suffix[:id.n])
}

// IsZero reports whether id is the zero value, which no parse ever
// produces.
func (id ID[P]) IsZero() bool {
	return id.n == 0
}

// Compare orders identifiers byte-wise over their textual form: the
// result matches strings.Compare(a.String(), b.String()). Identifiers of
// the same type share a prefix, so comparing suffixes suffices.
func (id ID[P]) Compare(other ID[P]) int {
	return bytes.Compare(id.suffix[:id.n], other.suffix[:other.n])
}

// Less reports whether id orders before other; see Compare.
func (id ID[P]) Less(other ID[P]) bool {
	return id.Compare(other) < 0
}

func isLowerHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

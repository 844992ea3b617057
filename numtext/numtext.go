// Package numtext converts numbers into Haitian Creole spoken text.
//
// The package provides two operations:
//
//   - Convert turns a non-negative integer into cardinal Haitian Creole words.
//   - ExpandNumbers replaces every run of ASCII digits in a text with its words.
//
// Words are lowercase and joined with single spaces between magnitude and
// hundred groups, and with a hyphen between a tens word and a units word
// ("san ven-twa" for 123, "de mil ven-twa" for 2023).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is limited to [0, 10^15) (the largest scale word is bilion).
//   - Ordinals, decimals and negative numbers are not supported.
//   - There is no reverse conversion from words to numbers.
package numtext

import "errors"

var (
	// ErrNegative is returned by Convert for n < 0.
	ErrNegative = errors.New("numtext: negative number")

	// ErrOutOfRange is returned by Convert for n > MaxValue.
	ErrOutOfRange = errors.New("numtext: number out of range")
)

// Convert returns the Haitian Creole cardinal text for n.
// Zero returns "zero". A leading one is dropped before "san" and before
// scale words: 100 is "san", 1001 is "mil en".
//
// Returns ErrNegative for negative n and ErrOutOfRange for n >= 10^15.
func Convert(n int64) (string, error) {
	if n < 0 {
		return "", ErrNegative
	}
	if n > MaxValue {
		return "", ErrOutOfRange
	}
	return convert(n), nil
}

// ExpandNumbers replaces each maximal run of ASCII digits in s with its
// Haitian Creole text. Everything else is copied unchanged. Runs that do
// not fit the supported range are left as digits.
// The replacement text is never scanned again.
func ExpandNumbers(s string) string {
	return expandNumbers(s)
}

// Package normalize cleans Haitian Creole text before phonemization.
//
// A cleaner is a fixed sequence of stages applied to the whole text. Three
// cleaners are registered by name:
//
//   - "basic": NFC composition, lowercasing, whitespace collapse.
//   - "transliteration": ASCII folding, lowercasing, whitespace collapse.
//   - "haitian_creole": ASCII folding, lowercasing, abbreviation expansion,
//     punctuation normalization, number expansion, IPA rules, whitespace
//     collapse.
//
// Phonemes runs the Haitian Creole stages up to number expansion and then
// hands the text to an external Phonemizer.
//
// The individual stages are exported so callers can compose their own order.
// Order matters: punctuation normalization rewrites hyphens, so it must run
// before number expansion introduces hyphenated words ("ven-twa").
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Input larger than 1 MiB is returned unchanged by the cleaners.
//   - ASCII folding removes è and ò, so the IPA rule for ò only fires when
//     ApplyIPARules is called on untransliterated text.
package normalize

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kreyol-ai/ht-lang-nlp/internal/htcase"
)

// maxInputBytes is the maximum input size for the registered cleaners.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// DefaultCleaner is the cleaner used when none is named.
const DefaultCleaner = "haitian_creole"

// ErrUnknownCleaner is returned by Lookup and Clean for an unregistered name.
var ErrUnknownCleaner = errors.New("normalize: unknown cleaner")

// Cleaner transforms text in a single pass through its stages.
type Cleaner func(string) string

var cleaners = map[string]Cleaner{
	"basic":           Basic,
	"transliteration": Transliteration,
	"haitian_creole":  HaitianCreole,
}

// Lookup returns the cleaner registered under name.
// An empty name selects DefaultCleaner.
func Lookup(name string) (Cleaner, error) {
	if name == "" {
		name = DefaultCleaner
	}
	c, ok := cleaners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCleaner, name)
	}
	return c, nil
}

// Names returns the registered cleaner names in sorted order.
func Names() []string {
	names := make([]string, 0, len(cleaners))
	for name := range cleaners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clean applies the cleaner registered under name to s.
func Clean(name, s string) (string, error) {
	c, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return c(s), nil
}

// Basic lowercases s and collapses whitespace without transliteration.
func Basic(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	s = htcase.ComposeNFC(s)
	s = Lowercase(s)
	return CollapseWhitespace(s)
}

// Transliteration folds s to ASCII, lowercases it and collapses whitespace.
func Transliteration(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	s = ConvertToASCII(s)
	s = Lowercase(s)
	return CollapseWhitespace(s)
}

// HaitianCreole runs the full Haitian Creole cleaning sequence on s.
// The result is lowercase text with numbers spelled out and IPA rules
// applied, ready for a character-level acoustic model.
func HaitianCreole(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	s = prepare(s)
	s = ApplyIPARules(s)
	return CollapseWhitespace(s)
}

// prepare runs the stages shared by HaitianCreole and Phonemes.
func prepare(s string) string {
	s = ConvertToASCII(s)
	s = Lowercase(s)
	s = ExpandAbbreviations(s)
	s = ConvertSpecialCharacters(s)
	return ExpandNumbers(s)
}

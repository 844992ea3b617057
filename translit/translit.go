// Package translit folds text to plain ASCII before it reaches the
// phonemizer's symbol set.
//
// Letters with diacritics lose their marks (è -> e, ç -> c), ligatures and
// letters without a decomposition are spelled out from a fixed table
// (ß -> ss, æ -> ae), typographic punctuation is replaced by its ASCII
// counterpart (— -> --, “ -> "). Anything else outside ASCII is dropped.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known lossy conversions:
//   - Haitian Creole è and ò fold to e and o; callers that need the open
//     vowels must transliterate after phonemization, not before.
//   - Scripts without a Latin decomposition (Cyrillic, CJK, Arabic) are removed.
package translit

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transform chains are stateful; each call takes its own from the pool.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.Predicate(isNonASCII)),
		)
	},
}

// ToASCII returns s folded to ASCII.
func ToASCII(s string) string {
	if isASCII(s) {
		return s
	}

	s = strings.ToValidUTF8(s, "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sub, ok := asciiFallback[r]; ok {
			b.WriteString(sub)
		} else {
			b.WriteRune(r)
		}
	}

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, b.String())
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return dropNonASCII(b.String())
	}
	return out
}

// dropNonASCII removes every non-ASCII rune without decomposing first.
func dropNonASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if isNonASCII(r) {
			return -1
		}
		return r
	}, s)
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

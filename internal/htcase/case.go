// Package htcase provides Haitian Creole case conversion.
//
// Haitian Creole has no locale-specific case mappings of its own, but text
// arriving from the wild mixes precomposed and decomposed accents (è, ò)
// and occasionally special casings such as final sigma or ß in quoted
// foreign names. Lowering goes through golang.org/x/text/cases so those
// are handled by the full Unicode rules rather than rune by rune.
//
// All functions are safe for concurrent use.
package htcase

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tag is the BCP 47 tag for Haitian Creole.
var Tag = language.MustParse("ht")

// casers are stateful and must not be shared between goroutines.
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(Tag)
		return &c
	},
}

// ToLower returns s lowercased with Haitian Creole casing rules.
func ToLower(s string) string {
	if s == "" || isLowerASCII(s) {
		return s
	}
	c := lowerPool.Get().(*cases.Caser)
	out := c.String(s)
	lowerPool.Put(c)
	return out
}

// isLowerASCII reports whether s contains only ASCII bytes without
// uppercase letters.
func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

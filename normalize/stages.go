package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kreyol-ai/ht-lang-nlp/abbrev"
	"github.com/kreyol-ai/ht-lang-nlp/internal/htcase"
	"github.com/kreyol-ai/ht-lang-nlp/numtext"
	"github.com/kreyol-ai/ht-lang-nlp/translit"
)

// specialCharacters rewrites separators that a phonemizer would otherwise
// read aloud or drop. Surrounding whitespace is absorbed into the
// replacement.
var specialCharacters = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\s*/\s*`), ", "},
	{regexp.MustCompile(`\s*-+\s*`), "; "},
	{regexp.MustCompile(`\s*—+\s*`), "; "},
}

// Lowercase returns s lowercased.
func Lowercase(s string) string {
	return htcase.ToLower(s)
}

// ConvertToASCII folds s to ASCII.
func ConvertToASCII(s string) string {
	return translit.ToASCII(s)
}

// ExpandAbbreviations expands Haitian Creole abbreviations in s.
func ExpandAbbreviations(s string) string {
	return abbrev.Expand(s)
}

// ExpandNumbers spells out every run of ASCII digits in s.
func ExpandNumbers(s string) string {
	return numtext.ExpandNumbers(s)
}

// ConvertSpecialCharacters replaces slashes with ", " and runs of hyphens
// or em dashes with "; ".
func ConvertSpecialCharacters(s string) string {
	for _, sc := range specialCharacters {
		s = sc.re.ReplaceAllLiteralString(s, sc.repl)
	}
	return s
}

// CollapseWhitespace replaces each run of Unicode whitespace with a single
// ASCII space. Leading and trailing whitespace is collapsed, not removed.
func CollapseWhitespace(s string) string {
	if !needsCollapse(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
		} else {
			inSpace = false
			b.WriteString(s[i : i+size]) // invalid bytes are copied as is
		}
		i += size
	}
	return b.String()
}

// needsCollapse reports whether s contains any whitespace other than
// isolated ASCII spaces.
func needsCollapse(s string) bool {
	prevSpace := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			prevSpace = false
			continue
		}
		if !unicode.IsSpace(r) {
			prevSpace = false
			continue
		}
		if r != ' ' || prevSpace {
			return true
		}
		prevSpace = true
	}
	return false
}

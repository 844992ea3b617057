// Package abbrev expands Haitian Creole abbreviations into their spoken form.
//
// The default table is embedded from data/abbrev_ht.tsv and covers titles
// and common place-name abbreviations ("Dr." -> "doktè", "Mgr." -> "monseyè").
// Matching is case-insensitive and anchored on word boundaries, so "Dr."
// expands but "Drapo" does not. Every abbreviation also matches its ASCII
// folded spelling ("Pe." for "Pè."), because cleaners usually transliterate
// before expanding.
//
// An Expander is immutable after construction and safe for concurrent use.
package abbrev

import (
	"bufio"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/kreyol-ai/ht-lang-nlp/data"
	"github.com/kreyol-ai/ht-lang-nlp/internal/htcase"
	"github.com/kreyol-ai/ht-lang-nlp/translit"
)

// Expander replaces abbreviations found in text.
type Expander struct {
	re    *regexp.Regexp
	words map[string]string // lowercased abbreviation -> expansion
}

var defaultExpander = sync.OnceValue(func() *Expander {
	e, err := Parse(data.HaitianAbbreviations)
	if err != nil {
		panic(err)
	}
	return e
})

// Default returns the Expander built from the embedded Haitian Creole table.
func Default() *Expander {
	return defaultExpander()
}

// Expand expands abbreviations in s using the default table.
func Expand(s string) string {
	return Default().Expand(s)
}

// Parse builds an Expander from a tab-separated table. Blank lines and
// lines starting with '#' are ignored. Expansions are stored lowercased.
func Parse(table string) (*Expander, error) {
	words := make(map[string]string)

	sc := bufio.NewScanner(strings.NewReader(table))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		abbr, expansion, ok := strings.Cut(text, "\t")
		abbr = strings.TrimSpace(abbr)
		expansion = strings.TrimSpace(expansion)
		if !ok || abbr == "" || expansion == "" {
			return nil, fmt.Errorf("abbrev: line %d: want \"abbreviation<TAB>expansion\", got %q", line, text)
		}

		expansion = htcase.ToLower(expansion)
		words[htcase.ToLower(abbr)] = expansion
		if folded := strings.ToLower(translit.ToASCII(abbr)); folded != "" {
			if _, exists := words[folded]; !exists {
				words[folded] = expansion
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("abbrev: reading table: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("abbrev: empty table")
	}

	re, err := compile(words)
	if err != nil {
		return nil, err
	}
	return &Expander{re: re, words: words}, nil
}

// compile builds one case-insensitive alternation over all abbreviations,
// longest first so that "secr." wins over any shorter prefix.
func compile(words map[string]string) (*regexp.Regexp, error) {
	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	alts := make([]string, len(keys))
	for i, k := range keys {
		alt := regexp.QuoteMeta(k)
		if endsInWordChar(k) {
			alt += `\b`
		}
		alts[i] = alt
	}

	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(alts, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("abbrev: compiling pattern: %w", err)
	}
	return re, nil
}

// Expand returns s with every abbreviation replaced by its expansion.
func (e *Expander) Expand(s string) string {
	if s == "" {
		return s
	}
	return e.re.ReplaceAllStringFunc(s, func(m string) string {
		if exp, ok := e.words[htcase.ToLower(m)]; ok {
			return exp
		}
		return m
	})
}

// Len returns the number of abbreviation spellings the Expander matches.
func (e *Expander) Len() int {
	return len(e.words)
}

func endsInWordChar(s string) bool {
	c := s[len(s)-1]
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

package numtext

import (
	"strconv"
	"strings"
)

func expandNumbers(s string) string {
	first := indexDigit(s, 0)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(2 * len(s)) // words are longer than the digits they replace
	b.WriteString(s[:first])

	i := first
	for i < len(s) {
		if !isDigit(s[i]) {
			next := indexDigit(s, i)
			if next < 0 {
				b.WriteString(s[i:])
				break
			}
			b.WriteString(s[i:next])
			i = next
		}

		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		b.WriteString(spellRun(s[i:j]))
		i = j
	}

	return b.String()
}

// spellRun returns the words for a run of ASCII digits, or the run itself
// when it does not parse or is out of range.
func spellRun(run string) string {
	n, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return run
	}
	words, err := Convert(n)
	if err != nil {
		return run
	}
	return words
}

// indexDigit returns the index of the first ASCII digit in s at or after
// from, or -1 if there is none.
func indexDigit(s string, from int) int {
	for i := from; i < len(s); i++ {
		if isDigit(s[i]) {
			return i
		}
	}
	return -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

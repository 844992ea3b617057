// Unexported conversion functions for Haitian Creole number-to-text conversion.
package numtext

import "strings"

const growConvert = 64 // estimated bytes for a full cardinal conversion

// convert converts n in [0, MaxValue] to Haitian Creole cardinal text.
func convert(n int64) string {
	var b strings.Builder
	b.Grow(growConvert)
	writeNumber(&b, n)
	return b.String()
}

// writeNumber writes n as Haitian Creole text into b.
// Each recursive call receives a value strictly smaller than n.
func writeNumber(b *strings.Builder, n int64) {
	switch {
	case n < 10:
		b.WriteString(ones[n])

	case n < 20:
		b.WriteString(teens[n-10])

	case n < hundred:
		b.WriteString(tens[n/10])
		if o := n % 10; o > 0 {
			b.WriteByte('-')
			b.WriteString(ones[o])
		}

	default:
		major, word, rest := split(n)
		// "en san" -> "san", "en mil" -> "mil", likewise for every scale word
		if major > 1 {
			writeNumber(b, major)
			b.WriteByte(' ')
		}
		b.WriteString(word)
		if rest > 0 {
			b.WriteByte(' ')
			writeNumber(b, rest)
		}
	}
}

// split divides n in [100, MaxValue] into the count of its largest
// magnitude, that magnitude's word and the remainder. Both major and rest
// are strictly smaller than n.
func split(n int64) (major int64, word string, rest int64) {
	if n < 1_000 {
		return n / hundred, wordHundred, n % hundred
	}
	sc := scaleFor(n)
	return n / sc.value, sc.word, n % sc.value
}

// scaleFor returns the largest scale not exceeding n.
// Callers must ensure 1000 <= n <= MaxValue.
func scaleFor(n int64) scale {
	for _, sc := range scales {
		if n >= sc.value {
			return sc
		}
	}
	panic("numtext: no scale word for value below 1000")
}

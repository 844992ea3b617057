package translit

// asciiFallback spells out runes that have no canonical decomposition
// into an ASCII base letter plus combining marks.
var asciiFallback = map[rune]string{
	// Letters
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "Th",
	'ı': "i", // dotless i

	// Spaces
	'\u00a0': " ", // no-break space
	'\u2009': " ", // thin space
	'\u202f': " ", // narrow no-break space

	// Dashes
	'\u2010': "-",  // hyphen
	'\u2011': "-",  // non-breaking hyphen
	'\u2013': "-",  // en dash
	'\u2014': "--", // em dash
	'\u2212': "-",  // minus sign

	// Quotes
	'‘': "'", '’': "'",
	'“': "\"", '”': "\"",
	'«': "<<", '»': ">>",

	// Symbols
	'…': "...", // horizontal ellipsis
	'€': "EUR",
	'°': "deg",
	'×': "x",
}

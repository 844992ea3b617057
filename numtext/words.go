// Word tables for Haitian Creole number-to-text conversion.
package numtext

const (
	// MaxValue is the largest integer Convert accepts (10^15 - 1).
	MaxValue int64 = 999_999_999_999_999

	hundred int64 = 100

	wordHundred = "san"
)

var ones = [10]string{
	"zero",
	"en",
	"de",
	"twa",
	"kat",
	"senk",
	"sis",
	"sèt",
	"uit",
	"nèf",
}

// teens is indexed by n-10 for n in [10, 19].
var teens = [10]string{
	"dis",
	"onz",
	"douz",
	"trèz",
	"katòz",
	"kenz",
	"sèz",
	"disèt",
	"dizuit",
	"diznèf",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
// 70 and 90 are built on 60 and 80, not on 7 and 9.
var tens = [10]string{
	"",
	"",
	"ven",
	"trant",
	"karant",
	"senkant",
	"swasant",
	"swasant-dis",
	"katreven",
	"katreven-dis",
}

type scale struct {
	value int64
	word  string
}

// scales lists named magnitudes from largest to smallest.
// convert depends on this order; san (100) is handled separately.
var scales = []scale{
	{value: 1_000_000_000_000, word: "bilion"},
	{value: 1_000_000_000, word: "milya"},
	{value: 1_000_000, word: "milyon"},
	{value: 1_000, word: "mil"},
}

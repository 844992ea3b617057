package normalize

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Stages
// ---------------------------------------------------------------------------

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single spaces unchanged", "a b c", "a b c"},
		{"double space", "a  b", "a b"},
		{"tabs and newlines", "a\t\n b", "a b"},
		{"leading and trailing kept as one", "  a  ", " a "},
		{"unicode spaces", "a\u00a0\u2003b", "a b"},
		{"lone tab", "a\tb", "a b"},
		{"invalid utf8 preserved", "a\xff  b", "a\xff b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CollapseWhitespace(tt.input); got != tt.want {
				t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertSpecialCharacters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no specials", "bonjou", "bonjou"},
		{"slash", "wi/non", "wi, non"},
		{"slash with spaces", "wi / non", "wi, non"},
		{"hyphen", "Pòtoprens-Okap", "Pòtoprens; Okap"},
		{"hyphen run with spaces", "a -- b", "a; b"},
		{"em dash", "a — b", "a; b"},
		{"em dash run", "a——b", "a; b"},
		{"leading hyphen", "-5", "; 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ConvertSpecialCharacters(tt.input); got != tt.want {
				t.Errorf("ConvertSpecialCharacters(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestApplyIPARules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"ch", "chat", "ʃat"},
		{"ou", "nou", "nu"},
		{"ay", "kay", "kaʒ"},
		{"ay then j", "ayiti", "aʒiti"},
		{"ye", "mwen ye", "mwen ʒe"},
		{"ou then ye", "kounye a", "kunʒe a"},
		{"open o", "kòk", "kɔk"},
		{"j", "jou", "ʒu"},
		{"pe with stress", "peye", "pˈeʒe"},
		{"pe after ye", "yepe", "ʒepˈe"},
		{"untouched", "bonswa", "bonswa"},
		{"k unchanged", "kat", "kat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ApplyIPARules(tt.input); got != tt.want {
				t.Errorf("ApplyIPARules(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Cleaners
// ---------------------------------------------------------------------------

func TestHaitianCreole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"numbers", "Mwen gen 3 chat ak 10 chen", "mwen gen twa ʃat ak dis ʃen"},
		{"number hyphen survives", "21", "ven-en"},
		{"abbreviation then number", "Dr. Pòl gen 100 liv", "doktè pol gen san liv"},
		{"abbreviation expansion stays lowercase", "SEN. Jan", "senatè ʒan"},
		{"digits glued to punctuation", "(12)", "(duz)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HaitianCreole(tt.input); got != tt.want {
				t.Errorf("HaitianCreole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) unexpected error: %v", name, err)
		}
	}

	c, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\") unexpected error: %v", err)
	}
	if got := c("2"); got != "de" {
		t.Errorf("default cleaner(%q) = %q, want %q", "2", got, "de")
	}

	if _, err := Lookup("english_cleaners"); !errors.Is(err, ErrUnknownCleaner) {
		t.Errorf("Lookup(unknown) error = %v, want ErrUnknownCleaner", err)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	want := []string{"basic", "haitian_creole", "transliteration"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	got, err := Clean("transliteration", "Sèt  Kòk")
	if err != nil {
		t.Fatalf("Clean unexpected error: %v", err)
	}
	if got != "set kok" {
		t.Errorf("Clean = %q, want %q", got, "set kok")
	}

	if _, err := Clean("nope", "x"); !errors.Is(err, ErrUnknownCleaner) {
		t.Errorf("Clean(unknown) error = %v, want ErrUnknownCleaner", err)
	}
}

func TestCleanersIdempotentOnOutput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Bonjou  Tout Moun",
		"Sèt KÒK la",
		"mwen gen 3 chat",
	}

	for _, c := range []Cleaner{Basic, Transliteration} {
		for _, in := range inputs {
			once := c(in)
			if twice := c(once); twice != once {
				t.Errorf("cleaner not idempotent on %q: %q then %q", in, once, twice)
			}
		}
	}
}

func TestCleanerMaxInput(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("A", maxInputBytes+1)
	for _, name := range Names() {
		got, err := Clean(name, big)
		if err != nil {
			t.Fatalf("Clean(%q) unexpected error: %v", name, err)
		}
		if got != big {
			t.Errorf("Clean(%q) modified oversized input", name)
		}
	}
}

// ---------------------------------------------------------------------------
// Concurrent safety
// ---------------------------------------------------------------------------

func TestConcurrentSafety(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			if got := HaitianCreole("Mwen gen 3 chat"); got != "mwen gen twa ʃat" {
				t.Errorf("HaitianCreole under concurrency = %q", got)
			}
			_ = Basic("Bonjou")
			_ = Transliteration("Kòk")
		})
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkHaitianCreole(b *testing.B) {
	s := "Dr. Jan te fèt nan ane 1985, li gen 3 pitit ak 2 chen — yo tout renmen Ayiti."
	for b.Loop() {
		HaitianCreole(s)
	}
}

func BenchmarkBasic(b *testing.B) {
	s := "Bonjou  Tout Moun,\tKIJAN nou ye?"
	for b.Loop() {
		Basic(s)
	}
}

func BenchmarkHaitianCreoleLarge(b *testing.B) {
	s := strings.Repeat("Dr. Jan te fèt nan ane 1985 ak 3 pitit. ", 1000)
	for b.Loop() {
		HaitianCreole(s)
	}
}

package translit

import (
	"strings"
	"sync"
	"testing"
)

func TestToASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"ascii unchanged", "bonjou tout moun 123", "bonjou tout moun 123"},
		{"haitian grave accents", "sèt kòk", "set kok"},
		{"decomposed input", "ne\u0300f", "nef"},
		{"french accents", "été à Noël", "ete a Noel"},
		{"cedilla", "garçon", "garcon"},
		{"uppercase accents", "È Ò", "E O"},
		{"sharp s", "Straße", "Strasse"},
		{"ligature", "cœur æther", "coeur aether"},
		{"em dash", "a—b", "a--b"},
		{"en dash", "1–2", "1-2"},
		{"curly quotes", "“wi” ‘non’", "\"wi\" 'non'"},
		{"ellipsis", "enben…", "enben..."},
		{"no-break space", "10\u00a0000", "10 000"},
		{"euro", "5€", "5EUR"},
		{"cyrillic dropped", "kay дом", "kay "},
		{"cjk dropped", "kay家", "kay"},
		{"emoji dropped", "bon \U0001F600", "bon "},
		{"invalid utf8 dropped", "a\xffb", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToASCII(tt.input); got != tt.want {
				t.Errorf("ToASCII(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToASCIIOutputIsASCII(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Kreyòl ayisyen se lang tout Ayisyen",
		"Ελληνικά και русский",
		"\u0301\u0300 leading marks",
		strings.Repeat("è", 1000),
	}
	for _, in := range inputs {
		if got := ToASCII(in); !isASCII(got) {
			t.Errorf("ToASCII(%q) = %q, contains non-ASCII", in, got)
		}
	}
}

func TestToASCIIConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			if got := ToASCII("sèt kòk"); got != "set kok" {
				t.Errorf("ToASCII under concurrency = %q", got)
			}
		})
	}
	wg.Wait()
}

func FuzzToASCII(f *testing.F) {
	f.Add("")
	f.Add("sèt kòk")
	f.Add("\xff\xfe")
	f.Add("Straße — “wi”")

	f.Fuzz(func(t *testing.T, s string) {
		if got := ToASCII(s); !isASCII(got) {
			t.Errorf("ToASCII(%q) = %q, contains non-ASCII", s, got)
		}
	})
}

func BenchmarkToASCII(b *testing.B) {
	s := "Kreyòl ayisyen se lang tout Ayisyen — sèt kòk"
	for b.Loop() {
		ToASCII(s)
	}
}

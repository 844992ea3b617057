package raw

import (
	"testing"
	"time"
)

func TestConfGet(t *testing.T) {
	t.Setenv("HTNLP_TEST_NAME", "  kreyol  ")
	t.Setenv("HTNLP_TEST_BLANK", "   ")

	c := New().Prefix("TEST_")
	if got := c.Get("NAME", "def"); got != "kreyol" {
		t.Errorf("Get(NAME) = %q, want %q", got, "kreyol")
	}
	if got := c.Get("BLANK", "def"); got != "def" {
		t.Errorf("Get(BLANK) = %q, want %q", got, "def")
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Errorf("Get(MISSING) = %q, want %q", got, "def")
	}
	if got := c.Key("NAME"); got != "HTNLP_TEST_NAME" {
		t.Errorf("Key(NAME) = %q", got)
	}
}

func TestConfGetBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"1", false, true},
		{"TRUE", false, true},
		{"yes", false, true},
		{"no", true, false},
		{"0", true, false},
	}

	for _, tt := range tests {
		t.Setenv("HTNLP_FLAG", tt.value)
		if got := New().GetBool("FLAG", tt.def); got != tt.want {
			t.Errorf("GetBool(%q, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 7},
		{"42", 42},
		{"4x", 7},
		{"-3", 7},
	}

	for _, tt := range tests {
		t.Setenv("HTNLP_N", tt.value)
		if got := New().GetInt("N", 7); got != tt.want {
			t.Errorf("GetInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestConfGetDuration(t *testing.T) {
	t.Setenv("HTNLP_WAIT", "250ms")
	if got := New().GetDuration("WAIT", time.Second); got != 250*time.Millisecond {
		t.Errorf("GetDuration = %v, want 250ms", got)
	}

	t.Setenv("HTNLP_WAIT", "soon")
	if got := New().GetDuration("WAIT", time.Second); got != time.Second {
		t.Errorf("GetDuration(malformed) = %v, want 1s", got)
	}
}

package generator

import "testing"

func TestAlphabets(t *testing.T) {
	tests := []struct {
		class Class
		size  int
	}{
		{Lower, 26},
		{Upper, 26},
		{Digit, 10},
		{Symbol, 30},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			alphabet := tt.class.Alphabet()
			if len(alphabet) != tt.size {
				t.Errorf("len(%s alphabet) = %d, want %d", tt.class, len(alphabet), tt.size)
			}
			seen := make(map[rune]bool)
			for _, ch := range alphabet {
				if seen[ch] {
					t.Errorf("%s alphabet repeats %q", tt.class, string(ch))
				}
				seen[ch] = true
			}
		})
	}

	if got := Symbol.Alphabet(); got != "!?@#$%^&*\"`~_-+(){}[]=<>|/,.:;" {
		t.Errorf("symbol alphabet = %q", got)
	}
}

func TestSet(t *testing.T) {
	s := NewSet(Symbol, Lower, Lower)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(Lower) || !s.Has(Symbol) {
		t.Errorf("set %s is missing a member", s)
	}
	if s.Has(Upper) || s.Has(Digit) {
		t.Errorf("set %s has an unexpected member", s)
	}
	if got := s.String(); got != "lower,symbol" {
		t.Errorf("String() = %q, want %q", got, "lower,symbol")
	}
	if got := Set(0).String(); got != "none" {
		t.Errorf("empty String() = %q, want %q", got, "none")
	}
	if All.Len() != 4 {
		t.Errorf("All.Len() = %d, want 4", All.Len())
	}

	classes := All.Classes()
	want := []Class{Lower, Upper, Digit, Symbol}
	for i := range want {
		if classes[i] != want[i] {
			t.Errorf("Classes()[%d] = %s, want %s", i, classes[i], want[i])
		}
	}
}

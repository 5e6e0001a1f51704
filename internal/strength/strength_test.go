package strength

import (
	"strings"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     int
	}{
		{name: "empty", password: "", want: 0},
		{name: "twelve lowercase", password: "abcdefghijkl", want: 1},
		{name: "eleven lowercase", password: "abcdefghijk", want: 0},
		{name: "twenty chars all classes", password: "Abcdefghijklmnop12$$", want: 5},
		{name: "twenty four chars all classes", password: "Abcdefghijklmnopqrstu1$x", want: 6},
		{name: "eighteen lower and digits", password: "abcdefghijklmnop12", want: 4},
		{name: "twenty four digits", password: "809174635298017463529801", want: 4},
		{name: "twenty four lower and digits", password: "abcdefghijklmnopqrstuv12", want: 5},
		{name: "short three classes", password: "abc-DEF", want: 2},
		{name: "blocklisted password", password: "password123", want: 1},
		{name: "blocklisted digits floor", password: "12345", want: 0},
		{name: "blocklisted qwerty mixed case", password: "Tr0ub4dor&3xyzQWERTYabcd", want: 5},
		{name: "blocklisted uppercase password", password: "PASSWORDpassword", want: 1},
		{name: "backtick is not a symbol", password: "abcdefghijk`", want: 1},
		{name: "question mark is a symbol", password: "abcdefghijk?", want: 2},
		{name: "comma counts as symbol", password: "abcdefghijk,", want: 2},
		{name: "less-than counts as symbol", password: "abcdefghijk<", want: 2},
		{name: "apostrophe is not a symbol", password: "abcdefghijk'", want: 1},
		{name: "non-ascii counts by character", password: strings.Repeat("é", 12), want: 1},
		{name: "astral characters count once", password: strings.Repeat("😀", 12), want: 1},
		{name: "eleven astral characters", password: strings.Repeat("😀", 11), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.password); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.password, got, tt.want)
			}
		})
	}
}

func TestScoreLengthThresholds(t *testing.T) {
	prev := -1
	for n := 0; n <= 30; n++ {
		got := Score(strings.Repeat("a", n))
		if got < prev {
			t.Errorf("Score of %d chars = %d, lower than %d chars", n, got, n-1)
		}
		prev = got
	}

	for n, want := range map[int]int{11: 0, 12: 1, 17: 1, 18: 2, 23: 2, 24: 3, 100: 3} {
		if got := Score(strings.Repeat("b", n)); got != want {
			t.Errorf("Score of %d lowercase chars = %d, want %d", n, got, want)
		}
	}
}

func TestScoreDiversity(t *testing.T) {
	base := "abcdefghijklmnopqrstuvwx" // 24 chars, 3 length points
	tests := []struct {
		suffix string
		want   int
	}{
		{"", 3},
		{"A", 4},
		{"A~", 5},
		{"A7", 6},
		{"A7~", 6},
	}

	for _, tt := range tests {
		if got := Score(base + tt.suffix); got != tt.want {
			t.Errorf("Score(base+%q) = %d, want %d", tt.suffix, got, tt.want)
		}
	}
}

func TestScoreIsPure(t *testing.T) {
	for _, pw := range []string{"", "abc", "Abcdefghijklmnop12$$", "qwerty!!QWERTY"} {
		first := Evaluate(pw)
		for i := 0; i < 10; i++ {
			if got := Evaluate(pw); got != first {
				t.Fatalf("Evaluate(%q) = %+v, previously %+v", pw, got, first)
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		password string
		want     Result
	}{
		{"abcdefghijkl", Result{Score: 1, Level: Weak, Tag: "weak"}},
		{"Abcdefghijklmnop12$$", Result{Score: 5, Level: Strong, Tag: "strong"}},
		{"Abcdefghijklmnopqrstu1$x", Result{Score: 6, Level: VeryStrong, Tag: "very-strong"}},
		{"abcdefghijklmnop12", Result{Score: 4, Level: Strong, Tag: "strong"}},
		{"809174635298017463529801", Result{Score: 4, Level: Strong, Tag: "strong"}},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			if got := Evaluate(tt.password); got != tt.want {
				t.Errorf("Evaluate(%q) = %+v, want %+v", tt.password, got, tt.want)
			}
		})
	}
}

package strength

import "testing"

func TestLevelOf(t *testing.T) {
	tests := []struct {
		score     int
		wantLevel Level
		wantLabel string
		wantTag   string
	}{
		{0, Weak, "Weak", "weak"},
		{1, Weak, "Weak", "weak"},
		{2, Moderate, "Moderate", "moderate"},
		{3, Moderate, "Moderate", "moderate"},
		{4, Strong, "Strong", "strong"},
		{5, Strong, "Strong", "strong"},
		{6, VeryStrong, "Very Strong", "very-strong"},
	}

	for _, tt := range tests {
		level := LevelOf(tt.score)
		if level != tt.wantLevel {
			t.Errorf("LevelOf(%d) = %v, want %v", tt.score, level, tt.wantLevel)
		}
		if level.String() != tt.wantLabel {
			t.Errorf("LevelOf(%d).String() = %q, want %q", tt.score, level.String(), tt.wantLabel)
		}
		if level.Tag() != tt.wantTag {
			t.Errorf("LevelOf(%d).Tag() = %q, want %q", tt.score, level.Tag(), tt.wantTag)
		}
	}
}

func TestLevelUnknown(t *testing.T) {
	if got := Level(9).String(); got != "Level(9)" {
		t.Errorf("String() = %q", got)
	}
	if got := Level(-1).Tag(); got != "" {
		t.Errorf("Tag() = %q, want empty", got)
	}
}

func TestParseTag(t *testing.T) {
	for _, l := range Levels() {
		got, ok := ParseTag(l.Tag())
		if !ok || got != l {
			t.Errorf("ParseTag(%q) = %v, %v; want %v, true", l.Tag(), got, ok, l)
		}
	}
	if _, ok := ParseTag("mediocre"); ok {
		t.Error("ParseTag() accepted an unknown tag")
	}
}

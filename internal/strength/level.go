package strength

import "fmt"

// Level is a discrete strength bucket derived from a score.
type Level int

const (
	Weak Level = iota
	Moderate
	Strong
	VeryStrong
)

// levels holds the label and style tag for each Level so the two never drift apart.
var levels = [...]struct {
	label string
	tag   string
}{
	Weak:       {"Weak", "weak"},
	Moderate:   {"Moderate", "moderate"},
	Strong:     {"Strong", "strong"},
	VeryStrong: {"Very Strong", "very-strong"},
}

// LevelOf maps a score to its level: below 2 is weak, below 4 moderate, below 6 strong.
func LevelOf(score int) Level {
	switch {
	case score < 2:
		return Weak
	case score < 4:
		return Moderate
	case score < 6:
		return Strong
	default:
		return VeryStrong
	}
}

// String returns the human-readable label, e.g. "Very Strong".
func (l Level) String() string {
	if l < Weak || l > VeryStrong {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levels[l].label
}

// Tag returns the presentation tag, e.g. "very-strong".
func (l Level) Tag() string {
	if l < Weak || l > VeryStrong {
		return ""
	}
	return levels[l].tag
}

// Levels lists every level from weakest to strongest.
func Levels() []Level {
	return []Level{Weak, Moderate, Strong, VeryStrong}
}

// ParseTag returns the level whose Tag is tag.
func ParseTag(tag string) (Level, bool) {
	for _, l := range Levels() {
		if l.Tag() == tag {
			return l, true
		}
	}
	return Weak, false
}

// Package strength scores passwords with a length, diversity and common-pattern heuristic.
package strength

import (
	"strings"
	"unicode/utf8"
)

// symbolSet is the membership test for the symbol class. It is the character class
// [!@#$%^&*()_+-={}[]|:;"<>,.?/~] where "+-=" reads as the range '+'..'=', so digits and
// ",./:;<" also count as symbols. The backtick from the generator's alphabet does not.
const symbolSet = "!@#$%^&*()_+,-./0123456789:;<=>?{}[]|\"~"

// MaxScore is the highest score a password can reach.
const MaxScore = 6

var (
	lengthThresholds  = [...]int{12, 18, 24}
	varietyThresholds = [...]int{2, 3, 4}
	commonPatterns    = [...]string{"12345", "qwerty", "password"}
)

// Result is the full evaluation of a password.
type Result struct {
	Score int
	Level Level
	Tag   string
}

// Evaluate scores password and maps the score to a level and style tag.
func Evaluate(password string) Result {
	score := Score(password)
	level := LevelOf(score)
	return Result{
		Score: score,
		Level: level,
		Tag:   level.Tag(),
	}
}

// Score returns a value in [0, MaxScore]. One point per length threshold reached, one point
// per diversity threshold reached, minus one if a common pattern appears.
func Score(password string) int {
	score := 0

	length := utf8.RuneCountInString(password)
	for _, threshold := range lengthThresholds {
		if length >= threshold {
			score++
		}
	}

	classes := classCount(password)
	for _, threshold := range varietyThresholds {
		if classes >= threshold {
			score++
		}
	}

	if hasCommonPattern(password) && score > 0 {
		score--
	}

	return score
}

// classCount counts how many of lowercase, uppercase, digit and symbol appear in password.
// A digit satisfies both the digit and the symbol class.
func classCount(password string) int {
	var hasL, hasU, hasD, hasS bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasL = true
		case r >= 'A' && r <= 'Z':
			hasU = true
		case r >= '0' && r <= '9':
			hasD = true
		}
		if strings.ContainsRune(symbolSet, r) {
			hasS = true
		}
	}

	n := 0
	for _, has := range [...]bool{hasL, hasU, hasD, hasS} {
		if has {
			n++
		}
	}
	return n
}

func hasCommonPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, p := range commonPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

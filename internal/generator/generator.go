// Package generator builds random passwords from the four fixed character classes.
//
// Randomness comes from a general-purpose pseudo-random source. Passwords produced here are
// not suitable where a cryptographic guarantee is required.
package generator

import (
	"errors"
	"math/rand/v2"
	"strings"
)

// ErrEmptySelection is returned when no character class is enabled.
var ErrEmptySelection = errors.New("at least one character class must be selected")

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the process-wide math/rand/v2 generator, which is safe for
// concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) } // #nosec G404

// Generator produces passwords from an injected Source. It is safe for concurrent use
// when its Source is.
type Generator struct {
	src Source
}

// New returns a Generator drawing from src. A nil src uses the process-wide generator.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = New(nil)

// Generate produces a password using the process-wide generator.
func Generate(classes Set, length int) (string, error) {
	return defaultGenerator.Generate(classes, length)
}

// Generate returns a password of exactly length characters. Each position independently
// picks one enabled class uniformly, then one character of that class uniformly.
//
// The length is used as given; callers clamp it. A zero or negative length with at least one
// class enabled yields an empty password and no error.
func (g *Generator) Generate(classes Set, length int) (string, error) {
	enabled := classes.Classes()
	if len(enabled) == 0 {
		return "", ErrEmptySelection
	}
	if length <= 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < length; i++ {
		alphabet := enabled[g.src.IntN(len(enabled))].Alphabet()
		sb.WriteByte(alphabet[g.src.IntN(len(alphabet))])
	}

	return sb.String(), nil
}

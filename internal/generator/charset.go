package generator

import "strings"

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!?@#$%^&*\"`~_-+(){}[]=<>|/,.:;"
)

// Class is one of the four fixed character categories a password can draw from.
type Class uint8

const (
	Lower Class = 1 << iota
	Upper
	Digit
	Symbol
)

// allClasses is the order in which a Set enumerates its members.
var allClasses = [...]Class{Lower, Upper, Digit, Symbol}

// Alphabet returns the ordered characters belonging to the class.
func (c Class) Alphabet() string {
	switch c {
	case Lower:
		return lowerChars
	case Upper:
		return upperChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// Set is a set of character classes.
type Set uint8

// All contains every class.
const All = Set(Lower | Upper | Digit | Symbol)

// NewSet builds a set from the given classes. Duplicates collapse.
func NewSet(classes ...Class) Set {
	var s Set
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// With returns a copy of s that also contains c.
func (s Set) With(c Class) Set {
	return s | Set(c)
}

// Has reports whether c is a member of s.
func (s Set) Has(c Class) bool {
	return s&Set(c) != 0
}

// Len returns the number of classes in s.
func (s Set) Len() int {
	n := 0
	for _, c := range allClasses {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Classes lists the members of s as lower, upper, digit, symbol.
func (s Set) Classes() []Class {
	classes := make([]Class, 0, len(allClasses))
	for _, c := range allClasses {
		if s.Has(c) {
			classes = append(classes, c)
		}
	}
	return classes
}

func (s Set) String() string {
	classes := s.Classes()
	if len(classes) == 0 {
		return "none"
	}
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}

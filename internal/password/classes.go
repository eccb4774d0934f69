package password

import (
	"fmt"
	"strings"
)

// ClassSet is a bit set of character classes.
type ClassSet uint8

const (
	Lower ClassSet = 1 << iota
	Upper
	Digits
	Symbols

	// AllClasses enables every class and is the default.
	AllClasses = Lower | Upper | Digits | Symbols
)

const (
	lowerAlphabet  = "abcdefghijklmnopqrstuvwxyz"
	upperAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitAlphabet  = "0123456789"
	symbolAlphabet = "!@#$%^&*()-_=+[]{}|;:,.<>?/~"

	// ambiguous lists characters that are easily confused with one another
	// when read back from a screen or paper.
	ambiguous = "0Oo1lI|"
)

// classOrder fixes the order in which alphabets are laid out in a pool.
var classOrder = []ClassSet{Lower, Upper, Digits, Symbols}

var classNames = map[ClassSet]string{
	Lower:   "lower",
	Upper:   "upper",
	Digits:  "digits",
	Symbols: "symbols",
}

var classAliases = map[string]ClassSet{
	"lower":     Lower,
	"lowercase": Lower,
	"l":         Lower,
	"upper":     Upper,
	"uppercase": Upper,
	"u":         Upper,
	"digits":    Digits,
	"digit":     Digits,
	"numbers":   Digits,
	"d":         Digits,
	"symbols":   Symbols,
	"symbol":    Symbols,
	"s":         Symbols,
}

// Has reports whether every class in c is enabled in s.
func (s ClassSet) Has(c ClassSet) bool {
	return s&c == c
}

// String renders the set as a comma separated list of class names.
func (s ClassSet) String() string {
	names := make([]string, 0, len(classOrder))
	for _, c := range classOrder {
		if s.Has(c) {
			names = append(names, classNames[c])
		}
	}
	return strings.Join(names, ",")
}

// ParseClasses parses a comma separated list such as "lower,digits" or
// "l,u,d". An empty string yields an empty set.
func ParseClasses(s string) (ClassSet, error) {
	var set ClassSet
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		c, ok := classAliases[name]
		if !ok {
			return 0, fmt.Errorf("unknown character class %q: must be one of lower, upper, digits, symbols", name)
		}
		set |= c
	}
	return set, nil
}

// ParseClassList is ParseClasses for an already split list.
func ParseClassList(names []string) (ClassSet, error) {
	return ParseClasses(strings.Join(names, ","))
}

func alphabetOf(c ClassSet) string {
	switch c {
	case Lower:
		return lowerAlphabet
	case Upper:
		return upperAlphabet
	case Digits:
		return digitAlphabet
	case Symbols:
		return symbolAlphabet
	}
	return ""
}

package password

import "strings"

// Pool is the deduplicated set of characters a password is drawn from.
type Pool struct {
	chars     []byte
	alphabets map[ClassSet]string
}

// NewPool merges the alphabets of the enabled classes, optionally dropping
// ambiguous characters. Characters keep the order of their classes.
func NewPool(classes ClassSet, excludeAmbiguous bool) (Pool, error) {
	p := Pool{alphabets: make(map[ClassSet]string, len(classOrder))}
	var seen [256]bool

	for _, c := range classOrder {
		if !classes.Has(c) {
			continue
		}
		var alphabet strings.Builder
		for _, ch := range []byte(alphabetOf(c)) {
			if excludeAmbiguous && strings.IndexByte(ambiguous, ch) >= 0 {
				continue
			}
			alphabet.WriteByte(ch)
			if seen[ch] {
				continue
			}
			seen[ch] = true
			p.chars = append(p.chars, ch)
		}
		p.alphabets[c] = alphabet.String()
	}

	if len(p.chars) == 0 {
		return Pool{}, &EmptyPoolError{Classes: classes}
	}
	return p, nil
}

// Len returns the number of distinct characters in the pool.
func (p Pool) Len() int {
	return len(p.chars)
}

// Contains reports whether ch may appear in a password drawn from p.
func (p Pool) Contains(ch byte) bool {
	for _, c := range p.chars {
		if c == ch {
			return true
		}
	}
	return false
}

// Alphabet returns the filtered alphabet of a single class, or "" if the
// class is not part of the pool.
func (p Pool) Alphabet(c ClassSet) string {
	return p.alphabets[c]
}

// String returns the pool characters in order.
func (p Pool) String() string {
	return string(p.chars)
}

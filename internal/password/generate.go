package password

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
)

const (
	// DefaultLength is used when no length is requested.
	DefaultLength = 16
	// MaxLength bounds the work a single request can ask for.
	MaxLength = 1024
	// MaxCount bounds how many passwords one invocation may produce.
	MaxCount = 1000
)

// Composition asks for an exact number of digits and symbols; letters fill
// the remaining positions.
type Composition struct {
	Digits  int
	Symbols int
}

// Spec describes a requested password.
type Spec struct {
	Length           int
	Classes          ClassSet
	ExcludeAmbiguous bool
	Composition      *Composition
}

// DefaultSpec returns a Spec of DefaultLength over all classes.
func DefaultSpec() Spec {
	return Spec{Length: DefaultLength, Classes: AllClasses}
}

// Generator produces passwords from a random source. The source must be
// suitable for cryptographic use.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading entropy from r.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

var defaultGenerator = NewGenerator(rand.Reader)

// Generate creates a password for spec using crypto/rand.
func Generate(spec Spec) (string, error) {
	return defaultGenerator.Generate(spec)
}

// ValidateLength checks that n is within [1, MaxLength].
func ValidateLength(n int) error {
	switch {
	case n < 1:
		return &InvalidLengthError{Value: strconv.Itoa(n), Reason: "must be at least 1"}
	case n > MaxLength:
		return &InvalidLengthError{Value: strconv.Itoa(n), Reason: fmt.Sprintf("must not exceed %d", MaxLength)}
	}
	return nil
}

// ValidateCount checks that n is within [1, MaxCount].
func ValidateCount(n int) error {
	switch {
	case n < 1:
		return &InvalidCountError{Value: n, Reason: "must be at least 1"}
	case n > MaxCount:
		return &InvalidCountError{Value: n, Reason: fmt.Sprintf("must not exceed %d", MaxCount)}
	}
	return nil
}

// ParseLength parses and validates a textual length.
func ParseLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidLengthError{Value: s, Reason: "not an integer"}
	}
	if err := ValidateLength(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Generate creates a password for spec.
func (g *Generator) Generate(spec Spec) (string, error) {
	if err := ValidateLength(spec.Length); err != nil {
		return "", err
	}
	pool, err := NewPool(spec.Classes, spec.ExcludeAmbiguous)
	if err != nil {
		return "", err
	}
	if spec.Composition != nil {
		return g.generateComposed(spec, pool)
	}
	return g.generateUniform(spec.Length, pool)
}

// generateUniform fills every position with an independent uniform pick.
// Random bytes at or above the largest multiple of the pool size are
// rejected so that the modulo below does not skew the distribution.
func (g *Generator) generateUniform(length int, pool Pool) (string, error) {
	n := pool.Len()
	limit := 256 - 256%n

	out := make([]byte, length)
	// A quarter on top covers the expected rejections for most pools.
	chunk := make([]byte, length+length/4+8)
	defer clear(chunk)
	defer clear(out)

	for i := 0; i < length; {
		if _, err := io.ReadFull(g.rand, chunk); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range chunk {
			if int(b) >= limit {
				continue
			}
			out[i] = pool.chars[int(b)%n]
			i++
			if i == length {
				break
			}
		}
	}
	return string(out), nil
}

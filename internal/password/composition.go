package password

import (
	"fmt"

	gopassword "github.com/sethvargo/go-password/password"
)

// generateComposed builds a password with exactly spec.Composition.Digits
// digits and spec.Composition.Symbols symbols. Letters come from the lower
// class, plus the upper class when it is enabled.
func (g *Generator) generateComposed(spec Spec, pool Pool) (string, error) {
	c := spec.Composition
	if err := validateComposition(spec, c); err != nil {
		return "", err
	}

	gen, err := gopassword.NewGenerator(&gopassword.GeneratorInput{
		LowerLetters: pool.Alphabet(Lower),
		UpperLetters: pool.Alphabet(Upper),
		Digits:       pool.Alphabet(Digits),
		Symbols:      pool.Alphabet(Symbols),
		Reader:       g.rand,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create composed generator: %w", err)
	}

	noUpper := !spec.Classes.Has(Upper)
	pw, err := gen.Generate(spec.Length, c.Digits, c.Symbols, noUpper, true)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidComposition, err)
	}
	return pw, nil
}

func validateComposition(spec Spec, c *Composition) error {
	switch {
	case c.Digits < 0 || c.Symbols < 0:
		return fmt.Errorf("%w: counts must not be negative", ErrInvalidComposition)
	case !spec.Classes.Has(Lower):
		return fmt.Errorf("%w: the lower class is required to fill letters", ErrInvalidComposition)
	case c.Digits > 0 && !spec.Classes.Has(Digits):
		return fmt.Errorf("%w: %d digits requested but the digits class is disabled", ErrInvalidComposition, c.Digits)
	case c.Symbols > 0 && !spec.Classes.Has(Symbols):
		return fmt.Errorf("%w: %d symbols requested but the symbols class is disabled", ErrInvalidComposition, c.Symbols)
	case c.Digits+c.Symbols > spec.Length:
		return fmt.Errorf("%w: %d digits and %d symbols exceed length %d", ErrInvalidComposition, c.Digits, c.Symbols, spec.Length)
	}
	return nil
}

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func countIn(s, alphabet string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) >= 0 {
			n++
		}
	}
	return n
}

func TestGenerate_Composition(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		spec      Spec
		noUpper   bool
		ambiguous bool
	}{
		{
			name: "digits and symbols",
			spec: Spec{Length: 20, Classes: AllClasses, Composition: &Composition{Digits: 4, Symbols: 3}},
		},
		{
			name:    "lower and digits only",
			spec:    Spec{Length: 12, Classes: Lower | Digits, Composition: &Composition{Digits: 6}},
			noUpper: true,
		},
		{
			name:      "without ambiguous characters",
			spec:      Spec{Length: 32, Classes: AllClasses, ExcludeAmbiguous: true, Composition: &Composition{Digits: 10, Symbols: 10}},
			ambiguous: true,
		},
		{
			name: "letters only",
			spec: Spec{Length: 10, Classes: Lower | Upper, Composition: &Composition{}},
		},
		{
			name: "no letters left",
			spec: Spec{Length: 5, Classes: AllClasses, Composition: &Composition{Digits: 3, Symbols: 2}},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			pool, err := NewPool(tc.spec.Classes, tc.spec.ExcludeAmbiguous)
			require.NoError(t, err)

			for i := 0; i < 20; i++ {
				// --- Act ---
				pw, err := Generate(tc.spec)

				// --- Assert ---
				require.NoError(t, err)
				require.Len(t, pw, tc.spec.Length)
				requireInPool(t, pool, pw)
				require.Equal(t, tc.spec.Composition.Digits, countIn(pw, digitAlphabet), "digits in %q", pw)
				require.Equal(t, tc.spec.Composition.Symbols, countIn(pw, symbolAlphabet), "symbols in %q", pw)
				if tc.noUpper {
					require.Zero(t, countIn(pw, upperAlphabet), "upper case in %q", pw)
				}
				if tc.ambiguous {
					require.False(t, strings.ContainsAny(pw, ambiguous), "ambiguous character in %q", pw)
				}
			}
		})
	}
}

func TestGenerate_InvalidComposition(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		spec    Spec
		wantMsg string
	}{
		{
			name:    "negative count",
			spec:    Spec{Length: 8, Classes: AllClasses, Composition: &Composition{Digits: -1}},
			wantMsg: "must not be negative",
		},
		{
			name:    "lower class missing",
			spec:    Spec{Length: 8, Classes: Upper | Digits, Composition: &Composition{Digits: 2}},
			wantMsg: "lower class is required",
		},
		{
			name:    "digits class missing",
			spec:    Spec{Length: 8, Classes: Lower | Symbols, Composition: &Composition{Digits: 2}},
			wantMsg: "digits class is disabled",
		},
		{
			name:    "symbols class missing",
			spec:    Spec{Length: 8, Classes: Lower | Digits, Composition: &Composition{Symbols: 1}},
			wantMsg: "symbols class is disabled",
		},
		{
			name:    "counts exceed length",
			spec:    Spec{Length: 4, Classes: AllClasses, Composition: &Composition{Digits: 3, Symbols: 2}},
			wantMsg: "exceed length 4",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pw, err := Generate(tc.spec)

			require.Empty(t, pw)
			require.ErrorIs(t, err, ErrInvalidComposition)
			require.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

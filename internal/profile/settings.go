package profile

import "github.com/vk/qpass/internal/password"

// Settings holds generation options read from configuration. A nil field
// was not set and leaves the lower precedence value untouched.
type Settings struct {
	Length           *int
	Count            *int
	Classes          *password.ClassSet
	ExcludeAmbiguous *bool
	Digits           *int
	Symbols          *int
}

// Overlay returns s with every field that is set in top replaced.
func (s Settings) Overlay(top Settings) Settings {
	if top.Length != nil {
		s.Length = top.Length
	}
	if top.Count != nil {
		s.Count = top.Count
	}
	if top.Classes != nil {
		s.Classes = top.Classes
	}
	if top.ExcludeAmbiguous != nil {
		s.ExcludeAmbiguous = top.ExcludeAmbiguous
	}
	if top.Digits != nil {
		s.Digits = top.Digits
	}
	if top.Symbols != nil {
		s.Symbols = top.Symbols
	}
	return s
}

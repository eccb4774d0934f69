package app

import (
	"errors"
	"fmt"

	"github.com/vk/qpass/internal/password"
	"github.com/vk/qpass/internal/profile"
)

// Config holds all the necessary configuration for an App instance to run.
// Generation fields carry built-in defaults overlaid with command-line flags.
type Config struct {
	Length           int
	Count            int
	Classes          password.ClassSet
	Disabled         password.ClassSet // removed after profiles are applied
	ExcludeAmbiguous bool
	Digits           *int
	Symbols          *int

	// Explicit records the generation flags the user actually passed, so
	// that they win over values from a profile.
	Explicit profile.Settings

	ConfigPath string
	Profile    string

	Clip bool
	Hide bool

	LogFormat string
	LogLevel  string
}

// DefaultConfig returns the configuration used when no flag is given.
func DefaultConfig() Config {
	return Config{
		Length:    password.DefaultLength,
		Count:     1,
		Classes:   password.AllClasses,
		LogFormat: "text",
		LogLevel:  "error",
	}
}

// NewConfig validates cfg and returns a copy ready to run.
func NewConfig(cfg Config) (*Config, error) {
	if err := password.ValidateLength(cfg.Length); err != nil {
		return nil, err
	}
	if err := password.ValidateCount(cfg.Count); err != nil {
		return nil, err
	}
	if cfg.Profile != "" && cfg.ConfigPath == "" {
		return nil, errors.New("a profile requires a config path")
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.Hide {
		cfg.Clip = true
	}

	// Without a config file the pool is final and can be checked up front.
	if cfg.ConfigPath == "" {
		if _, err := password.NewPool(cfg.EffectiveClasses(), cfg.ExcludeAmbiguous); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// EffectiveClasses returns the enabled classes minus the disabled ones.
func (c *Config) EffectiveClasses() password.ClassSet {
	return c.Classes &^ c.Disabled
}

// WithSettings returns a copy of c with s applied to every generation field
// that was not set explicitly on the command line.
func (c *Config) WithSettings(s profile.Settings) *Config {
	s = s.Overlay(c.Explicit)
	out := *c
	if s.Length != nil {
		out.Length = *s.Length
	}
	if s.Count != nil {
		out.Count = *s.Count
	}
	if s.Classes != nil {
		out.Classes = *s.Classes
	}
	if s.ExcludeAmbiguous != nil {
		out.ExcludeAmbiguous = *s.ExcludeAmbiguous
	}
	if s.Digits != nil {
		out.Digits = s.Digits
	}
	if s.Symbols != nil {
		out.Symbols = s.Symbols
	}
	return &out
}

// Spec builds the password request described by c.
func (c *Config) Spec() password.Spec {
	spec := password.Spec{
		Length:           c.Length,
		Classes:          c.EffectiveClasses(),
		ExcludeAmbiguous: c.ExcludeAmbiguous,
	}
	if c.Digits != nil || c.Symbols != nil {
		comp := &password.Composition{}
		if c.Digits != nil {
			comp.Digits = *c.Digits
		}
		if c.Symbols != nil {
			comp.Symbols = *c.Symbols
		}
		spec.Composition = comp
	}
	return spec
}

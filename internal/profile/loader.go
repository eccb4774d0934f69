package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/qpass/internal/ctxlog"
	"github.com/vk/qpass/internal/fsutil"
	"github.com/vk/qpass/internal/password"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ErrUnknownProfile is returned by Resolve for a name no file defines.
var ErrUnknownProfile = errors.New("unknown profile")

// Config is the merged content of all loaded files.
type Config struct {
	Defaults Settings
	Profiles map[string]Settings
	Sources  []string
}

// hclFile is the top-level structure of a configuration file.
type hclFile struct {
	Defaults []*hclBlock   `hcl:"defaults,block"`
	Profiles []*hclProfile `hcl:"profile,block"`
}

type hclBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type hclProfile struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// hclSettings is the attribute schema shared by defaults and profiles.
type hclSettings struct {
	Length           *int      `hcl:"length,optional"`
	Count            *int      `hcl:"count,optional"`
	Classes          *[]string `hcl:"classes,optional"`
	ExcludeAmbiguous *bool     `hcl:"exclude_ambiguous,optional"`
	Digits           *int      `hcl:"digits,optional"`
	Symbols          *int      `hcl:"symbols,optional"`
}

// evalContext exposes the generator limits and a few numeric helpers to
// configuration expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"limits": cty.ObjectVal(map[string]cty.Value{
				"max_length":     cty.NumberIntVal(password.MaxLength),
				"default_length": cty.NumberIntVal(password.DefaultLength),
			}),
		},
		Functions: map[string]function.Function{
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
		},
	}
}

// Load reads path, a single file or a directory searched for .hcl files,
// and merges every file into one Config.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading profiles.", "path", path)

	files, err := fsutil.ResolveFiles(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find config files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl config files found in %s", path)
	}

	cfg := &Config{Profiles: make(map[string]Settings)}
	definedIn := make(map[string]string)
	defaultsFrom := ""

	parser := hclparse.NewParser()
	evalCtx := evalContext()
	for _, file := range files {
		parsed, err := parseFile(parser, file)
		if err != nil {
			return nil, err
		}

		for _, block := range parsed.Defaults {
			if defaultsFrom != "" {
				return nil, fmt.Errorf("duplicate defaults block in %s: already defined in %s", file, defaultsFrom)
			}
			defaultsFrom = file
			cfg.Defaults, err = decodeSettings(block.Body, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("invalid defaults block in %s: %w", file, err)
			}
		}

		for _, p := range parsed.Profiles {
			if prev, ok := definedIn[p.Name]; ok {
				return nil, fmt.Errorf("duplicate profile %q in %s: already defined in %s", p.Name, file, prev)
			}
			definedIn[p.Name] = file
			settings, err := decodeSettings(p.Body, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("invalid profile %q in %s: %w", p.Name, file, err)
			}
			cfg.Profiles[p.Name] = settings
		}
		cfg.Sources = append(cfg.Sources, file)
	}

	logger.Debug("Profiles loaded.", "files", len(cfg.Sources), "profiles", cfg.Names())
	return cfg, nil
}

func parseFile(parser *hclparse.Parser, file string) (*hclFile, error) {
	f, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}
	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}
	return &parsed, nil
}

// decodeSettings evaluates a block body and validates the values it sets.
func decodeSettings(body hcl.Body, evalCtx *hcl.EvalContext) (Settings, error) {
	var raw hclSettings
	if diags := gohcl.DecodeBody(body, evalCtx, &raw); diags.HasErrors() {
		return Settings{}, diags
	}

	s := Settings{
		Length:           raw.Length,
		Count:            raw.Count,
		ExcludeAmbiguous: raw.ExcludeAmbiguous,
		Digits:           raw.Digits,
		Symbols:          raw.Symbols,
	}
	if s.Length != nil {
		if err := password.ValidateLength(*s.Length); err != nil {
			return Settings{}, err
		}
	}
	if s.Count != nil {
		if err := password.ValidateCount(*s.Count); err != nil {
			return Settings{}, err
		}
	}
	if raw.Classes != nil {
		classes, err := password.ParseClassList(*raw.Classes)
		if err != nil {
			return Settings{}, err
		}
		s.Classes = &classes
	}
	return s, nil
}

// Names returns the profile names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the defaults overlaid with the named profile. An empty
// name resolves to the defaults alone.
func (c *Config) Resolve(name string) (Settings, error) {
	if name == "" {
		return c.Defaults, nil
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Settings{}, fmt.Errorf("%w %q: available profiles are %v", ErrUnknownProfile, name, c.Names())
	}
	return c.Defaults.Overlay(p), nil
}

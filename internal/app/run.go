package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/qpass/internal/ctxlog"
	"github.com/vk/qpass/internal/password"
	"github.com/vk/qpass/internal/profile"
)

// Run resolves the final settings, generates the requested passwords and
// delivers them to the output and, if asked, the clipboard.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Profile != "" {
		ctx = ctxlog.With(ctx, "profile", a.config.Profile)
	}

	cfg, err := a.resolve(ctx)
	if err != nil {
		return err
	}

	spec := cfg.Spec()
	ctxlog.FromContext(ctx).Debug("Generating passwords.",
		"length", spec.Length,
		"count", cfg.Count,
		"classes", spec.Classes.String(),
		"exclude_ambiguous", spec.ExcludeAmbiguous,
		"composed", spec.Composition != nil,
	)

	// Passwords are written as they are generated; only the clipboard needs
	// them all at once.
	var copied []string
	for i := 0; i < cfg.Count; i++ {
		pw, err := a.generator.Generate(spec)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		if !cfg.Hide {
			if _, err := fmt.Fprintln(a.outW, pw); err != nil {
				return fmt.Errorf("failed to write password: %w", err)
			}
		}
		if cfg.Clip {
			copied = append(copied, pw)
		}
	}

	if cfg.Clip {
		if err := a.copier.Copy(ctx, strings.Join(copied, "\n")); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		ctxlog.FromContext(ctx).Info("Copied to clipboard.", "count", len(copied))
		if cfg.Hide {
			fmt.Fprintln(a.errW, "Password copied to clipboard.")
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolve applies the selected profile, if any, beneath the command-line
// flags and re-checks the result.
func (a *App) resolve(ctx context.Context) (*Config, error) {
	if a.config.ConfigPath == "" {
		return a.config, nil
	}

	loaded, err := profile.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	settings, err := loaded.Resolve(a.config.Profile)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Profile resolved.", "sources", loaded.Sources)

	cfg := a.config.WithSettings(settings)
	if err := password.ValidateLength(cfg.Length); err != nil {
		return nil, err
	}
	if err := password.ValidateCount(cfg.Count); err != nil {
		return nil, err
	}
	return cfg, nil
}

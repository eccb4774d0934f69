package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/qpass/internal/app"
	"github.com/vk/qpass/internal/password"
)

const undefinedFlagPrefix = "flag provided but not defined: -"

// lengthFlag parses the password length and keeps the typed error, which
// the flag package would otherwise flatten into a string.
type lengthFlag struct {
	value *int
	err   error
}

func (f *lengthFlag) String() string {
	if f.value == nil {
		return ""
	}
	return fmt.Sprint(*f.value)
}

func (f *lengthFlag) Set(s string) error {
	n, err := password.ParseLength(s)
	if err != nil {
		f.err = err
		return err
	}
	*f.value = n
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	cfg := app.DefaultConfig()

	flagSet := flag.NewFlagSet("qpass", flag.ContinueOnError)
	// Errors are returned to the caller and usage is printed only on
	// request, so nothing is written while parsing.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	length := &lengthFlag{value: &cfg.Length}
	flagSet.Var(length, "n", "Password length (shorthand).")
	flagSet.Var(length, "length", fmt.Sprintf("Password length, 1 to %d.", password.MaxLength))
	flagSet.IntVar(&cfg.Count, "c", cfg.Count, "Number of passwords (shorthand).")
	flagSet.IntVar(&cfg.Count, "count", cfg.Count, "Number of passwords to generate.")

	classesFlag := flagSet.String("classes", password.AllClasses.String(), "Comma separated character classes: lower, upper, digits, symbols.")
	noLower := flagSet.Bool("no-lower", false, "Exclude lowercase letters.")
	noUpper := flagSet.Bool("no-upper", false, "Exclude uppercase letters.")
	noDigits := flagSet.Bool("no-digits", false, "Exclude digits.")
	noSymbols := flagSet.Bool("no-symbols", false, "Exclude symbols.")
	flagSet.BoolVar(&cfg.ExcludeAmbiguous, "exclude-ambiguous", false, "Exclude look-alike characters such as 0/O and 1/l/I.")
	digitsFlag := flagSet.Int("digits", 0, "Exact number of digits; letters fill the rest.")
	symbolsFlag := flagSet.Int("symbols", 0, "Exact number of symbols; letters fill the rest.")

	flagSet.StringVar(&cfg.ConfigPath, "config", "", "Path to an HCL profile file or a directory of .hcl files.")
	flagSet.StringVar(&cfg.Profile, "profile", "", "Profile to apply from the config.")
	flagSet.BoolVar(&cfg.Clip, "clip", false, "Copy the password to the clipboard.")
	flagSet.BoolVar(&cfg.Hide, "hide", false, "Do not print the password; implies -clip.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(output, flagSet)
			return nil, true, nil
		}
		if length.err != nil {
			return nil, false, usageError(length.err)
		}
		if name, ok := strings.CutPrefix(err.Error(), undefinedFlagPrefix); ok {
			return nil, false, usageError(&UnknownFlagError{Flag: name})
		}
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, usageError(fmt.Errorf("unexpected argument %q", flagSet.Arg(0)))
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	classes, err := password.ParseClasses(*classesFlag)
	if err != nil {
		return nil, false, usageError(err)
	}
	cfg.Classes = classes
	for toggle, class := range map[*bool]password.ClassSet{
		noLower:   password.Lower,
		noUpper:   password.Upper,
		noDigits:  password.Digits,
		noSymbols: password.Symbols,
	} {
		if *toggle {
			cfg.Disabled |= class
		}
	}
	if set["digits"] {
		cfg.Digits = digitsFlag
	}
	if set["symbols"] {
		cfg.Symbols = symbolsFlag
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if set["n"] || set["length"] {
		cfg.Explicit.Length = &cfg.Length
	}
	if set["c"] || set["count"] {
		cfg.Explicit.Count = &cfg.Count
	}
	if set["classes"] {
		cfg.Explicit.Classes = &cfg.Classes
	}
	if set["exclude-ambiguous"] {
		cfg.Explicit.ExcludeAmbiguous = &cfg.ExcludeAmbiguous
	}
	cfg.Explicit.Digits = cfg.Digits
	cfg.Explicit.Symbols = cfg.Symbols
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "length", config.Length, "count", config.Count, "classes", config.EffectiveClasses().String())
	return config, false, nil
}

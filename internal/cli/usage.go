package cli

import (
	"flag"
	"fmt"
	"io"
)

const usageHeader = `Usage of qpass:
  qpass [options]

Generates cryptographically secure random passwords and prints them, one
per line. Options can be given with one or two dashes.

Examples:
  qpass -n 8
  qpass --length 24 --exclude-ambiguous --no-symbols
  qpass -n 20 --digits 4 --symbols 2
  qpass --config ~/.config/qpass --profile wifi --clip

Exit codes:
  0  success or help
  1  runtime failure (entropy, clipboard, unreadable config)
  2  invalid arguments or settings

Options:
`

// printUsage writes the help text followed by the flag defaults.
func printUsage(w io.Writer, flagSet *flag.FlagSet) {
	fmt.Fprint(w, usageHeader)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
	flagSet.SetOutput(io.Discard)
}

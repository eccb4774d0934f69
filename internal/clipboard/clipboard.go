// Package clipboard copies text to the system clipboard by piping it into
// the platform's clipboard utility.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/vk/qpass/internal/ctxlog"
)

// ErrUnavailable is returned when no clipboard utility can be found.
var ErrUnavailable = errors.New("no clipboard utility found")

// command is a clipboard utility invocation.
type command struct {
	name string
	args []string
}

// candidates lists utilities per GOOS in order of preference.
var candidates = map[string][]command{
	"darwin":  {{name: "pbcopy"}},
	"windows": {{name: "clip"}},
	"linux": {
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	},
}

// System writes to the clipboard of the running OS.
type System struct {
	goos     string
	lookPath func(string) (string, error)
}

// NewSystem returns a System for the current platform.
func NewSystem() *System {
	return &System{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// Copy places text on the clipboard.
func (s *System) Copy(ctx context.Context, text string) error {
	cmd, err := s.resolve()
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Copying to clipboard.", "utility", cmd.name)
	return run(ctx, strings.NewReader(text), cmd.name, cmd.args...)
}

// resolve picks the first available utility for the platform.
func (s *System) resolve() (command, error) {
	cmds, ok := candidates[s.goos]
	if !ok {
		return command{}, fmt.Errorf("%w: unsupported operating system %s", ErrUnavailable, s.goos)
	}
	for _, c := range cmds {
		if _, err := s.lookPath(c.name); err == nil {
			return c, nil
		}
	}
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.name)
	}
	return command{}, fmt.Errorf("%w: install one of %s", ErrUnavailable, strings.Join(names, ", "))
}

// run executes cmd with stdin and folds its stderr into the returned error.
func run(ctx context.Context, stdin *strings.Reader, cmd string, args ...string) error {
	c := exec.CommandContext(ctx, cmd, args...)
	var stderr bytes.Buffer
	c.Stdin = stdin
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

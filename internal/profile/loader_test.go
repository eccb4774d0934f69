package profile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/qpass/internal/ctxlog"
	"github.com/vk/qpass/internal/password"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// writeFiles lays out files under a temporary directory and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func intPtr(v int) *int { return &v }

const sampleConfig = `
defaults {
  length = 20
  count  = 2
}

profile "wifi" {
  length            = limits.max_length / 32
  classes           = ["lower", "digits"]
  exclude_ambiguous = true
}

profile "pin" {
  length  = min(6, limits.default_length)
  classes = ["d"]
}

profile "policy" {
  digits  = 3
  symbols = 2
}
`

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeFiles(t, map[string]string{"qpass.hcl": sampleConfig})
	path := filepath.Join(dir, "qpass.hcl")

	// --- Act ---
	cfg, err := Load(testContext(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{path}, cfg.Sources)
	require.Equal(t, []string{"pin", "policy", "wifi"}, cfg.Names())
	require.Equal(t, intPtr(20), cfg.Defaults.Length)
	require.Equal(t, intPtr(2), cfg.Defaults.Count)
	require.Nil(t, cfg.Defaults.Classes)

	wifi := cfg.Profiles["wifi"]
	require.Equal(t, intPtr(32), wifi.Length)
	require.NotNil(t, wifi.Classes)
	require.Equal(t, password.Lower|password.Digits, *wifi.Classes)
	require.NotNil(t, wifi.ExcludeAmbiguous)
	require.True(t, *wifi.ExcludeAmbiguous)

	pin := cfg.Profiles["pin"]
	require.Equal(t, intPtr(6), pin.Length)
	require.Equal(t, password.Digits, *pin.Classes)
}

func TestLoad_DirectoryMergesFiles(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"defaults.hcl":     `defaults { length = 24 }`,
		"profiles/pin.hcl": `profile "pin" { length = 4 }`,
		"README.md":        `not hcl`,
	})

	cfg, err := Load(testContext(), dir)

	require.NoError(t, err)
	require.Len(t, cfg.Sources, 2)
	require.Equal(t, intPtr(24), cfg.Defaults.Length)
	require.Equal(t, []string{"pin"}, cfg.Names())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "syntax error",
			files:   map[string]string{"a.hcl": `profile "x" {`},
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown attribute",
			files:   map[string]string{"a.hcl": `profile "x" { colour = "red" }`},
			wantErr: `invalid profile "x"`,
		},
		{
			name:    "length out of range",
			files:   map[string]string{"a.hcl": `defaults { length = limits.max_length + 1 }`},
			wantErr: "must not exceed 1024",
		},
		{
			name:    "zero count",
			files:   map[string]string{"a.hcl": `defaults { count = 0 }`},
			wantErr: "count must be at least 1",
		},
		{
			name:    "count above limit",
			files:   map[string]string{"a.hcl": `profile "bulk" { count = 1001 }`},
			wantErr: "count must not exceed 1000",
		},
		{
			name:    "unknown class",
			files:   map[string]string{"a.hcl": `profile "x" { classes = ["emoji"] }`},
			wantErr: `unknown character class "emoji"`,
		},
		{
			name: "duplicate profile across files",
			files: map[string]string{
				"a.hcl": `profile "x" { length = 8 }`,
				"b.hcl": `profile "x" { length = 9 }`,
			},
			wantErr: `duplicate profile "x"`,
		},
		{
			name:    "duplicate defaults",
			files:   map[string]string{"a.hcl": "defaults {}\ndefaults {}\n"},
			wantErr: "duplicate defaults block",
		},
		{
			name:    "empty directory",
			files:   map[string]string{"notes.txt": "nothing here"},
			wantErr: "no .hcl config files found",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := writeFiles(t, tc.files)

			cfg, err := Load(testContext(), dir)

			require.Nil(t, cfg)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := Load(testContext(), filepath.Join(t.TempDir(), "absent.hcl"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"qpass.hcl": sampleConfig})
	cfg, err := Load(testContext(), dir)
	require.NoError(t, err)

	t.Run("defaults only", func(t *testing.T) {
		s, err := cfg.Resolve("")
		require.NoError(t, err)
		require.Equal(t, intPtr(20), s.Length)
		require.Equal(t, intPtr(2), s.Count)
	})

	t.Run("profile overrides defaults", func(t *testing.T) {
		s, err := cfg.Resolve("wifi")
		require.NoError(t, err)
		require.Equal(t, intPtr(32), s.Length)
		require.Equal(t, intPtr(2), s.Count, "count is inherited from defaults")
	})

	t.Run("composition", func(t *testing.T) {
		s, err := cfg.Resolve("policy")
		require.NoError(t, err)
		require.Equal(t, intPtr(3), s.Digits)
		require.Equal(t, intPtr(2), s.Symbols)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := cfg.Resolve("bank")
		require.ErrorIs(t, err, ErrUnknownProfile)
		require.Contains(t, err.Error(), "[pin policy wifi]")
	})
}

func TestSettings_Overlay(t *testing.T) {
	t.Parallel()

	yes := true
	classes := password.Upper
	base := Settings{Length: intPtr(10), Count: intPtr(3)}
	top := Settings{Length: intPtr(12), Classes: &classes, ExcludeAmbiguous: &yes}

	got := base.Overlay(top)

	require.Equal(t, intPtr(12), got.Length)
	require.Equal(t, intPtr(3), got.Count)
	require.Equal(t, &classes, got.Classes)
	require.Equal(t, &yes, got.ExcludeAmbiguous)
	require.Nil(t, got.Digits)
}

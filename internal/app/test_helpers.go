package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/vk/qpass/internal/password"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// FakeCopier records clipboard writes instead of touching the system.
type FakeCopier struct {
	Copied []string
	Err    error
}

// Copy implements Copier.
func (f *FakeCopier) Copy(_ context.Context, text string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Copied = append(f.Copied, text)
	return nil
}

// SetupAppTest creates an app writing to in-memory buffers with debug
// logging and a fake clipboard. A non-nil entropy reader replaces
// crypto/rand.
func SetupAppTest(t *testing.T, cfg *Config, entropy io.Reader) (*App, *SafeBuffer, *SafeBuffer, *FakeCopier) {
	t.Helper()

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	copier := &FakeCopier{}
	cfg.LogLevel = "debug"
	testApp := NewApp(out, logs, cfg, copier)
	if entropy != nil {
		testApp.generator = password.NewGenerator(entropy)
	}

	t.Cleanup(func() {
		if os.Getenv("QPASS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return testApp, out, logs, copier
}

package app

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"

	"github.com/vk/qpass/internal/clipboard"
	"github.com/vk/qpass/internal/password"
)

// Copier places text on a clipboard.
type Copier interface {
	Copy(ctx context.Context, text string) error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	errW      io.Writer
	logger    *slog.Logger
	config    *Config
	generator *password.Generator
	copier    Copier
}

// NewApp is the constructor for the main application. Passwords go to outW;
// logs and notices go to errW. A nil copier selects the system clipboard.
func NewApp(outW, errW io.Writer, cfg *Config, copier Copier) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	if copier == nil {
		copier = clipboard.NewSystem()
	}

	return &App{
		outW:      outW,
		errW:      errW,
		logger:    logger,
		config:    cfg,
		generator: password.NewGenerator(rand.Reader),
		copier:    copier,
	}
}

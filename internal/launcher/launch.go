// Package launcher starts the interactive roster picker.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/rosterpick/internal/app"
	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/tui/core"
)

// shutdownGrace bounds how long Launch waits for the program after ctx is cancelled
const shutdownGrace = 2 * time.Second

// Launch loads the roster named by cfg and runs the TUI until it quits or ctx is done.
func Launch(ctx context.Context, cfg *config.Config, opts ...app.Option) error {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return err
	}

	tuiApp := core.New(ctx, application)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not exit within grace period")
		}
	}

	return nil
}

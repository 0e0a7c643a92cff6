package main

import (
	"context"
	"fmt"
	"os"
)

// lifecycle is the part of *fx.App run drives.
type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

// run starts app and blocks until ctx is cancelled or app asks to shut down.
func run(ctx context.Context, app lifecycle) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	// ctx may already be cancelled here.
	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}

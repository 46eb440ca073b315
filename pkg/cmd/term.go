package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

// TermSignalAwaiter is a Job completing on SIGTERM or SIGINT.
func TermSignalAwaiter(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-ctx.Done()
	return nil
}

// TermSignalContext is cancelled on SIGTERM or SIGINT, used by short-lived commands.
func TermSignalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
}

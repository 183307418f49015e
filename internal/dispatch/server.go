package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Serve runs an HTTP server bound to addr with pool's handler until ctx is
// cancelled, then shuts it down gracefully within a 5 second grace period.
// Callers typically derive ctx from signal.NotifyContext so Ctrl-C drains
// in-flight requests instead of dropping them.
func (p *Pool) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: p.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("dispatch: serve: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("dispatch: shutdown: %w", err)
	}
	return <-errCh
}

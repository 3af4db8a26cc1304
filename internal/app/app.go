package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"baseconv/internal/web"
)

// Serve runs the web server on cfg.Addr until ctx is cancelled, then shuts
// it down within cfg.ShutdownTimeout.
func Serve(ctx context.Context, cfg Config, w *Wire) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return ServeListener(ctx, ln, cfg, w)
}

// ServeListener is Serve on an existing listener.
func ServeListener(ctx context.Context, ln net.Listener, cfg Config, w *Wire) error {
	handler := web.NewServer(w.Converter, w.Log,
		web.WithDefaultBases(cfg.DefaultFrom, cfg.DefaultTo),
	).Handler()

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		w.Log.Info("baseconvd listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	w.Log.Info("baseconvd shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"baseconv/internal/app"
)

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "baseconvd:", err)
		os.Exit(1)
	}
}

func run(stdout, stderr io.Writer) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	// Clipboard writes are never triggered server-side.
	cfg.Clipboard = "memory"

	log, closer, err := app.NewLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	w, err := app.NewWire(cfg, log, stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Serve(ctx, cfg, w)
}

package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"baseconv/internal/client"
	"baseconv/internal/clipboard"
	"baseconv/internal/domain"
	"baseconv/internal/services/converter"
	"baseconv/internal/services/widget"
	"baseconv/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Converter domain.ConverterService
	Widget    domain.WidgetService
	States    domain.StateStore
	Clipboard domain.Clipboard
	Client    domain.ConverterClient // nil unless cfg.Remote is set
	Log       *slog.Logger
}

// NewWire constructs the dependency graph from cfg. Terminal output such as
// OSC 52 clipboard sequences goes to out.
func NewWire(cfg Config, log *slog.Logger, out io.Writer) (*Wire, error) {
	// State lives on disk when a home directory is configured.
	var states domain.StateStore = store.NewMemoryStore()
	if cfg.Home != "" {
		states = store.NewStateFileStore(cfg.Home)
	}

	clip, err := clipboard.New(cfg.Clipboard, out)
	if err != nil {
		return nil, err
	}

	if !cfg.DefaultFrom.Known() || !cfg.DefaultTo.Known() {
		return nil, fmt.Errorf("default bases %q/%q: want one of bin, oct, dec, hex", cfg.DefaultFrom, cfg.DefaultTo)
	}

	var rc domain.ConverterClient
	if cfg.Remote != "" {
		rc = client.NewHTTP(cfg.Remote, &http.Client{Timeout: cfg.RequestTimeout})
	}

	return &Wire{
		Converter: converter.New(),
		Widget:    widget.New(states, clip, widget.WithDefaultBases(cfg.DefaultFrom, cfg.DefaultTo)),
		States:    states,
		Clipboard: clip,
		Client:    rc,
		Log:       log,
	}, nil
}

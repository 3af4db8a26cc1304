package interfaces

import (
	"context"

	domaintypes "baseconv/internal/domain/types"
)

// StateStore persists the widget state between interactions.
type StateStore interface {
	SaveState(ctx context.Context, state domaintypes.WidgetState) error
	// LoadState reports ok=false when nothing has been saved yet.
	LoadState(ctx context.Context) (domaintypes.WidgetState, bool, error)
}

// Clipboard receives text on a copy request.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

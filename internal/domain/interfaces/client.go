package interfaces

import (
	"context"

	domaintypes "baseconv/internal/domain/types"
)

// ConverterClient talks to a remote baseconvd over its JSON API.
type ConverterClient interface {
	Bases(ctx context.Context) ([]domaintypes.BaseDescriptor, error)
	Validate(ctx context.Context, value string, base domaintypes.Base) (domaintypes.Validation, error)
	Convert(ctx context.Context, value string, from, to domaintypes.Base) (domaintypes.Conversion, error)
}

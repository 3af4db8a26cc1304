package interfaces

import (
	"context"

	domaintypes "baseconv/internal/domain/types"
)

// ConverterService validates and converts numerals.
type ConverterService interface {
	Bases() []domaintypes.BaseDescriptor
	Validate(value string, base domaintypes.Base) domaintypes.Validation
	Convert(value string, from, to domaintypes.Base) (domaintypes.Conversion, error)
}

// WidgetService drives the converter widget's state.
type WidgetService interface {
	View(ctx context.Context) (domaintypes.WidgetView, error)
	SetValue(ctx context.Context, value string) (domaintypes.WidgetView, error)
	SetFrom(ctx context.Context, base domaintypes.Base) (domaintypes.WidgetView, error)
	SetTo(ctx context.Context, base domaintypes.Base) (domaintypes.WidgetView, error)
	Convert(ctx context.Context) (domaintypes.WidgetView, error)
	Swap(ctx context.Context) (domaintypes.WidgetView, error)
	Copy(ctx context.Context) (string, error)
}

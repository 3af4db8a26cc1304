package domain

import (
	interfaces "baseconv/internal/domain/interfaces"
	types "baseconv/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Base           = types.Base
	BaseDescriptor = types.BaseDescriptor
	Validation     = types.Validation
	Conversion     = types.Conversion
	WidgetState    = types.WidgetState
	WidgetView     = types.WidgetView
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ConverterService = interfaces.ConverterService
	WidgetService    = interfaces.WidgetService
	StateStore       = interfaces.StateStore
	Clipboard        = interfaces.Clipboard
	ConverterClient  = interfaces.ConverterClient
)

// Supported bases.
const (
	Binary      = types.Binary
	Octal       = types.Octal
	Decimal     = types.Decimal
	Hexadecimal = types.Hexadecimal
)

var (
	Bases              = types.Bases
	ParseBase          = types.ParseBase
	DefaultWidgetState = types.DefaultWidgetState
)

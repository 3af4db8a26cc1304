package radix

import (
	"errors"
	"fmt"

	"baseconv/internal/domain"
)

// ErrInvalidNumber is returned when a numeral cannot be parsed in its base.
var ErrInvalidNumber = errors.New("invalid number")

// ErrUnknownBase is returned for a base outside the supported set.
var ErrUnknownBase = errors.New("unknown base")

// NumberError describes why Value could not be parsed in Base.
type NumberError struct {
	Value  string
	Base   domain.Base
	Reason string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number %q in base %d: %s", e.Value, e.Base.Radix(), e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidNumber.
func (e *NumberError) Unwrap() error { return ErrInvalidNumber }

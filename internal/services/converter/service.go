package converter

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"baseconv/internal/domain"
	"baseconv/internal/radix"
)

// Service validates and converts numerals. It holds no state and is safe
// for concurrent use.
type Service struct{}

func New() *Service { return &Service{} }

// Bases lists the supported bases in selector order.
func (s *Service) Bases() []domain.BaseDescriptor {
	// Casers are stateful, so each call gets its own.
	upper := cases.Upper(language.Und)
	bases := domain.Bases()
	out := make([]domain.BaseDescriptor, 0, len(bases))
	for _, b := range bases {
		out = append(out, domain.BaseDescriptor{
			ID:    b,
			Radix: b.Radix(),
			Name:  b.Name(),
			Label: upper.String(b.String()),
		})
	}
	return out
}

// Validate classifies value under base. It never fails.
func (s *Service) Validate(value string, base domain.Base) domain.Validation {
	idx := radix.FirstInvalid(value, base)
	return domain.Validation{
		Value:        value,
		Base:         base,
		Valid:        idx < 0,
		FirstInvalid: idx,
	}
}

// Convert converts value from one base to another. Failures wrap
// radix.ErrInvalidNumber or radix.ErrUnknownBase.
func (s *Service) Convert(value string, from, to domain.Base) (domain.Conversion, error) {
	out, err := radix.Convert(value, from, to)
	if err != nil {
		return domain.Conversion{}, err
	}
	return domain.Conversion{Value: value, From: from, To: to, Result: out}, nil
}

var _ domain.ConverterService = (*Service)(nil)

package widget

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"baseconv/internal/ctxlog"
	"baseconv/internal/domain"
	"baseconv/internal/radix"
)

// ErrorResult is shown in place of a result when conversion fails.
const ErrorResult = "Error"

// ErrNothingToCopy is returned by Copy when there is no result yet.
var ErrNothingToCopy = errors.New("nothing to copy")

// Service drives widget state held in a StateStore.
type Service struct {
	states   domain.StateStore
	clip     domain.Clipboard
	defaults domain.WidgetState
}

// Option customises a Service.
type Option func(*Service)

// WithDefaultBases sets the bases used before any state has been saved.
func WithDefaultBases(from, to domain.Base) Option {
	return func(s *Service) {
		if from.Known() {
			s.defaults.From = from
		}
		if to.Known() {
			s.defaults.To = to
		}
	}
}

func New(states domain.StateStore, clip domain.Clipboard, opts ...Option) *Service {
	s := &Service{
		states:   states,
		clip:     clip,
		defaults: domain.DefaultWidgetState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View returns the current state and its derived display values.
func (s *Service) View(ctx context.Context) (domain.WidgetView, error) {
	st, err := s.load(ctx)
	if err != nil {
		return domain.WidgetView{}, err
	}
	return s.view(st), nil
}

// SetValue replaces the numeral being edited.
func (s *Service) SetValue(ctx context.Context, value string) (domain.WidgetView, error) {
	return s.update(ctx, func(st *domain.WidgetState) error {
		st.Value = value
		return nil
	})
}

// SetFrom selects the source base.
func (s *Service) SetFrom(ctx context.Context, base domain.Base) (domain.WidgetView, error) {
	return s.update(ctx, func(st *domain.WidgetState) error {
		if !base.Known() {
			return fmt.Errorf("%w %q", radix.ErrUnknownBase, string(base))
		}
		st.From = base
		return nil
	})
}

// SetTo selects the destination base.
func (s *Service) SetTo(ctx context.Context, base domain.Base) (domain.WidgetView, error) {
	return s.update(ctx, func(st *domain.WidgetState) error {
		if !base.Known() {
			return fmt.Errorf("%w %q", radix.ErrUnknownBase, string(base))
		}
		st.To = base
		return nil
	})
}

// Convert fills Result from Value. An empty Value leaves the state untouched;
// an unparsable one yields ErrorResult.
func (s *Service) Convert(ctx context.Context) (domain.WidgetView, error) {
	return s.update(ctx, func(st *domain.WidgetState) error {
		if st.Value == "" {
			return nil
		}
		out, err := radix.Convert(st.Value, st.From, st.To)
		if err != nil {
			ctxlog.FromContext(ctx).Debug("conversion failed",
				"value", st.Value, "from", st.From, "to", st.To, "error", err)
			out = ErrorResult
		}
		st.Result = out
		return nil
	})
}

// Swap exchanges the bases and moves the result into the input.
func (s *Service) Swap(ctx context.Context) (domain.WidgetView, error) {
	return s.update(ctx, func(st *domain.WidgetState) error {
		st.From, st.To = st.To, st.From
		st.Value, st.Result = st.Result, st.Value
		return nil
	})
}

// Copy writes the current result to the clipboard and returns it.
func (s *Service) Copy(ctx context.Context) (string, error) {
	st, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	if st.Result == "" {
		return "", ErrNothingToCopy
	}
	if s.clip == nil {
		return "", errors.New("no clipboard configured")
	}
	if err := s.clip.WriteText(ctx, st.Result); err != nil {
		return "", fmt.Errorf("write clipboard: %w", err)
	}
	return st.Result, nil
}

func (s *Service) load(ctx context.Context) (domain.WidgetState, error) {
	st, ok, err := s.states.LoadState(ctx)
	if err != nil {
		return domain.WidgetState{}, fmt.Errorf("load widget state: %w", err)
	}
	if !ok {
		return s.defaults, nil
	}
	if !st.From.Known() {
		st.From = s.defaults.From
	}
	if !st.To.Known() {
		st.To = s.defaults.To
	}
	return st, nil
}

func (s *Service) update(ctx context.Context, fn func(*domain.WidgetState) error) (domain.WidgetView, error) {
	st, err := s.load(ctx)
	if err != nil {
		return domain.WidgetView{}, err
	}
	if err := fn(&st); err != nil {
		return domain.WidgetView{}, err
	}
	if err := s.states.SaveState(ctx, st); err != nil {
		return domain.WidgetView{}, fmt.Errorf("save widget state: %w", err)
	}
	return s.view(st), nil
}

func (s *Service) view(st domain.WidgetState) domain.WidgetView {
	v := domain.WidgetView{
		WidgetState: st,
		Valid:       radix.IsValid(st.Value, st.From),
		Placeholder: fmt.Sprintf("Enter %s value", cases.Lower(language.Und).String(st.From.Name())),
	}
	if st.Value != "" && v.Valid {
		if n, err := radix.Parse(st.Value, st.From); err == nil {
			v.Preview = &n
		} else {
			v.OutOfRange = true
		}
	}
	return v
}

var _ domain.WidgetService = (*Service)(nil)

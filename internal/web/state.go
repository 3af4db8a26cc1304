package web

import (
	"context"

	"baseconv/internal/domain"
)

// requestState is a StateStore scoped to one request.
type requestState struct {
	state domain.WidgetState
	ok    bool
}

func (r *requestState) LoadState(context.Context) (domain.WidgetState, bool, error) {
	return r.state, r.ok, nil
}

func (r *requestState) SaveState(_ context.Context, st domain.WidgetState) error {
	r.state, r.ok = st, true
	return nil
}

var _ domain.StateStore = (*requestState)(nil)

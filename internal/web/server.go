package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"baseconv/internal/domain"
	"baseconv/internal/radix"
	"baseconv/internal/services/widget"
)

// Server routes page, fragment and API requests.
type Server struct {
	conv     domain.ConverterService
	log      *slog.Logger
	defaults domain.WidgetState
	mux      *http.ServeMux
}

// Option customises a Server.
type Option func(*Server)

// WithDefaultBases sets the bases preselected on a fresh page.
func WithDefaultBases(from, to domain.Base) Option {
	return func(s *Server) {
		if from.Known() {
			s.defaults.From = from
		}
		if to.Known() {
			s.defaults.To = to
		}
	}
}

func NewServer(conv domain.ConverterService, log *slog.Logger, opts ...Option) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		conv:     conv,
		log:      log,
		defaults: domain.DefaultWidgetState(),
		mux:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /page.css", serveStyle)
	s.mux.HandleFunc("GET /fragment/validate", s.handleValidateFragment)
	s.mux.HandleFunc("POST /fragment/convert", s.handleConvertFragment)
	s.mux.HandleFunc("POST /fragment/swap", s.handleSwapFragment)

	s.mux.HandleFunc("GET /api/bases", s.handleBases)
	s.mux.HandleFunc("GET /api/validate", s.handleValidate)
	s.mux.HandleFunc("GET /api/convert", s.handleConvert)
	return s
}

// Handler returns the routed handler wrapped in the access log.
func (s *Server) Handler() http.Handler {
	return accessLog(s.log, s.mux)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st, err := s.stateFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.widgetFor(st).View(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	templ.Handler(Page(view, s.conv.Bases())).ServeHTTP(w, r)
}

func (s *Server) handleValidateFragment(w http.ResponseWriter, r *http.Request) {
	st, err := s.stateFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.widgetFor(st).View(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	templ.Handler(Field(view, s.conv.Bases())).ServeHTTP(w, r)
}

func (s *Server) handleConvertFragment(w http.ResponseWriter, r *http.Request) {
	st, err := s.stateFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.widgetFor(st).Convert(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	templ.Handler(Result(view)).ServeHTTP(w, r)
}

func (s *Server) handleSwapFragment(w http.ResponseWriter, r *http.Request) {
	st, err := s.stateFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.widgetFor(st).Swap(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	templ.Handler(Widget(view, s.conv.Bases())).ServeHTTP(w, r)
}

func (s *Server) handleBases(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.conv.Bases())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	base, err := domain.ParseBase(q.Get("base"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.conv.Validate(q.Get("value"), base))
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := domain.ParseBase(q.Get("from"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	to, err := domain.ParseBase(q.Get("to"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	conv, err := s.conv.Convert(q.Get("value"), from, to)
	switch {
	case errors.Is(err, radix.ErrInvalidNumber):
		s.writeError(w, r, http.StatusUnprocessableEntity, err)
	case err != nil:
		s.writeError(w, r, http.StatusBadRequest, err)
	default:
		s.writeJSON(w, r, http.StatusOK, conv)
	}
}

// widgetFor runs the widget service over a single request's state.
func (s *Server) widgetFor(st domain.WidgetState) *widget.Service {
	return widget.New(&requestState{state: st, ok: true}, nil)
}

// stateFromRequest reads value, from, to and result from the query string
// or posted form, filling missing bases from the server defaults.
func (s *Server) stateFromRequest(r *http.Request) (domain.WidgetState, error) {
	if err := r.ParseForm(); err != nil {
		return domain.WidgetState{}, err
	}
	st := s.defaults
	st.Value = r.Form.Get("value")
	st.Result = r.Form.Get("result")
	if v := r.Form.Get("from"); v != "" {
		b, err := domain.ParseBase(v)
		if err != nil {
			return domain.WidgetState{}, err
		}
		st.From = b
	}
	if v := r.Form.Get("to"); v != "" {
		b, err := domain.ParseBase(v)
		if err != nil {
			return domain.WidgetState{}, err
		}
		st.To = b
	}
	return st, nil
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

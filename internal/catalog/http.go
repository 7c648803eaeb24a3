package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Bookshop/pkg/kit"
)

// Server exposes the catalog read-only over HTTP.
type Server struct {
	Store Reader
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/books", s.list)
	r.Get("/books/{id}", s.get)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.List())
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		if s.Log != nil {
			s.Log.Debug("bad book id", zap.String("id", raw), zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", nil, map[string]any{"id": raw})
		return
	}

	b, ok := s.Store.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", ErrNotFound, map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, Entry{ID: id, Book: b})
}

package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"selector-grader/internal/pkg/render"
	"selector-grader/internal/router"
)

type Handler struct {
	version string
}

func NewHandler(version Version) *Handler { return &Handler{version: string(version)} }

// Version is the build version reported by /health.
type Version string

func (h *Handler) RegisterRoute(r *chi.Mux) {
	r.Get("/health", h.Handle)
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	render.ChiJSON(w, http.StatusOK, map[string]any{"ok": true, "version": h.version})
}

var _ router.Handler = (*Handler)(nil)

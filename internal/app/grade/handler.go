package grade

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"selector-grader/internal/document"
	"selector-grader/internal/fetch"
	"selector-grader/internal/grader"
	"selector-grader/internal/pkg/render"
	"selector-grader/internal/router"
)

const maxRequestBytes = 4 << 20

type documentSource interface {
	Document(ctx context.Context, rawURL string) (*goquery.Document, error)
}

type Handler struct {
	source    documentSource
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

type NewHandlerParams struct {
	fx.In

	Fetcher *fetch.Fetcher
	Logger  *zap.SugaredLogger
}

func NewHandler(p NewHandlerParams) *Handler {
	return &Handler{
		source:    p.Fetcher,
		logger:    p.Logger,
		validator: validator.New(),
	}
}

func (h *Handler) RegisterRoute(r *chi.Mux) {
	r.Post("/v1/grade", h.Handle)
}

// gradeRequest carries either inline HTML or a URL to fetch, never both.
type gradeRequest struct {
	Checks []string `json:"checks" validate:"required"`
	HTML   string   `json:"html" validate:"required_without=URL,excluded_with=URL"`
	URL    string   `json:"url" validate:"required_without=HTML,omitempty,http_url"`
}

type gradeResponse struct {
	ID     string        `json:"id"`
	Result grader.Result `json:"result"`
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		render.ChiErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		render.ChiErr(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	id := uuid.NewString()

	var (
		result grader.Result
		err    error
	)
	if req.HTML != "" {
		result, err = grader.CheckString(req.HTML, req.Checks)
	} else {
		result, err = grader.CheckURL(r.Context(), h.source, req.URL, req.Checks)
	}

	switch {
	case err == nil:
	case errors.Is(err, grader.ErrMalformedSelector), errors.Is(err, document.ErrUnparsable):
		render.ChiErr(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, fetch.ErrAcquisition):
		h.logger.Warnw("grade_fetch_failed", "id", id, "url", req.URL, "err", err)
		render.ChiErr(w, http.StatusBadGateway, err.Error())
		return
	default:
		h.logger.Errorw("grade_failed", "id", id, "err", err)
		render.ChiErr(w, http.StatusInternalServerError, "failed to grade document")
		return
	}

	h.logger.Infow("grade_completed",
		"id", id,
		"url", req.URL,
		"checks", len(req.Checks),
		"missing", len(result.Missing()),
	)
	render.ChiJSON(w, http.StatusOK, gradeResponse{ID: id, Result: result})
}

var _ router.Handler = (*Handler)(nil)

// Package admin exposes normalization inspection and mapping management over HTTP.
package admin

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"foodrisk/internal/domain"
	"foodrisk/internal/normalize"
	"foodrisk/internal/service"
)

const (
	secretHeader        = "X-Admin-Secret"
	defaultUnknownLimit = 50
	maxUnknownLimit     = 500
)

type Service interface {
	Add(ctx context.Context, m *domain.Mapping) error
	List(ctx context.Context, kind domain.MappingKind) ([]domain.Mapping, error)
	Unknowns(ctx context.Context, kind domain.MappingKind, limit int) ([]domain.UnmappedValue, error)
	Explain(ctx context.Context, kind domain.MappingKind, raw string) (normalize.Explanation, error)
}

type Handler struct {
	service Service
	secret  string
	logger  *slog.Logger
}

func New(svc Service, secret string, logger *slog.Logger) *Handler {
	return &Handler{
		service: svc,
		secret:  secret,
		logger:  logger.With("component", "admin"),
	}
}

// Register mounts the admin routes under /admin. With no secret configured every
// admin request is rejected.
func (h *Handler) Register(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Use(h.requireSecret)
		r.Get("/normalize", h.HandleNormalize)
		r.Get("/unknowns", h.HandleUnknowns)
		r.Get("/mappings", h.HandleListMappings)
		r.Post("/mappings", h.HandleAddMapping)
	})
}

func (h *Handler) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		given := r.Header.Get(secretHeader)
		if h.secret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(h.secret)) != 1 {
			writeError(w, http.StatusUnauthorized, "invalid admin secret")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleNormalize handles GET /admin/normalize?kind=&value=.
func (h *Handler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	e, err := h.service.Explain(r.Context(), domain.MappingKind(q.Get("kind")), q.Get("value"))
	if err != nil {
		h.fail(w, r, "explain value", err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// HandleUnknowns handles GET /admin/unknowns?kind=&limit=.
func (h *Handler) HandleUnknowns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := defaultUnknownLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxUnknownLimit)
	}

	values, err := h.service.Unknowns(r.Context(), domain.MappingKind(q.Get("kind")), limit)
	if err != nil {
		h.fail(w, r, "list unknowns", err)
		return
	}
	if values == nil {
		values = []domain.UnmappedValue{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"values": values})
}

// HandleListMappings handles GET /admin/mappings?kind=.
func (h *Handler) HandleListMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.service.List(r.Context(), domain.MappingKind(r.URL.Query().Get("kind")))
	if err != nil {
		h.fail(w, r, "list mappings", err)
		return
	}
	if mappings == nil {
		mappings = []domain.Mapping{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"mappings": mappings})
}

type addMappingRequest struct {
	Kind            domain.MappingKind `json:"kind"`
	RawValue        string             `json:"raw_value"`
	NormalizedValue string             `json:"normalized_value"`
	Confidence      float64            `json:"confidence"`
}

// HandleAddMapping handles POST /admin/mappings.
func (h *Handler) HandleAddMapping(w http.ResponseWriter, r *http.Request) {
	var req addMappingRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m := &domain.Mapping{
		Kind:            req.Kind,
		RawValue:        req.RawValue,
		NormalizedValue: req.NormalizedValue,
		Confidence:      req.Confidence,
	}
	if err := h.service.Add(r.Context(), m); err != nil {
		h.fail(w, r, "add mapping", err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidMapping):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrReviewQueueDisabled):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), op+" failed",
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

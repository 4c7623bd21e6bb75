package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

type Handlers struct {
	Q   *app.QueryService
	Ing *app.IngestionService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type batchEnvelope struct {
	Success bool                      `json:"success"`
	Count   int                       `json:"count"`
	Data    []domain.NormalizedReview `json:"data"`
}

func (s *Server) MountHandlers(h *Handlers) {
	health := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
	s.mux.Get("/health", health)
	s.mux.Get("/healthz", health)

	s.mux.Route("/api/reviews", func(r chi.Router) {
		r.Get("/", h.listReviews)
		r.Get("/hostaway", h.ingestHostaway)
		r.Post("/google", h.ingestGoogle)
		r.Get("/approved", h.approvedReviews)
		r.Get("/stats", h.stats)
		r.Put("/{id}/approve", h.toggleApproval)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

func (h *Handlers) ingestHostaway(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Ing.IngestHostaway(r.Context())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Ingestion Failed", err.Error())
		return
	}
	h.Q.Invalidate()
	writeJSON(w, http.StatusOK, batchEnvelope{Success: true, Count: len(reviews), Data: reviews})
}

func (h *Handlers) ingestGoogle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PropertyName string `json:"propertyName"`
		Address      string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PropertyName == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "propertyName is required")
		return
	}

	reviews, err := h.Ing.IngestGoogle(r.Context(), body.PropertyName, body.Address)
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Ingestion Failed", err.Error())
		return
	}
	h.Q.Invalidate()
	writeJSON(w, http.StatusOK, batchEnvelope{Success: true, Count: len(reviews), Data: reviews})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := domain.ReviewFilters{
		Source:       q.Get("source"),
		Category:     q.Get("category"),
		Channel:      q.Get("channel"),
		StartDate:    q.Get("startDate"),
		EndDate:      q.Get("endDate"),
		PropertyName: q.Get("propertyName"),
		Status:       q.Get("status"),
	}
	if v := q.Get("minRating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinRating = &f
		}
	}
	if v := q.Get("maxRating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxRating = &f
		}
	}
	if v := q.Get("isApproved"); v != "" {
		b := v == "true"
		filters.IsApproved = &b
	}

	sortBy := domain.SortField(q.Get("sortBy"))
	if sortBy == "" {
		sortBy = domain.SortSubmittedAt
	}
	order := domain.SortOrder(q.Get("sortOrder"))
	if order == "" {
		order = domain.SortDesc
	}

	page := 1
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	limit := 50
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = n
	}

	writeJSON(w, http.StatusOK, h.Q.Query(filters, sortBy, order, page, limit))
}

func (h *Handlers) approvedReviews(w http.ResponseWriter, r *http.Request) {
	reviews := h.Q.Approved(r.Context(), r.URL.Query().Get("propertyName"))

	etag, body := calcETagAndBody(batchEnvelope{Success: true, Count: len(reviews), Data: reviews})
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write approved reviews body")
	}
}

func (h *Handlers) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Success bool                  `json:"success"`
		Data    domain.DashboardStats `json:"data"`
	}{Success: true, Data: h.Q.Stats()})
}

func (h *Handlers) toggleApproval(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	review, ok := h.Q.ToggleApproval(id)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "review not found")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Success bool                    `json:"success"`
		Data    domain.NormalizedReview `json:"data"`
	}{Success: true, Data: review})
}

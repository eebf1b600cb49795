package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/github-code-quality-study/review-api-P03/internal/adapters/observability"
	"github.com/github-code-quality-study/review-api-P03/internal/app"
	"github.com/github-code-quality-study/review-api-P03/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.ReviewService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.listReviews)
	s.mux.Post("/", h.createReview)
	s.mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(msg)); err != nil {
		log.Error().Err(err).Msg("write text response failed")
	}
}

// writeJSON marshals once so Content-Length is the exact byte count.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal response failed")
		writeText(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var q domain.ReviewsQuery
	if loc := params.Get("location"); loc != "" {
		q.Location = &loc
	}
	if sd := params.Get("start_date"); sd != "" {
		t, err := time.Parse(domain.DateLayout, sd)
		if err != nil {
			writeText(w, http.StatusBadRequest, "Invalid start_date")
			return
		}
		q.StartDate = &t
	}
	if ed := params.Get("end_date"); ed != "" {
		t, err := time.Parse(domain.DateLayout, ed)
		if err != nil {
			writeText(w, http.StatusBadRequest, "Invalid end_date")
			return
		}
		q.EndDate = &t
	}

	out, err := h.Q.ListReviews(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Msg("list reviews failed")
		writeText(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "Location and ReviewBody are required")
		return
	}
	cmd := app.CreateReview{
		Location:   r.PostFormValue("Location"),
		ReviewBody: r.PostFormValue("ReviewBody"),
	}

	created, err := h.C.CreateReview(r.Context(), cmd)
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		writeText(w, http.StatusBadRequest, "Location and ReviewBody are required")
		return
	case errors.Is(err, domain.ErrInvalidLocation):
		writeText(w, http.StatusBadRequest, "Invalid location")
		return
	case err != nil:
		log.Error().Err(err).Msg("create review failed")
		writeText(w, http.StatusInternalServerError, "internal error")
		return
	}

	observability.IncReviewsCreated()
	writeJSON(w, http.StatusCreated, created)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/creekriver/campground/internal/domain"
)

// campsiteRequest is the body for POST and PUT /api/campsites.
type campsiteRequest struct {
	CampsiteTypeID uuid.UUID `json:"campsite_type_id"`
	Nickname       string    `json:"nickname"`
	ImageURL       string    `json:"image_url"`
}

// CreateCampsite handles POST /api/campsites.
func (s *Server) CreateCampsite(w http.ResponseWriter, r *http.Request) {
	var req campsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		unprocessable(w, "request body must be valid JSON")
		return
	}

	created, err := s.campsites.Create(r.Context(), domain.Campsite{
		CampsiteTypeID: req.CampsiteTypeID,
		Nickname:       req.Nickname,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "campsite type not found")
		case errors.Is(err, domain.ErrValidation):
			validationFailed(w, err)
		default:
			internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetCampsite handles GET /api/campsites/{id}.
func (s *Server) GetCampsite(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		unprocessable(w, "id must be a valid UUID")
		return
	}

	site, err := s.campsites.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "campsite not found")
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, site)
}

// ListCampsites handles GET /api/campsites.
func (s *Server) ListCampsites(w http.ResponseWriter, r *http.Request) {
	sites, err := s.campsites.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sites)
}

// UpdateCampsite handles PUT /api/campsites/{id}.
func (s *Server) UpdateCampsite(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		unprocessable(w, "id must be a valid UUID")
		return
	}

	var req campsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		unprocessable(w, "request body must be valid JSON")
		return
	}

	updated, err := s.campsites.Update(r.Context(), domain.Campsite{
		ID:             id,
		CampsiteTypeID: req.CampsiteTypeID,
		Nickname:       req.Nickname,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "campsite not found")
		case errors.Is(err, domain.ErrValidation):
			validationFailed(w, err)
		default:
			internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCampsite handles DELETE /api/campsites/{id}.
// Deletion is rejected with 409 while active reservations reference the site.
func (s *Server) DeleteCampsite(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		unprocessable(w, "id must be a valid UUID")
		return
	}

	if err := s.campsites.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "campsite not found")
		case errors.Is(err, domain.ErrCampsiteInUse):
			conflict(w, "campsite_in_use", "campsite has active reservations")
		default:
			internalError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

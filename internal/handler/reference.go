package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/creekriver/campground/internal/domain"
)

// Campsite types and user profiles are read-only over HTTP: types are seeded
// reference data, and user management is outside this API's scope.

// ListCampsiteTypes handles GET /api/campsitetypes.
func (s *Server) ListCampsiteTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.types.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// GetCampsiteType handles GET /api/campsitetypes/{id}.
func (s *Server) GetCampsiteType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		unprocessable(w, "id must be a valid UUID")
		return
	}

	t, err := s.types.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "campsite type not found")
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// ListUserProfiles handles GET /api/userprofiles.
func (s *Server) ListUserProfiles(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUserProfile handles GET /api/userprofiles/{id}.
func (s *Server) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		unprocessable(w, "id must be a valid UUID")
		return
	}

	u, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "user profile not found")
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// Package handler implements the HTTP handlers for the Campground API.
// All handlers are methods on Server; methods are split into resource-specific
// files (reservation.go, campsite.go, …) but share the same struct so they can
// access its dependencies. Routes() assembles the chi router.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/creekriver/campground/internal/domain"
	"github.com/creekriver/campground/spec"
)

// ReservationServicer defines the business operations the reservation
// handlers depend on. Defining the interface here (in the consumer package)
// follows the Go convention: "accept interfaces, return concrete types".
// It lets handler tests inject a mock without touching the database or
// service layer.
type ReservationServicer interface {
	Create(ctx context.Context, userID, campsiteID uuid.UUID, checkin, checkout time.Time) (domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]domain.ReservationDetail, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

// CampsiteServicer defines the business operations the campsite handlers depend on.
type CampsiteServicer interface {
	Create(ctx context.Context, site domain.Campsite) (domain.Campsite, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Campsite, error)
	List(ctx context.Context) ([]domain.Campsite, error)
	Update(ctx context.Context, site domain.Campsite) (domain.Campsite, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CampsiteTypeServicer defines the read operations over the type reference data.
type CampsiteTypeServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.CampsiteType, error)
	List(ctx context.Context) ([]domain.CampsiteType, error)
}

// UserProfileServicer defines the read operations over user profiles.
type UserProfileServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.UserProfile, error)
	List(ctx context.Context) ([]domain.UserProfile, error)
}

// Server holds the service dependencies for all API endpoints.
type Server struct {
	reservations ReservationServicer
	campsites    CampsiteServicer
	types        CampsiteTypeServicer
	users        UserProfileServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	reservations ReservationServicer,
	campsites CampsiteServicer,
	types CampsiteTypeServicer,
	users UserProfileServicer,
) *Server {
	return &Server{
		reservations: reservations,
		campsites:    campsites,
		types:        types,
		users:        users,
	}
}

// Routes returns the API routing table. Mount it on the application router
// after the ambient middleware stack.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/campsites", func(r chi.Router) {
			r.Get("/", s.ListCampsites)
			r.Post("/", s.CreateCampsite)
			r.Get("/{id}", s.GetCampsite)
			r.Put("/{id}", s.UpdateCampsite)
			r.Delete("/{id}", s.DeleteCampsite)
		})
		r.Route("/campsitetypes", func(r chi.Router) {
			r.Get("/", s.ListCampsiteTypes)
			r.Get("/{id}", s.GetCampsiteType)
		})
		r.Route("/userprofiles", func(r chi.Router) {
			r.Get("/", s.ListUserProfiles)
			r.Get("/{id}", s.GetUserProfile)
		})
		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", s.ListReservations)
			r.Post("/", s.CreateReservation)
			r.Delete("/{id}", s.CancelReservation)
		})
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// serveOpenAPI handles GET /openapi.yaml, serving the spec embedded in the
// binary so the document and the running code are always in sync.
func serveOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/creekriver/campground/internal/domain"
)

// createReservationRequest is the body for POST /api/reservations.
// Dates are ISO-8601 calendar dates ("2024-06-10"), no time or zone component.
type createReservationRequest struct {
	CampsiteID    uuid.UUID          `json:"campsite_id"`
	UserProfileID uuid.UUID          `json:"user_profile_id"`
	CheckinDate   openapi_types.Date `json:"checkin_date"`
	CheckoutDate  openapi_types.Date `json:"checkout_date"`
}

// reservationResponse is the wire shape of a single reservation.
// TotalCost marshals as a decimal with two fractional digits.
type reservationResponse struct {
	ID            uuid.UUID          `json:"id"`
	CampsiteID    uuid.UUID          `json:"campsite_id"`
	UserProfileID uuid.UUID          `json:"user_profile_id"`
	CheckinDate   openapi_types.Date `json:"checkin_date"`
	CheckoutDate  openapi_types.Date `json:"checkout_date"`
	Nights        int                `json:"nights"`
	TotalCost     domain.Cents       `json:"total_cost"`
	CreatedAt     time.Time          `json:"created_at"`
}

// reservationDetailResponse adds the joined campsite, type, and user fields
// for listings.
type reservationDetailResponse struct {
	reservationResponse
	CampsiteNickname string `json:"campsite_nickname"`
	CampsiteTypeName string `json:"campsite_type_name"`
	UserFirstName    string `json:"user_first_name"`
	UserLastName     string `json:"user_last_name"`
	UserEmail        string `json:"user_email"`
}

// CreateReservation handles POST /api/reservations.
func (s *Server) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		unprocessable(w, "request body must be valid JSON with checkin_date and checkout_date as YYYY-MM-DD")
		return
	}
	if req.CampsiteID == uuid.Nil {
		unprocessable(w, "campsite_id is required")
		return
	}
	if req.UserProfileID == uuid.Nil {
		unprocessable(w, "user_profile_id is required")
		return
	}

	created, err := s.reservations.Create(r.Context(), req.UserProfileID, req.CampsiteID,
		dateToUTC(req.CheckinDate), dateToUTC(req.CheckoutDate))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, reasonOf(err))
		case errors.Is(err, domain.ErrInvalidDateRange):
			validationFailed(w, err)
		default:
			if stayErr, ok := isStayTooLong(err); ok {
				unprocessable(w, stayErr.Error())
				return
			}
			if unavailErr, ok := isUnavailable(err); ok {
				msg := "campsite unavailable for the requested dates"
				if unavailErr != nil {
					msg = unavailErr.Error()
				}
				conflict(w, "campsite_unavailable", msg)
				return
			}
			internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, reservationToResponse(created))
}

// ListReservations handles GET /api/reservations.
// Supports ?campsite_id= and ?user_profile_id= filters; results are ordered
// by checkin date ascending, reservation id as the stable secondary order.
func (s *Server) ListReservations(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		unprocessable(w, err.Error())
		return
	}

	details, err := s.reservations.List(r.Context(), filter)
	if err != nil {
		internalError(w, r, err)
		return
	}

	data := make([]reservationDetailResponse, len(details))
	for i, d := range details {
		data[i] = detailToResponse(d)
	}
	writeJSON(w, http.StatusOK, data)
}

// CancelReservation handles DELETE /api/reservations/{id}.
// Cancelling an unknown or already-cancelled reservation yields 404.
func (s *Server) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		unprocessable(w, "id must be a valid UUID")
		return
	}

	if err := s.reservations.Cancel(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "reservation not found")
			return
		}
		internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// dateToUTC normalizes a wire date to UTC midnight, the domain's calendar
// date representation.
func dateToUTC(d openapi_types.Date) time.Time {
	y, m, day := d.Time.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// filterFromQuery builds a ReservationFilter from optional query parameters.
func filterFromQuery(r *http.Request) (domain.ReservationFilter, error) {
	var filter domain.ReservationFilter
	if v := r.URL.Query().Get("campsite_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return domain.ReservationFilter{}, errors.New("campsite_id must be a valid UUID")
		}
		filter.CampsiteID = id
	}
	if v := r.URL.Query().Get("user_profile_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return domain.ReservationFilter{}, errors.New("user_profile_id must be a valid UUID")
		}
		filter.UserProfileID = id
	}
	return filter, nil
}

// reservationToResponse converts a domain.Reservation into its wire shape.
func reservationToResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:            res.ID,
		CampsiteID:    res.CampsiteID,
		UserProfileID: res.UserProfileID,
		CheckinDate:   openapi_types.Date{Time: res.Checkin},
		CheckoutDate:  openapi_types.Date{Time: res.Checkout},
		Nights:        res.Nights(),
		TotalCost:     res.TotalCost,
		CreatedAt:     res.CreatedAt,
	}
}

// detailToResponse converts a joined listing row into its wire shape.
func detailToResponse(d domain.ReservationDetail) reservationDetailResponse {
	return reservationDetailResponse{
		reservationResponse: reservationToResponse(d.Reservation),
		CampsiteNickname:    d.CampsiteNickname,
		CampsiteTypeName:    d.CampsiteTypeName,
		UserFirstName:       d.UserFirstName,
		UserLastName:        d.UserLastName,
		UserEmail:           d.UserEmail,
	}
}

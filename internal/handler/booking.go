package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/soham999a/spaceship/internal/domain"
	"github.com/soham999a/spaceship/internal/service"
)

// stepSlugs maps the URL step names to wizard steps.
var stepSlugs = map[string]service.Step{
	"traveler-profile":   service.StepTravelerProfile,
	"destination":        service.StepDestination,
	"spacecraft":         service.StepSpacecraft,
	"mission-parameters": service.StepMissionParameters,
}

// GetDraft handles GET /booking/draft.
func (s *Server) GetDraft(w http.ResponseWriter, _ *http.Request) {
	booking, packing := s.booking.Draft()
	writeJSON(w, http.StatusOK, draftToResponse(booking, packing))
}

// UpdateDraft handles PATCH /booking/draft. Only fields present in the body
// are touched; unknown fields are rejected.
func (s *Server) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var body updateDraftRequest
	if err := decodeJSON(r.Body, &body); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	booking, packing, err := s.booking.UpdateDraft(requestToDraftUpdate(body))
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, draftToResponse(booking, packing))
}

// SetDraftDestination handles PUT /booking/draft/destination/{id}.
func (s *Server) SetDraftDestination(w http.ResponseWriter, r *http.Request) {
	booking, packing, err := s.booking.SetDestination(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, draftToResponse(booking, packing))
}

// SetDraftVehicle handles PUT /booking/draft/vehicle/{id}.
func (s *Server) SetDraftVehicle(w http.ResponseWriter, r *http.Request) {
	booking, packing, err := s.booking.SetVehicle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, draftToResponse(booking, packing))
}

// AddDraftActivity handles POST /booking/draft/activities.
func (s *Server) AddDraftActivity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r.Body, &body); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	booking, packing, err := s.booking.AddActivity(body.Name)
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, draftToResponse(booking, packing))
}

// RemoveDraftActivity handles DELETE /booking/draft/activities/{name}.
// Removing an activity that is not selected is a no-op, not an error.
func (s *Server) RemoveDraftActivity(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeBadRequest(w, "malformed activity name")
		return
	}

	booking, packing := s.booking.RemoveActivity(name)
	writeJSON(w, http.StatusOK, draftToResponse(booking, packing))
}

// ValidateDraftStep handles GET /booking/draft/steps/{step}/validation.
// It always returns 200: the response body is the field-error map, empty
// when the step is valid. The wizard uses it to gate forward navigation.
func (s *Server) ValidateDraftStep(w http.ResponseWriter, r *http.Request) {
	step, ok := stepSlugs[chi.URLParam(r, "step")]
	if !ok {
		writeNotFound(w, "unknown wizard step")
		return
	}

	errs := s.booking.ValidateDraftStep(step)
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":  len(errs) == 0,
		"fields": errs,
	})
}

// ConfirmBooking handles POST /booking/confirm.
// On success the confirmed record is returned with 201 and the live draft
// has been reset; on validation failure a 422 with the field map is returned
// and the draft is untouched.
func (s *Server) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	confirmed, err := s.booking.Confirm(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, bookingToResponse(confirmed))
}

// ListBookings handles GET /bookings.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	history, err := s.booking.History(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}

	out := make([]bookingResponse, len(history))
	for i, b := range history {
		out[i] = bookingToResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetBooking handles GET /bookings/{id}.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w, "booking not found")
		return
	}

	booking, err := s.booking.HistoryByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, bookingToResponse(booking))
}

// CancelBooking handles POST /bookings/{id}/cancel.
// Cancelling an already-cancelled booking returns 200 with the unchanged
// record.
func (s *Server) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w, "booking not found")
		return
	}

	cancelled, err := s.booking.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, bookingToResponse(cancelled))
}

// --- request/response types -------------------------------------------------

// updateDraftRequest is the PATCH /booking/draft body. Every field is
// optional; dates are calendar dates ("2026-03-01").
type updateDraftRequest struct {
	TravelerName  *string             `json:"traveler_name"`
	Email         *string             `json:"email"`
	DepartureDate *openapi_types.Date `json:"departure_date"`
	ReturnDate    *openapi_types.Date `json:"return_date"`
	TripType      *domain.TripType    `json:"trip_type"`
	Lodging       *domain.Lodging     `json:"lodging"`
	Passengers    *int                `json:"passengers"`
}

// bookingResponse is the wire shape of a booking, draft or confirmed.
type bookingResponse struct {
	ID             *uuid.UUID          `json:"id,omitempty"`
	TravelerName   string              `json:"traveler_name"`
	Email          string              `json:"email"`
	Destination    *domain.Destination `json:"destination,omitempty"`
	Vehicle        *domain.Vehicle     `json:"vehicle,omitempty"`
	DepartureDate  *openapi_types.Date `json:"departure_date,omitempty"`
	ReturnDate     *openapi_types.Date `json:"return_date,omitempty"`
	TripType       domain.TripType     `json:"trip_type"`
	Lodging        domain.Lodging      `json:"lodging"`
	Activities     []string            `json:"activities"`
	Passengers     int                 `json:"passengers"`
	TotalCost      int                 `json:"total_cost"`
	TravelTimeDays int                 `json:"travel_time_days"`
	Status         domain.BookingStatus `json:"status"`
	BookedAt       *time.Time          `json:"booked_at,omitempty"`
}

// draftResponse is the wire shape of the live draft: the booking plus its
// derived packing list.
type draftResponse struct {
	bookingResponse
	PackingList []string `json:"packing_list"`
}

// --- mapping helpers --------------------------------------------------------

// decodeJSON decodes a request body strictly: unknown fields are an error,
// as is an empty body.
func decodeJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	return nil
}

// requestToDraftUpdate converts the PATCH body into a service.DraftUpdate.
func requestToDraftUpdate(body updateDraftRequest) service.DraftUpdate {
	upd := service.DraftUpdate{
		TravelerName: body.TravelerName,
		Email:        body.Email,
		TripType:     body.TripType,
		Lodging:      body.Lodging,
		Passengers:   body.Passengers,
	}
	if body.DepartureDate != nil {
		d := body.DepartureDate.Time
		upd.DepartureDate = &d
	}
	if body.ReturnDate != nil {
		d := body.ReturnDate.Time
		upd.ReturnDate = &d
	}
	return upd
}

// bookingToResponse converts a domain.Booking into its wire shape.
func bookingToResponse(b domain.Booking) bookingResponse {
	resp := bookingResponse{
		TravelerName:   b.TravelerName,
		Email:          b.Email,
		Destination:    b.Destination,
		Vehicle:        b.Vehicle,
		TripType:       b.TripType,
		Lodging:        b.Lodging,
		Activities:     b.Activities,
		Passengers:     b.Passengers,
		TotalCost:      b.TotalCost,
		TravelTimeDays: b.TravelTimeDays,
		Status:         b.Status,
	}
	if resp.Activities == nil {
		resp.Activities = []string{}
	}
	if b.ID != uuid.Nil {
		id := b.ID
		resp.ID = &id
	}
	if b.DepartureDate != nil {
		d := openapi_types.Date{Time: *b.DepartureDate}
		resp.DepartureDate = &d
	}
	if b.ReturnDate != nil {
		d := openapi_types.Date{Time: *b.ReturnDate}
		resp.ReturnDate = &d
	}
	if !b.BookedAt.IsZero() {
		at := b.BookedAt
		resp.BookedAt = &at
	}
	return resp
}

// draftToResponse wraps the booking wire shape with the packing list.
func draftToResponse(b domain.Booking, packing []string) draftResponse {
	if packing == nil {
		packing = []string{}
	}
	return draftResponse{bookingResponse: bookingToResponse(b), PackingList: packing}
}

// Package handler implements the HTTP handlers for the Space Tourism Portal
// API. All handlers are methods on Server; they are split into
// domain-specific files (health.go, catalog.go, booking.go) but share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soham999a/spaceship/internal/domain"
	"github.com/soham999a/spaceship/internal/service"
)

// CatalogServicer defines the catalog operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type CatalogServicer interface {
	Destinations(ctx context.Context, filter service.DestinationFilter) ([]domain.Destination, error)
	DestinationByID(ctx context.Context, id string) (domain.Destination, error)
	Vehicles(ctx context.Context) ([]domain.Vehicle, error)
	VehicleByID(ctx context.Context, id string) (domain.Vehicle, error)
}

// BookingServicer defines the booking operations the handlers depend on.
type BookingServicer interface {
	Draft() (domain.Booking, []string)
	UpdateDraft(upd service.DraftUpdate) (domain.Booking, []string, error)
	SetDestination(ctx context.Context, id string) (domain.Booking, []string, error)
	SetVehicle(ctx context.Context, id string) (domain.Booking, []string, error)
	AddActivity(name string) (domain.Booking, []string, error)
	RemoveActivity(name string) (domain.Booking, []string)
	ValidateDraftStep(step service.Step) domain.FieldErrors
	Confirm(ctx context.Context) (domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	History(ctx context.Context) ([]domain.Booking, error)
	HistoryByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)
}

// Server holds the dependencies shared by all endpoint handlers.
type Server struct {
	catalog CatalogServicer
	booking BookingServicer

	// openapi is the embedded spec served at /openapi.yaml; may be nil.
	openapi []byte
}

// NewServer constructs the Server with all its dependencies.
func NewServer(catalog CatalogServicer, booking BookingServicer, openapi []byte) *Server {
	return &Server{catalog: catalog, booking: booking, openapi: openapi}
}

// Routes returns the router for the full API surface.
// Global middleware (request ID, logging, CORS, body limits) is applied by
// the caller; only route wiring lives here.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/destinations", s.ListDestinations)
	r.Get("/destinations/{id}", s.GetDestination)
	r.Get("/vehicles", s.ListVehicles)
	r.Get("/vehicles/{id}", s.GetVehicle)

	r.Route("/booking", func(r chi.Router) {
		r.Get("/draft", s.GetDraft)
		r.Patch("/draft", s.UpdateDraft)
		r.Put("/draft/destination/{id}", s.SetDraftDestination)
		r.Put("/draft/vehicle/{id}", s.SetDraftVehicle)
		r.Post("/draft/activities", s.AddDraftActivity)
		r.Delete("/draft/activities/{name}", s.RemoveDraftActivity)
		r.Get("/draft/steps/{step}/validation", s.ValidateDraftStep)
		r.Post("/confirm", s.ConfirmBooking)
	})

	r.Get("/bookings", s.ListBookings)
	r.Get("/bookings/{id}", s.GetBooking)
	r.Post("/bookings/{id}/cancel", s.CancelBooking)

	return r
}

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soham999a/spaceship/internal/domain"
	"github.com/soham999a/spaceship/internal/repo"
)

// DraftUpdate carries a partial field update for the live draft.
// Nil fields are left untouched.
type DraftUpdate struct {
	TravelerName  *string
	Email         *string
	DepartureDate *time.Time
	ReturnDate    *time.Time
	TripType      *domain.TripType
	Lodging       *domain.Lodging
	Passengers    *int
}

// BookingService owns the live booking draft and the booking history.
// It is the state machine of the booking wizard: all mutations go through
// its methods, which keep the derived fields (total cost, travel time,
// packing list) consistent with the inputs.
//
// There is one live draft per process. A mutex serializes mutations because
// HTTP handlers run concurrently, but the model is still a single logical
// actor driving a single draft.
type BookingService struct {
	catalog  repo.CatalogRepo
	bookings repo.BookingRepo

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time

	mu      sync.Mutex
	draft   domain.Booking
	packing []string
}

// NewBookingService constructs a BookingService with a fresh empty draft.
func NewBookingService(catalog repo.CatalogRepo, bookings repo.BookingRepo) *BookingService {
	s := &BookingService{
		catalog:  catalog,
		bookings: bookings,
		now:      time.Now,
	}
	s.resetDraftLocked()
	return s
}

// Draft returns a snapshot of the live draft and its packing list.
func (s *BookingService) Draft() (domain.Booking, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// UpdateDraft merges a partial update into the draft and recomputes the
// derived fields. The draft's status never changes here.
// Returns domain.ErrValidation (as FieldErrors) when an updated field is
// out of range or not a known enum value; in that case nothing is applied.
func (s *BookingService) UpdateDraft(upd DraftUpdate) (domain.Booking, []string, error) {
	errs := domain.FieldErrors{}
	if upd.TripType != nil && !domain.ValidTripType(*upd.TripType) {
		errs["trip_type"] = "Trip type must be solo, couple, or family"
	}
	if upd.Lodging != nil && !domain.ValidLodging(*upd.Lodging) {
		errs["lodging"] = "Lodging must be tent, dome, or hotel"
	}
	if upd.Passengers != nil && (*upd.Passengers < domain.MinPassengers || *upd.Passengers > domain.MaxPassengers) {
		errs["passengers"] = fmt.Sprintf("Passengers must be between %d and %d", domain.MinPassengers, domain.MaxPassengers)
	}
	if len(errs) > 0 {
		return domain.Booking{}, nil, fmt.Errorf("service.BookingService.UpdateDraft: %w", errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.TravelerName != nil {
		s.draft.TravelerName = *upd.TravelerName
	}
	if upd.Email != nil {
		s.draft.Email = *upd.Email
	}
	if upd.DepartureDate != nil {
		d := *upd.DepartureDate
		s.draft.DepartureDate = &d
	}
	if upd.ReturnDate != nil {
		d := *upd.ReturnDate
		s.draft.ReturnDate = &d
	}
	if upd.TripType != nil {
		s.draft.TripType = *upd.TripType
	}
	if upd.Lodging != nil {
		s.draft.Lodging = *upd.Lodging
	}
	if upd.Passengers != nil {
		s.draft.Passengers = *upd.Passengers
	}

	s.recomputeLocked()
	booking, packing := s.snapshotLocked()
	return booking, packing, nil
}

// SetDestination resolves a catalog destination by ID, copies it into the
// draft, and recomputes the derived fields.
// Returns domain.ErrNotFound when the ID is not in the catalog.
func (s *BookingService) SetDestination(ctx context.Context, id string) (domain.Booking, []string, error) {
	dest, err := s.catalog.DestinationByID(ctx, id)
	if err != nil {
		return domain.Booking{}, nil, fmt.Errorf("service.BookingService.SetDestination: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Destination = &dest
	s.recomputeLocked()
	booking, packing := s.snapshotLocked()
	return booking, packing, nil
}

// SetVehicle resolves a catalog vehicle by ID, copies it into the draft,
// and recomputes the derived fields.
// Returns domain.ErrNotFound when the ID is not in the catalog.
func (s *BookingService) SetVehicle(ctx context.Context, id string) (domain.Booking, []string, error) {
	vehicle, err := s.catalog.VehicleByID(ctx, id)
	if err != nil {
		return domain.Booking{}, nil, fmt.Errorf("service.BookingService.SetVehicle: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Vehicle = &vehicle
	s.recomputeLocked()
	booking, packing := s.snapshotLocked()
	return booking, packing, nil
}

// AddActivity appends an activity to the draft. Adding an activity that is
// already present is a no-op — the activity set stays duplicate-free.
// Returns domain.ErrValidation when the name is blank.
func (s *BookingService) AddActivity(name string) (domain.Booking, []string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Booking{}, nil, fmt.Errorf("service.BookingService.AddActivity: %w",
			domain.FieldErrors{"activity": "Activity name is required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.draft.HasActivity(name) {
		s.draft.Activities = append(s.draft.Activities, name)
		s.recomputeLocked()
	}
	booking, packing := s.snapshotLocked()
	return booking, packing, nil
}

// RemoveActivity removes an activity from the draft. Removing an absent
// activity is a no-op.
func (s *BookingService) RemoveActivity(name string) (domain.Booking, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.draft.Activities[:0]
	removed := false
	for _, a := range s.draft.Activities {
		if a == name {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if removed {
		s.draft.Activities = kept
		s.recomputeLocked()
	}
	return s.snapshotLocked()
}

// ValidateDraftStep runs a single wizard step's validation against the
// current draft. An empty map means the step is valid.
func (s *BookingService) ValidateDraftStep(step Step) domain.FieldErrors {
	s.mu.Lock()
	draft := s.draft
	s.mu.Unlock()
	return ValidateStep(step, draft, s.now())
}

// Confirm freezes the draft into a confirmed booking: it validates every
// wizard step, assigns a fresh ID and confirmation timestamp, appends the
// snapshot to the history, and resets the live draft so a new booking can
// start immediately. The reset-on-confirm semantics follow the portal's
// observed behavior.
// Returns the field map (wrapping domain.ErrValidation) when validation
// fails; the draft is left untouched in that case.
func (s *BookingService) Confirm(ctx context.Context) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := validateAll(s.draft, s.now()); len(errs) > 0 {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Confirm: %w", errs)
	}

	s.recomputeLocked()

	confirmed := s.draft
	confirmed.ID = uuid.New()
	confirmed.Status = domain.StatusConfirmed
	confirmed.BookedAt = s.now().UTC()
	confirmed.Activities = append([]string{}, s.draft.Activities...)

	if err := s.bookings.Append(ctx, confirmed); err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Confirm: %w", err)
	}

	s.resetDraftLocked()
	return confirmed, nil
}

// Cancel marks a historical booking cancelled. Cancelling an
// already-cancelled booking is an idempotent no-op.
// Returns domain.ErrNotFound when no booking with that ID exists.
func (s *BookingService) Cancel(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Cancel: %w", err)
	}
	if booking.Status == domain.StatusCancelled {
		return booking, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.StatusCancelled)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Cancel: %w", err)
	}
	return updated, nil
}

// History returns all confirmed (and cancelled) bookings in confirmation
// order. Always returns a non-nil slice so callers can safely range over it.
func (s *BookingService) History(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.History: %w", err)
	}
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

// HistoryByID returns a single historical booking.
// Returns domain.ErrNotFound when the ID is unknown.
func (s *BookingService) HistoryByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.HistoryByID: %w", err)
	}
	return booking, nil
}

// recomputeLocked refreshes every derived field from the draft's inputs.
// Callers must hold s.mu.
func (s *BookingService) recomputeLocked() {
	s.draft.TotalCost = ComputeTotalCost(s.draft)

	var distance, speed float64
	if s.draft.Destination != nil {
		distance = s.draft.Destination.Distance
	}
	if s.draft.Vehicle != nil {
		speed = s.draft.Vehicle.MaxSpeedKmh
	}
	s.draft.TravelTimeDays = ComputeTravelTimeDays(distance, speed)

	if s.draft.Destination != nil {
		s.packing = GeneratePackingList(s.draft.Destination.Tags)
	} else {
		s.packing = []string{}
	}
}

// resetDraftLocked replaces the live draft with a fresh empty one.
// Callers must hold s.mu.
func (s *BookingService) resetDraftLocked() {
	s.draft = domain.NewDraft()
	s.draft.TotalCost = ComputeTotalCost(s.draft)
	s.packing = []string{}
}

// snapshotLocked returns value copies of the draft and packing list safe to
// hand outside the lock. Callers must hold s.mu.
func (s *BookingService) snapshotLocked() (domain.Booking, []string) {
	booking := s.draft
	booking.Activities = append([]string{}, s.draft.Activities...)
	packing := append([]string{}, s.packing...)
	return booking, packing
}

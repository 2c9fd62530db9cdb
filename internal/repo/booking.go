package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/soham999a/spaceship/internal/domain"
)

// BookingRepo defines the storage operations for confirmed bookings.
// Records are append-only apart from status changes: cancellation marks a
// record, it never deletes it.
type BookingRepo interface {
	// Append stores a confirmed booking snapshot. The caller is responsible
	// for having assigned ID, BookedAt, and status.
	Append(ctx context.Context, booking domain.Booking) error

	// GetByID retrieves a single historical booking.
	// Returns domain.ErrNotFound if no booking with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	// List returns all historical bookings in confirmation order.
	List(ctx context.Context) ([]domain.Booking, error)

	// UpdateStatus sets the status of an existing booking and returns the
	// updated record. Returns domain.ErrNotFound if the ID is unknown.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.Booking, error)
}

// memBookingRepo keeps the booking history in process memory, guarded by a
// RWMutex because HTTP handlers run concurrently.
type memBookingRepo struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	byID     map[uuid.UUID]int
}

// NewBookingRepo constructs an empty in-memory booking history.
func NewBookingRepo() BookingRepo {
	return &memBookingRepo{byID: make(map[uuid.UUID]int)}
}

// Append stores a booking snapshot at the end of the history.
func (r *memBookingRepo) Append(_ context.Context, booking domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return fmt.Errorf("repo.BookingRepo.Append: duplicate booking id %s", booking.ID)
	}
	r.byID[booking.ID] = len(r.bookings)
	r.bookings = append(r.bookings, booking)
	return nil
}

// GetByID retrieves a booking by its confirmation ID.
func (r *memBookingRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.bookings[idx], nil
}

// List returns the history in confirmation order.
func (r *memBookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

// UpdateStatus overwrites the status of an existing booking.
func (r *memBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.UpdateStatus: %w", domain.ErrNotFound)
	}
	r.bookings[idx].Status = status
	return r.bookings[idx], nil
}

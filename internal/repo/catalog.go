// Package repo contains the data access layer for the Space Tourism Portal API.
// Each resource has its own file with an interface and an in-memory
// implementation. No business logic lives here — only storage and lookup.
//
// Session data is deliberately memory-only: the portal keeps no state across
// restarts, so the implementations are process-local. The interfaces are the
// seam a persistent backend would plug into.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/soham999a/spaceship/catalogdata"
	"github.com/soham999a/spaceship/internal/domain"
)

// CatalogRepo defines lookup operations over the destination and vehicle
// catalog. The service layer depends on this interface, not the concrete
// implementation, which allows it to be unit-tested with a mock.
type CatalogRepo interface {
	// Destinations returns every catalog destination: the embedded static
	// set first, then any remotely fetched entries, in load order.
	Destinations(ctx context.Context) ([]domain.Destination, error)

	// DestinationByID retrieves a single destination.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	DestinationByID(ctx context.Context, id string) (domain.Destination, error)

	// Vehicles returns the full vehicle fleet in catalog order.
	Vehicles(ctx context.Context) ([]domain.Vehicle, error)

	// VehicleByID retrieves a single vehicle.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	VehicleByID(ctx context.Context, id string) (domain.Vehicle, error)

	// MergeRemote publishes remotely fetched destinations. Entries whose ID
	// collides with a static destination are dropped; the static catalog
	// always wins. Calling it again replaces the previous remote set.
	MergeRemote(ctx context.Context, fetched []domain.Destination) error
}

// memCatalogRepo serves the embedded static catalog plus an atomically
// swapped set of remotely fetched destinations.
type memCatalogRepo struct {
	destinations []domain.Destination
	vehicles     []domain.Vehicle

	mu     sync.RWMutex
	remote []domain.Destination
}

// NewCatalogRepo constructs a CatalogRepo from the embedded catalog data.
// Returns an error only if the embedded JSON is malformed, which would be a
// build defect rather than a runtime condition.
func NewCatalogRepo() (CatalogRepo, error) {
	var dests []domain.Destination
	if err := json.Unmarshal(catalogdata.Destinations, &dests); err != nil {
		return nil, fmt.Errorf("repo.NewCatalogRepo: parse destinations: %w", err)
	}

	var vehicles []domain.Vehicle
	if err := json.Unmarshal(catalogdata.Vehicles, &vehicles); err != nil {
		return nil, fmt.Errorf("repo.NewCatalogRepo: parse vehicles: %w", err)
	}

	return &memCatalogRepo{destinations: dests, vehicles: vehicles}, nil
}

// Destinations returns static entries followed by the current remote set.
func (r *memCatalogRepo) Destinations(_ context.Context) ([]domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Destination, 0, len(r.destinations)+len(r.remote))
	out = append(out, r.destinations...)
	out = append(out, r.remote...)
	return out, nil
}

// DestinationByID checks the static catalog first, then remote entries.
func (r *memCatalogRepo) DestinationByID(_ context.Context, id string) (domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.destinations {
		if d.ID == id {
			return d, nil
		}
	}
	for _, d := range r.remote {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Destination{}, fmt.Errorf("repo.CatalogRepo.DestinationByID: %w", domain.ErrNotFound)
}

// Vehicles returns the full static fleet.
func (r *memCatalogRepo) Vehicles(_ context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

// VehicleByID retrieves a vehicle by catalog ID.
func (r *memCatalogRepo) VehicleByID(_ context.Context, id string) (domain.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Vehicle{}, fmt.Errorf("repo.CatalogRepo.VehicleByID: %w", domain.ErrNotFound)
}

// MergeRemote swaps in the latest remote fetch result, skipping entries that
// shadow a static destination ID.
func (r *memCatalogRepo) MergeRemote(_ context.Context, fetched []domain.Destination) error {
	staticIDs := make(map[string]struct{}, len(r.destinations))
	for _, d := range r.destinations {
		staticIDs[d.ID] = struct{}{}
	}

	kept := make([]domain.Destination, 0, len(fetched))
	for _, d := range fetched {
		if _, clash := staticIDs[d.ID]; clash {
			continue
		}
		kept = append(kept, d)
	}

	r.mu.Lock()
	r.remote = kept
	r.mu.Unlock()
	return nil
}

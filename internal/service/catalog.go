package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/soham999a/spaceship/internal/domain"
	"github.com/soham999a/spaceship/internal/repo"
)

// DestinationFilter narrows a destination listing. Zero value matches all.
type DestinationFilter struct {
	// Tag keeps only destinations carrying the tag (exact match).
	Tag string
	// Search keeps only destinations whose name or description contains
	// the term, case-insensitively.
	Search string
}

// CatalogService implements listing and lookup over the catalog.
type CatalogService struct {
	catalog repo.CatalogRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repo.
func NewCatalogService(catalog repo.CatalogRepo) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Destinations returns catalog destinations matching the filter.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CatalogService) Destinations(ctx context.Context, filter DestinationFilter) ([]domain.Destination, error) {
	all, err := s.catalog.Destinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Destinations: %w", err)
	}

	out := make([]domain.Destination, 0, len(all))
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, d := range all {
		if filter.Tag != "" && !d.HasTag(filter.Tag) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Description), term) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// DestinationByID returns a single destination.
// Returns domain.ErrNotFound if the ID is not in the catalog.
func (s *CatalogService) DestinationByID(ctx context.Context, id string) (domain.Destination, error) {
	dest, err := s.catalog.DestinationByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.CatalogService.DestinationByID: %w", err)
	}
	return dest, nil
}

// Vehicles returns the full vehicle fleet.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CatalogService) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.catalog.Vehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Vehicles: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// VehicleByID returns a single vehicle.
// Returns domain.ErrNotFound if the ID is not in the catalog.
func (s *CatalogService) VehicleByID(ctx context.Context, id string) (domain.Vehicle, error) {
	vehicle, err := s.catalog.VehicleByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.CatalogService.VehicleByID: %w", err)
	}
	return vehicle, nil
}

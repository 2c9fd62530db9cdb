package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soham999a/spaceship/internal/domain"
	"github.com/soham999a/spaceship/internal/handler"
	"github.com/soham999a/spaceship/internal/service"
)

// mockCatalogServicer is a test double for handler.CatalogServicer.
// Set only the method fields your test needs.
type mockCatalogServicer struct {
	destinations    func(ctx context.Context, filter service.DestinationFilter) ([]domain.Destination, error)
	destinationByID func(ctx context.Context, id string) (domain.Destination, error)
	vehicles        func(ctx context.Context) ([]domain.Vehicle, error)
	vehicleByID     func(ctx context.Context, id string) (domain.Vehicle, error)
}

func (m *mockCatalogServicer) Destinations(ctx context.Context, filter service.DestinationFilter) ([]domain.Destination, error) {
	return m.destinations(ctx, filter)
}
func (m *mockCatalogServicer) DestinationByID(ctx context.Context, id string) (domain.Destination, error) {
	return m.destinationByID(ctx, id)
}
func (m *mockCatalogServicer) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return m.vehicles(ctx)
}
func (m *mockCatalogServicer) VehicleByID(ctx context.Context, id string) (domain.Vehicle, error) {
	return m.vehicleByID(ctx, id)
}

// compile-time check: mockCatalogServicer must satisfy handler.CatalogServicer.
var _ handler.CatalogServicer = (*mockCatalogServicer)(nil)

// newCatalogHTTPHandler wires a Server with the given catalog mock (no
// booking service needed).
func newCatalogHTTPHandler(svc handler.CatalogServicer) http.Handler {
	return handler.NewServer(svc, nil, nil).Routes()
}

func destinationFixture() domain.Destination {
	return domain.Destination{
		ID:          "europa",
		Name:        "Europa",
		Description: "Icy ocean moon of Jupiter",
		Distance:    0.000066,
		BaseCost:    18000,
		Tags:        []string{"Has Water", "Cold"},
		Activities:  []string{"Ice Diving"},
	}
}

func vehicleFixture() domain.Vehicle {
	return domain.Vehicle{
		ID:             "starship",
		Name:           "Starship Artemis",
		MaxSpeedKmh:    58000,
		CostMultiplier: 1.0,
		Capacity:       10,
	}
}

// ---- GET /destinations ------------------------------------------------------

func TestListDestinations_200(t *testing.T) {
	fixture := destinationFixture()
	svc := &mockCatalogServicer{
		destinations: func(_ context.Context, filter service.DestinationFilter) ([]domain.Destination, error) {
			assert.Empty(t, filter.Tag)
			assert.Empty(t, filter.Search)
			return []domain.Destination{fixture}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Destination
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, fixture.ID, got[0].ID)
}

func TestListDestinations_ForwardsQueryFilters(t *testing.T) {
	svc := &mockCatalogServicer{
		destinations: func(_ context.Context, filter service.DestinationFilter) ([]domain.Destination, error) {
			assert.Equal(t, "Cold", filter.Tag)
			assert.Equal(t, "moon", filter.Search)
			return []domain.Destination{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations?tag=Cold&search=moon", nil)
	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListDestinations_500(t *testing.T) {
	svc := &mockCatalogServicer{
		destinations: func(_ context.Context, _ service.DestinationFilter) ([]domain.Destination, error) {
			return nil, fmt.Errorf("mock: boom")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body.Error.Code)
	// Internal detail must not leak to the client.
	assert.NotContains(t, body.Error.Message, "boom")
}

// ---- GET /destinations/{id} -------------------------------------------------

func TestGetDestination_200(t *testing.T) {
	fixture := destinationFixture()
	svc := &mockCatalogServicer{
		destinationByID: func(_ context.Context, id string) (domain.Destination, error) {
			assert.Equal(t, "europa", id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations/europa", nil)
	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Destination
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, fixture.Name, got.Name)
}

func TestGetDestination_404(t *testing.T) {
	svc := &mockCatalogServicer{
		destinationByID: func(_ context.Context, _ string) (domain.Destination, error) {
			return domain.Destination{}, fmt.Errorf("mock: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations/arrakis", nil)
	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "destination not found", body.Error.Message)
}

// ---- GET /vehicles ----------------------------------------------------------

func TestListVehicles_200(t *testing.T) {
	fixture := vehicleFixture()
	svc := &mockCatalogServicer{
		vehicles: func(_ context.Context) ([]domain.Vehicle, error) {
			return []domain.Vehicle{fixture}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, fixture.ID, got[0].ID)
}

// ---- GET /vehicles/{id} -----------------------------------------------------

func TestGetVehicle_404(t *testing.T) {
	svc := &mockCatalogServicer{
		vehicleByID: func(_ context.Context, _ string) (domain.Vehicle, error) {
			return domain.Vehicle{}, fmt.Errorf("mock: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/vehicles/ornithopter", nil)
	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "vehicle not found", body.Error.Message)
}

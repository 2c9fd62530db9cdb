package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soham999a/spaceship/internal/service"
)

// ListDestinations handles GET /destinations.
// Supports ?tag= (exact tag match) and ?search= (name/description substring).
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	filter := service.DestinationFilter{
		Tag:    r.URL.Query().Get("tag"),
		Search: r.URL.Query().Get("search"),
	}

	destinations, err := s.catalog.Destinations(r.Context(), filter)
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, destinations)
}

// GetDestination handles GET /destinations/{id}.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	dest, err := s.catalog.DestinationByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, dest)
}

// ListVehicles handles GET /vehicles.
func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.catalog.Vehicles(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// GetVehicle handles GET /vehicles/{id}.
func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	vehicle, err := s.catalog.VehicleByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

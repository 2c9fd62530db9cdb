package domain

// Vehicle is a spacecraft from the catalog. Immutable after load.
type Vehicle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// MaxSpeedKmh is the cruise speed in km/h used for travel-time
	// estimates. Always positive for catalog entries.
	MaxSpeedKmh float64 `json:"max_speed_kmh"`

	// CostMultiplier scales the destination base cost. Never negative.
	CostMultiplier float64 `json:"cost_multiplier"`

	// Capacity is the maximum passenger count the vessel is rated for.
	Capacity int `json:"capacity"`

	// ComfortLevel ranges 0-10.
	ComfortLevel int `json:"comfort_level"`

	// Features maps amenity names (cryosleep, wifi, spa, ...) to availability.
	Features map[string]bool `json:"features,omitempty"`

	// Metadata holds descriptive fields (manufacturer, engine type, ...)
	// that no computation depends on.
	Metadata map[string]string `json:"metadata,omitempty"`
}

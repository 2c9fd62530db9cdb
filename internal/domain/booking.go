package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
// draft → confirmed is the only forward transition; confirmed → cancelled is
// the only transition thereafter. Nothing ever returns to draft.
type BookingStatus string

const (
	StatusDraft     BookingStatus = "draft"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// TripType categorizes who is travelling.
type TripType string

const (
	TripSolo   TripType = "solo"
	TripCouple TripType = "couple"
	TripFamily TripType = "family"
)

// ValidTripType reports whether t is one of the known trip types.
func ValidTripType(t TripType) bool {
	switch t {
	case TripSolo, TripCouple, TripFamily:
		return true
	}
	return false
}

// Lodging is the accommodation choice at the destination. Each option maps
// to a fixed surcharge applied by the pricing calculator.
type Lodging string

const (
	LodgingTent  Lodging = "tent"
	LodgingDome  Lodging = "dome"
	LodgingHotel Lodging = "hotel"
)

// ValidLodging reports whether l is one of the known lodging options.
func ValidLodging(l Lodging) bool {
	switch l {
	case LodgingTent, LodgingDome, LodgingHotel:
		return true
	}
	return false
}

// Passenger count bounds enforced on draft updates.
const (
	MinPassengers = 1
	MaxPassengers = 10
)

// Booking is the single mutable entity of the booking core. While Status is
// draft it is the live in-progress booking; once confirmed it is frozen into
// the history with ID and BookedAt populated.
type Booking struct {
	// ID is the nil UUID until the booking is confirmed.
	ID uuid.UUID `json:"id,omitempty"`

	TravelerName string `json:"traveler_name"`
	Email        string `json:"email"`

	// Destination and Vehicle are value copies resolved from the catalog
	// at selection time; nil while unselected.
	Destination *Destination `json:"destination,omitempty"`
	Vehicle     *Vehicle     `json:"vehicle,omitempty"`

	// DepartureDate and ReturnDate are calendar dates (no time-of-day
	// component); nil while unset.
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	ReturnDate    *time.Time `json:"return_date,omitempty"`

	TripType   TripType `json:"trip_type"`
	Lodging    Lodging  `json:"lodging"`
	Activities []string `json:"activities"`
	Passengers int      `json:"passengers"`

	// TotalCost and TravelTimeDays are derived; the booking service
	// recomputes them whenever a dependency field changes.
	TotalCost      int `json:"total_cost"`
	TravelTimeDays int `json:"travel_time_days"`

	Status BookingStatus `json:"status"`

	// BookedAt is the confirmation timestamp; zero until confirmed.
	BookedAt time.Time `json:"booked_at,omitzero"`
}

// NewDraft returns an empty draft with the portal's default selections:
// solo trip, dome lodging, one passenger.
func NewDraft() Booking {
	return Booking{
		TripType:   TripSolo,
		Lodging:    LodgingDome,
		Activities: []string{},
		Passengers: 1,
		Status:     StatusDraft,
	}
}

// HasActivity reports whether the draft already includes the named activity.
func (b Booking) HasActivity(name string) bool {
	for _, a := range b.Activities {
		if a == name {
			return true
		}
	}
	return false
}

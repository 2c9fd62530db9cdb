// Package service contains the business logic for the Space Tourism Portal
// API. Services validate inputs, enforce booking rules, and orchestrate repo
// calls. No storage access lives here — services depend on repo interfaces,
// not implementations.
package service

import (
	"math"

	"github.com/soham999a/spaceship/internal/domain"
)

// Pricing defaults applied when the draft has no destination or vehicle yet,
// so cost estimates degrade gracefully instead of failing.
const (
	defaultBaseCost       = 10000
	defaultCostMultiplier = 1.0
)

// activitySurcharge is the flat per-activity cost in credits.
const activitySurcharge = 2000

// lodgingSurcharge maps each lodging option to its flat surcharge in credits.
// Unknown lodging values contribute nothing.
var lodgingSurcharge = map[domain.Lodging]int{
	domain.LodgingTent:  0,
	domain.LodgingDome:  5000,
	domain.LodgingHotel: 15000,
}

// ComputeTotalCost derives the total price of a booking in credits:
//
//	(baseCost × vehicle multiplier + lodging surcharge + activity surcharges) × passengers
//
// rounded half-up once, after the passenger multiplication. Missing
// destination or vehicle fall back to the pricing defaults — the function
// never fails, it returns a partial estimate. Pure: the caller stores the
// result.
func ComputeTotalCost(b domain.Booking) int {
	baseCost := float64(defaultBaseCost)
	if b.Destination != nil {
		baseCost = float64(b.Destination.BaseCost)
	}

	multiplier := defaultCostMultiplier
	if b.Vehicle != nil {
		multiplier = b.Vehicle.CostMultiplier
	}

	subtotal := baseCost*multiplier +
		float64(lodgingSurcharge[b.Lodging]) +
		float64(len(b.Activities)*activitySurcharge)

	return int(math.Round(subtotal * float64(b.Passengers)))
}

package service

import "math"

// KmPerLightYear is the conversion constant used for travel-time estimates.
// The exact literal matters: numeric fixtures are derived from it.
const KmPerLightYear = 9.461e12

// ComputeTravelTimeDays estimates one-way travel time in days for the given
// distance (light years) and cruise speed (km/h), rounded to the nearest day.
// A zero or negative speed yields 0 rather than an error — the estimate
// simply is not available yet. Round-trip doubling is the caller's decision.
func ComputeTravelTimeDays(distanceLightYears, maxSpeedKmh float64) int {
	if maxSpeedKmh <= 0 {
		return 0
	}
	hours := distanceLightYears * KmPerLightYear / maxSpeedKmh
	return int(math.Round(hours / 24))
}

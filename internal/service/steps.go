package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/soham999a/spaceship/internal/domain"
)

// Step identifies one screen of the booking wizard. Each step gates forward
// navigation on its own validation rules.
type Step int

const (
	StepTravelerProfile Step = iota + 1
	StepDestination
	StepSpacecraft
	StepMissionParameters
)

// ValidStep reports whether s is a known wizard step.
func ValidStep(s Step) bool {
	return s >= StepTravelerProfile && s <= StepMissionParameters
}

// emailPattern is the portal's email check: something, an @, something,
// a dot, something. Deliberately loose — real verification is not this
// layer's job.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidateStep checks the draft against the rules of a single wizard step
// and returns one message per offending field. An empty map means the step
// is valid. Stateless and re-entrant; now is the only non-deterministic
// input and only the mission-parameters step reads it.
func ValidateStep(step Step, b domain.Booking, now time.Time) domain.FieldErrors {
	errs := domain.FieldErrors{}

	switch step {
	case StepTravelerProfile:
		if strings.TrimSpace(b.TravelerName) == "" {
			errs["traveler_name"] = "Name is required"
		}
		if strings.TrimSpace(b.Email) == "" {
			errs["email"] = "Email is required"
		}
		// Note: an empty email also fails the pattern, so "Email is
		// invalid" wins. This mirrors the wizard's observed behavior.
		if !emailPattern.MatchString(b.Email) {
			errs["email"] = "Email is invalid"
		}

	case StepDestination:
		if b.Destination == nil {
			errs["destination"] = "Please select a destination"
		}

	case StepSpacecraft:
		if b.Vehicle == nil {
			errs["vehicle"] = "Please select a spaceship"
		}

	case StepMissionParameters:
		if b.DepartureDate == nil {
			errs["departure_date"] = "Departure date is required"
		} else if !b.DepartureDate.After(now) {
			errs["departure_date"] = "Departure date must be in the future"
		}
		if b.ReturnDate == nil {
			errs["return_date"] = "Return date is required"
		} else if b.DepartureDate != nil && !b.ReturnDate.After(*b.DepartureDate) {
			errs["return_date"] = "Return date must be after departure date"
		}
	}

	return errs
}

// validateAll runs every wizard step against the draft at a single instant.
// Confirm uses it as the final gate.
func validateAll(b domain.Booking, now time.Time) domain.FieldErrors {
	errs := domain.FieldErrors{}
	for step := StepTravelerProfile; step <= StepMissionParameters; step++ {
		for field, msg := range ValidateStep(step, b, now) {
			errs[field] = msg
		}
	}
	return errs
}

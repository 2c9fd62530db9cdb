// Package domain contains the core data types for the Space Tourism Portal API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

// Destination is a bookable destination from the catalog.
// Catalog entries are immutable after load; the booking flow takes copies.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`

	// Distance from Earth in light years. Always positive.
	Distance float64 `json:"distance"`

	// BaseCost is the per-passenger base price in credits before any
	// vehicle multiplier or surcharge is applied.
	BaseCost int `json:"base_cost"`

	// Tags drive packing-list generation and catalog filtering.
	// Order is significant: packing items are appended in tag order.
	Tags []string `json:"tags,omitempty"`

	// Activities bookable at this destination, in display order.
	Activities []string `json:"activities,omitempty"`

	// Metadata holds the open-ended descriptive fields (gravity,
	// atmosphere, temperature, ...) that no computation depends on.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// HasTag reports whether the destination carries the given tag.
func (d Destination) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

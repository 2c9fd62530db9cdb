package service

// basePackingItems are always included, in this order, regardless of
// destination.
var basePackingItems = []string{
	"Space Suit",
	"Oxygen Tanks",
	"Emergency Beacon",
	"Radiation Shield",
	"Gravity Boots",
}

// packingItemsByTag adds destination-specific gear per catalog tag.
// Tags without an entry contribute nothing.
var packingItemsByTag = map[string][]string{
	"Has Water": {"Diving Gear", "Water Purification Tablets"},
	"Cold":      {"Thermal Underwear", "Heat Packs"},
	"Hot":       {"Cooling Vest", "Sun Protection"},
	"Adventure": {"Climbing Gear", "Energy Bars"},
	"Romantic":  {"Champagne", "Formal Wear"},
}

// GeneratePackingList builds the packing list for a destination's tags:
// the baseline items first, then per-tag additions in the destination's own
// tag order, deduplicated preserving first occurrence. Pure — recomputed
// from scratch on every call.
func GeneratePackingList(tags []string) []string {
	items := make([]string, 0, len(basePackingItems)+2*len(tags))
	seen := make(map[string]struct{}, len(basePackingItems)+2*len(tags))

	add := func(item string) {
		if _, dup := seen[item]; dup {
			return
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}

	for _, item := range basePackingItems {
		add(item)
	}
	for _, tag := range tags {
		for _, item := range packingItemsByTag[tag] {
			add(item)
		}
	}
	return items
}

package rates

import "ratesheets/internal/collections"

// GroupKeysOf returns the distinct (locale, shippingSpeed) pairs present in
// records, in first-occurrence order, with no duplicates.
func GroupKeysOf(records []RateRecord) []GroupKey {
	seen := collections.NewOrderedMap[GroupKey, struct{}]()
	for _, rec := range records {
		seen.Set(GroupKey{Locale: rec.Locale, ShippingSpeed: rec.ShippingSpeed}, struct{}{})
	}
	return seen.Keys()
}

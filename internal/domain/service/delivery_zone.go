package service

// DeliveryZone decides whether coordinates can be served.
type DeliveryZone interface {
	// Contains reports whether the point lies in the delivery area.
	// It always returns true when no area is configured.
	Contains(latitude, longitude float64) bool
}

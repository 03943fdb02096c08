// Package geo answers whether an address can be delivered to.
package geo

import (
	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// radiusZone is a circle around the kitchen.
type radiusZone struct {
	center       orb.Point
	radiusMeters float64
}

// NewDeliveryZone builds the zone from configuration. A missing or zero radius accepts every point.
func NewDeliveryZone(cfg *config.Config) service.DeliveryZone {
	if cfg.Store == nil || cfg.Store.DeliveryZone.RadiusKm <= 0 {
		return unboundedZone{}
	}

	zone := cfg.Store.DeliveryZone

	return &radiusZone{
		center:       orb.Point{zone.Longitude, zone.Latitude},
		radiusMeters: zone.RadiusKm * 1000,
	}
}

func (z *radiusZone) Contains(latitude, longitude float64) bool {
	return geo.DistanceHaversine(z.center, orb.Point{longitude, latitude}) <= z.radiusMeters
}

type unboundedZone struct{}

func (unboundedZone) Contains(float64, float64) bool {
	return true
}

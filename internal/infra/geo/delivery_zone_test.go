package geo

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryZone_Radius(t *testing.T) {
	cfg := &config.Config{Store: &config.StoreConfig{}}
	// Connaught Place, New Delhi
	cfg.Store.DeliveryZone.Latitude = 28.6315
	cfg.Store.DeliveryZone.Longitude = 77.2167
	cfg.Store.DeliveryZone.RadiusKm = 10

	zone := NewDeliveryZone(cfg)

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      bool
	}{
		{name: "centre", latitude: 28.6315, longitude: 77.2167, want: true},
		{name: "India Gate, about 2.5km", latitude: 28.6129, longitude: 77.2295, want: true},
		{name: "Gurugram, about 25km", latitude: 28.4595, longitude: 77.0266, want: false},
		{name: "Mumbai", latitude: 19.0760, longitude: 72.8777, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, zone.Contains(tt.latitude, tt.longitude))
		})
	}
}

func TestDeliveryZone_DisabledAcceptsEverything(t *testing.T) {
	assert.True(t, NewDeliveryZone(&config.Config{}).Contains(-33.86, 151.2))
	assert.True(t, NewDeliveryZone(&config.Config{Store: &config.StoreConfig{}}).Contains(51.5, -0.12))
}

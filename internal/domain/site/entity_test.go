package site

import "testing"

func TestHasCoordinates(t *testing.T) {
	lat, lon := 40.7580, -73.9855

	tests := []struct {
		name string
		site Site
		want bool
	}{
		{"both set", Site{Latitude: &lat, Longitude: &lon}, true},
		{"latitude only", Site{Latitude: &lat}, false},
		{"longitude only", Site{Longitude: &lon}, false},
		{"neither", Site{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.site.HasCoordinates(); got != tt.want {
				t.Errorf("HasCoordinates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveGeofenceRadius(t *testing.T) {
	override := 250

	tests := []struct {
		name           string
		site           Site
		companyDefault int
		want           int
	}{
		{"site override wins", Site{GeofenceRadius: &override}, 100, 250},
		{"falls back to company default", Site{}, 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.site.EffectiveGeofenceRadius(tt.companyDefault); got != tt.want {
				t.Errorf("EffectiveGeofenceRadius(%d) = %d, want %d", tt.companyDefault, got, tt.want)
			}
		})
	}
}

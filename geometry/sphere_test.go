package geometry

import (
	"math"
	"testing"
)

func TestSphericalCartesianRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"origin", 0, 0},
		{"positive quadrant", 123.4, 45.6},
		{"negative longitude", -200.0, 10.0},
		{"near north edge", 10.0, 249.9},
		{"near south edge", -10.0, -249.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Surface{X: tt.x, Y: tt.y}
			p := SphericalToCartesian(s)
			back := CartesianToSpherical(p)

			if math.Abs(back.X-tt.x) > 1e-9 {
				t.Errorf("x round-trip: got %v, want %v", back.X, tt.x)
			}
			if math.Abs(back.Y-tt.y) > 1e-9 {
				t.Errorf("y round-trip: got %v, want %v", back.Y, tt.y)
			}
		})
	}
}

func TestCartesianToSphericalPolePolicy(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantX   float64
		wantY   float64
	}{
		{"south pole equator longitude", 123.4, -250.0, -500.0, -250.0},
		{"north pole equator longitude", 123.4, 250.0, -500.0, 250.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SphericalToCartesian(Surface{X: tt.x, Y: tt.y})
			if math.Abs(p.Z*p.Z-1) > 1e-9 {
				t.Fatalf("setup: expected |Z|=1 at the pole, got Z=%v", p.Z)
			}
			back := CartesianToSpherical(p)
			if math.Abs(back.X-tt.wantX) > 1e-9 {
				t.Errorf("pole longitude: got %v, want %v", back.X, tt.wantX)
			}
			if math.Abs(back.Y-tt.wantY) > 1e-9 {
				t.Errorf("pole latitude: got %v, want %v", back.Y, tt.wantY)
			}
		})
	}
}

func TestSouthPoleConcreteScenario(t *testing.T) {
	// x=123.4, y=-250.0: Z=-1, round-trip y=-250.0, x collapses to -500
	// because the equator Y component is 0 there.
	p := SphericalToCartesian(Surface{X: 123.4, Y: -250.0})
	if math.Abs(p.Z-(-1)) > 1e-9 {
		t.Fatalf("Z = %v, want -1", p.Z)
	}

	back := CartesianToSpherical(p)
	if math.Abs(back.Y-(-250.0)) > 1e-9 {
		t.Errorf("y = %v, want -250.0", back.Y)
	}
	if math.Abs(back.X-(-500.0)) > 1e-9 {
		t.Errorf("x = %v, want -500.0", back.X)
	}
}

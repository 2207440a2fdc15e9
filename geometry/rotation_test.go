package geometry

import (
	"math"
	"testing"
)

func TestRotationFromTargetIdentity(t *testing.T) {
	m := RotationFromTarget(Point{X: 0, Y: 1, Z: 0})
	want := Matrix{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}

	for i := range m {
		if math.Abs(m[i].X-want[i].X) > 1e-12 ||
			math.Abs(m[i].Y-want[i].Y) > 1e-12 ||
			math.Abs(m[i].Z-want[i].Z) > 1e-12 {
			t.Errorf("row %d = %+v, want %+v", i, m[i], want[i])
		}
	}
}

func TestRotationFromTargetOrthonormal(t *testing.T) {
	// The world-up direction itself (0,0,1) is excluded: target × up is
	// the zero vector there, a genuine singularity of this construction
	// shared with any cross-product-based frame, not a bug to work
	// around.
	targets := []Point{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0.6, Y: 0.8, Z: 0},
		{X: 0.267, Y: 0.534, Z: 0.801},
	}

	for _, target := range targets {
		m := RotationFromTarget(normalize(target))

		for i := range m {
			if math.Abs(length(m[i])-1) > 1e-12 {
				t.Errorf("row %d not unit length: %v", i, length(m[i]))
			}
		}
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				dot := m[i].X*m[j].X + m[i].Y*m[j].Y + m[i].Z*m[j].Z
				if math.Abs(dot) > 1e-12 {
					t.Errorf("rows %d and %d not orthogonal: dot=%v", i, j, dot)
				}
			}
		}
	}
}

func TestRotateOffsetPreservesAltitude(t *testing.T) {
	m := RotationFromTarget(Point{X: 1, Y: 0, Z: 0})
	o := Offset{Surface: Surface{X: 50, Y: 20}, Altitude: 3.5}

	rotated := RotateOffset(m, o)
	if rotated.Altitude != o.Altitude {
		t.Errorf("altitude changed: got %v, want %v", rotated.Altitude, o.Altitude)
	}
}

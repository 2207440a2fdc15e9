// Package geometry implements the spherical↔Cartesian conversion and
// building-rotation math that editing tools use (through
// model.Building.Rotate) to move buildings across the sphere. The
// codec façade does not call into this package.
package geometry

import (
	"math"

	"github.com/sphereforge/dspbptk/log"
)

// SphereRadius is the world's fixed sphere radius, in world-units.
const SphereRadius = 500.0 / math.Pi

// halfCircumference is the longitude/latitude scale: this many surface
// units span half a great circle (π radians), so x in -500..500 covers
// a full turn of longitude and y in -250..250 runs pole to pole.
const halfCircumference = 500.0

// Point is a 3-D Cartesian point on (or near) the unit sphere.
type Point struct {
	X, Y, Z float64
}

// Surface is a position in the game's surface coordinate system: x is
// longitude in roughly [-500, 500], y is latitude in roughly
// [-250, 250].
type Surface struct {
	X, Y float64
}

// SphericalToCartesian converts a surface position to a point on the
// unit sphere. The caller's homogeneous component, if any, plays no
// part in the conversion.
func SphericalToCartesian(s Surface) Point {
	z := math.Sin(s.Y * math.Pi / halfCircumference)
	r := math.Sqrt(1 - z*z)
	return Point{
		X: math.Sin(s.X*math.Pi/halfCircumference) * r,
		Y: math.Cos(s.X*math.Pi/halfCircumference) * r,
		Z: z,
	}
}

// CartesianToSpherical converts a unit-sphere point back to a surface
// position. At the poles (r == 0) the longitude is indeterminate; per
// the pole policy, x collapses to 0 if Y > 0 else -500 (the equator,
// Y == 0, takes the -500 branch), and y takes ±250 with the sign of Z.
// Any non-finite intermediate also collapses to the pole policy, with
// a warning.
func CartesianToSpherical(p Point) Surface {
	r := math.Sqrt(1 - p.Z*p.Z)
	if r <= 1e-15 || math.IsNaN(r) {
		return polePolicy(p)
	}

	y := math.Asin(p.Z) * (halfCircumference / math.Pi)

	ratio := p.Y / r
	// Guard against a ratio that drifted just outside [-1, 1] from
	// floating-point error — acos is undefined there.
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	x := math.Acos(ratio) * (halfCircumference / math.Pi)
	if p.X < 0 {
		x = -x
	}

	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return polePolicy(p)
	}

	return Surface{X: x, Y: y}
}

func polePolicy(p Point) Surface {
	log.Warn("non-finite position collapsed to pole policy",
		log.F("x", p.X), log.F("y", p.Y), log.F("z", p.Z))

	x := 0.0
	if p.Y <= 0 {
		x = -halfCircumference
	}
	y := 250.0
	if p.Z < 0 {
		y = -250.0
	}
	return Surface{X: x, Y: y}
}

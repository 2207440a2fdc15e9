package geometry

import "math"

// Matrix is a 3x3 rotation matrix, row-major.
type Matrix [3]Point

// up is the world-up unit vector used as the seed for the rotation's
// third row.
var up = Point{X: 0, Y: 0, Z: 1}

// RotationFromTarget builds the rotation matrix that carries a neutral
// building at the equator (prime meridian) to the given unit Cartesian
// direction. Row 2 is the target direction itself; row 1 is target ×
// up; row 3 is re-derived as row1 × target to stay orthogonal. All
// three rows are normalized, since neither cross product yields a unit
// vector in general. At target == (0,1,0) (equator, prime meridian)
// this reduces to the identity matrix.
func RotationFromTarget(target Point) Matrix {
	row2 := normalize(target)
	row1 := normalize(cross(row2, up))
	row3 := normalize(cross(row1, row2))
	return Matrix{row1, row2, row3}
}

// Apply rotates p by m: the result's components are p dotted with each
// column of m (equivalently, p expressed in m's row basis).
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: p.X*m[0].X + p.Y*m[1].X + p.Z*m[2].X,
		Y: p.X*m[0].Y + p.Y*m[1].Y + p.Z*m[2].Y,
		Z: p.X*m[0].Z + p.Y*m[1].Z + p.Z*m[2].Z,
	}
}

func cross(a, b Point) Point {
	return Point{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func length(p Point) float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func normalize(p Point) Point {
	l := length(p)
	if l == 0 {
		return p
	}
	return Point{X: p.X / l, Y: p.Y / l, Z: p.Z / l}
}

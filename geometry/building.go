package geometry

// Offset is a building's local offset as carried in the model: a
// surface position plus an altitude component that the rotation must
// preserve untouched.
type Offset struct {
	Surface  Surface
	Altitude float64
}

// RotateOffset carries a building offset to the position implied by m,
// the rotation built by RotationFromTarget. The altitude component is
// saved and restored around the spherical/Cartesian round trip — it is
// never rotated.
func RotateOffset(m Matrix, o Offset) Offset {
	p := SphericalToCartesian(o.Surface)
	rotated := m.Apply(p)
	s := CartesianToSpherical(rotated)
	return Offset{Surface: s, Altitude: o.Altitude}
}

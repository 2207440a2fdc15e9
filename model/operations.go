package model

import "github.com/sphereforge/dspbptk/geometry"

// ResizeBuildings sets the length of bp.Buildings to n, reallocating in
// place. Growing leaves the new tail zero-valued; callers must populate
// it before encode. Shrinking drops the trailing buildings outright.
func (bp *Blueprint) ResizeBuildings(n int) {
	if n <= len(bp.Buildings) {
		bp.Buildings = bp.Buildings[:n]
		return
	}
	grown := make([]Building, n)
	copy(grown, bp.Buildings)
	bp.Buildings = grown
}

// DeepCopyBuildings copies src into dst, offsetting every Index,
// TempOutputObjIdx, and TempInputObjIdx by offset (absent references
// pass through unchanged). Each source's Parameters tail is cloned into
// an independent allocation; dst never aliases src.
func DeepCopyBuildings(dst, src []Building, offset int32) {
	for i, s := range src {
		b := s
		b.Index = s.Index + offset
		b.TempOutputObjIdx = s.TempOutputObjIdx.Offset(offset)
		b.TempInputObjIdx = s.TempInputObjIdx.Offset(offset)
		if s.Parameters != nil {
			b.Parameters = append([]int32(nil), s.Parameters...)
		}
		dst[i] = b
	}
}

// Free releases every building's parameter tail along with the
// blueprint's own slices and strings, dropping aliasing references
// deterministically ahead of garbage collection.
func (bp *Blueprint) Free() {
	for i := range bp.Buildings {
		bp.Buildings[i].Parameters = nil
	}
	bp.Buildings = nil
	bp.Areas = nil
	bp.ShortDesc = ""
	bp.Desc = ""
	bp.Fingerprint = ""
}

// offsetToGeometry converts a building offset's surface components into
// the geometry package's Offset, preserving Z as altitude.
func offsetToGeometry(v Vec) geometry.Offset {
	return geometry.Offset{
		Surface:  geometry.Surface{X: v.X, Y: v.Y},
		Altitude: v.Z,
	}
}

func offsetFromGeometry(o geometry.Offset) Vec {
	return Vec{X: o.Surface.X, Y: o.Surface.Y, Z: o.Altitude, W: 1}
}

// Rotate carries both of a building's local offsets to the position
// implied by m, leaving altitude untouched. m is typically built by
// geometry.RotationFromTarget for the building's new surface position.
func (b *Building) Rotate(m geometry.Matrix) {
	b.LocalOffset = offsetFromGeometry(geometry.RotateOffset(m, offsetToGeometry(b.LocalOffset)))
	b.LocalOffset2 = offsetFromGeometry(geometry.RotateOffset(m, offsetToGeometry(b.LocalOffset2)))
}

// Translate shifts both of a building's local offsets by the given
// surface delta, leaving altitude untouched.
func (b *Building) Translate(dx, dy float64) {
	b.LocalOffset.X += dx
	b.LocalOffset.Y += dy
	b.LocalOffset2.X += dx
	b.LocalOffset2.Y += dy
}

package model

// Ref is a reference to another building by its stable index, or the
// absence of one. The wire format represents absence as -1; Ref keeps
// that sentinel out of call sites.
type Ref struct {
	valid bool
	index int32
}

// NoRef is the absent reference.
var NoRef = Ref{}

// NewRef returns a Ref pointing at the given stable index.
func NewRef(index int32) Ref {
	return Ref{valid: true, index: index}
}

// RefFromWire decodes a wire value (-1 meaning absent) into a Ref.
func RefFromWire(raw int32) Ref {
	if raw < 0 {
		return NoRef
	}
	return NewRef(raw)
}

// IsNone reports whether the reference is absent.
func (r Ref) IsNone() bool {
	return !r.valid
}

// Index returns the referenced stable index and whether the reference
// is present.
func (r Ref) Index() (int32, bool) {
	return r.index, r.valid
}

// ToWire encodes the reference back to its wire representation, -1 for
// absent.
func (r Ref) ToWire() int32 {
	if !r.valid {
		return -1
	}
	return r.index
}

// Offset returns a new Ref with the index shifted by delta. An absent
// reference is returned unchanged.
func (r Ref) Offset(delta int32) Ref {
	if !r.valid {
		return r
	}
	return NewRef(r.index + delta)
}

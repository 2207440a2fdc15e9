// Package model defines the in-memory representation of a blueprint —
// the typed aggregate the codec decodes into and encodes from — and the
// lifecycle operations (allocate, resize, deep-copy, free) that editing
// tools use between a decode and an encode.
package model

// GameVersion is the four-part version tag carried in a blueprint's
// header.
type GameVersion struct {
	Major, Minor, Patch, Build int32
}

// Header holds the blueprint's scalar header fields — everything in the
// text head-csv plus the binary header record, minus the area count
// (implied by len(Areas)).
type Header struct {
	Layout           int32
	Icons            [5]int32
	Timestamp        int32
	GameVersion      GameVersion
	ShortDesc        string
	Desc             string
	CursorOffsetX    int32
	CursorOffsetY    int32
	CursorTargetArea int32
	DragBoxSizeX     int32
	DragBoxSizeY     int32
	PrimaryAreaIdx   int32
}

// Area is a planar sub-region on the sphere.
type Area struct {
	Index               int8
	ParentIndex         int8 // -1 = none
	TropicAnchor        int16
	AreaSegments        int16
	AnchorLocalOffsetX  int16
	AnchorLocalOffsetY  int16
	Width               int16
	Height              int16
}

// Building is a placed structure. Index is the building's stable
// identifier, used by other buildings' TempOutputObjIdx/TempInputObjIdx
// references — it is not a position within Buildings.
type Building struct {
	Index   int32
	AreaIndex int8

	LocalOffset  Vec
	LocalOffset2 Vec
	Yaw, Yaw2    float64

	ItemId     int16
	ModelIndex int16
	RecipeId   int16
	FilterId   int16

	TempOutputObjIdx Ref
	TempInputObjIdx  Ref

	OutputToSlot   int8
	InputFromSlot  int8
	OutputFromSlot int8
	InputToSlot    int8
	OutputOffset   int8
	InputOffset    int8

	// Parameters is nil when the building has no parameter tail —
	// there is no backing allocation for the zero-length case.
	Parameters []int32
}

// Blueprint is the top-level aggregate decoded from, or encoded to, a
// blueprint envelope.
type Blueprint struct {
	Header
	Areas     []Area
	Buildings []Building

	// Fingerprint is the 32-character uppercase hex digest. After
	// decode it holds the input's trailing fingerprint verbatim; it is
	// re-derived from scratch on encode.
	Fingerprint string
}

// New returns an empty, zeroed blueprint ready for population by an
// editing tool or by the codec's decode path.
func New() *Blueprint {
	return &Blueprint{}
}

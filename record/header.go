package record

import "github.com/sphereforge/dspbptk/model"

// HeaderSize is the fixed byte length of the header's numeric fields,
// not counting the numAreas byte that immediately follows them.
const HeaderSize = 28

// HeaderRecordSize is the total header record length including the
// numAreas byte; the area array begins at this offset.
const HeaderRecordSize = HeaderSize + 1

// Header field offsets within a header record.
const (
	offHeaderVersion          = 0
	offHeaderCursorOffsetX    = 4
	offHeaderCursorOffsetY    = 8
	offHeaderCursorTargetArea = 12
	offHeaderDragBoxSizeX     = 16
	offHeaderDragBoxSizeY     = 20
	offHeaderPrimaryAreaIdx   = 24
	offHeaderNumAreas         = 28
)

// ReadHeader fills a model.Header from buf and returns bytes consumed.
// Layout is read from the binary version slot. The icons/timestamp/
// gameVersion/shortDesc/desc fields live in the envelope head-csv, not
// the binary payload, and are left zero; the caller fills them in
// separately.
func ReadHeader(buf []byte) (model.Header, int, error) {
	if err := need(buf, HeaderSize); err != nil {
		return model.Header{}, 0, err
	}
	h := model.Header{
		CursorOffsetX:    Read32(buf[offHeaderCursorOffsetX:]),
		CursorOffsetY:    Read32(buf[offHeaderCursorOffsetY:]),
		CursorTargetArea: Read32(buf[offHeaderCursorTargetArea:]),
		DragBoxSizeX:     Read32(buf[offHeaderDragBoxSizeX:]),
		DragBoxSizeY:     Read32(buf[offHeaderDragBoxSizeY:]),
		PrimaryAreaIdx:   Read32(buf[offHeaderPrimaryAreaIdx:]),
	}
	h.Layout = Read32(buf[offHeaderVersion:])
	return h, HeaderSize, nil
}

// NumAreas reads the numAreas byte that follows the fixed header fields.
func NumAreas(buf []byte) (int8, error) {
	if err := need(buf, HeaderRecordSize); err != nil {
		return 0, err
	}
	return Read8(buf[offHeaderNumAreas:]), nil
}

// WriteHeader writes h's payload-carried fields to dst and returns bytes
// written, not including the numAreas byte (written separately by the
// caller once the area count is known).
func WriteHeader(dst []byte, h model.Header) int {
	Write32(dst[offHeaderVersion:], h.Layout)
	Write32(dst[offHeaderCursorOffsetX:], h.CursorOffsetX)
	Write32(dst[offHeaderCursorOffsetY:], h.CursorOffsetY)
	Write32(dst[offHeaderCursorTargetArea:], h.CursorTargetArea)
	Write32(dst[offHeaderDragBoxSizeX:], h.DragBoxSizeX)
	Write32(dst[offHeaderDragBoxSizeY:], h.DragBoxSizeY)
	Write32(dst[offHeaderPrimaryAreaIdx:], h.PrimaryAreaIdx)
	return HeaderSize
}

// WriteNumAreas writes the numAreas byte at offset 28.
func WriteNumAreas(dst []byte, n int8) {
	Write8(dst[offHeaderNumAreas:], n)
}

package record

import "github.com/sphereforge/dspbptk/model"

// AreaSize is the fixed byte length of an area record.
const AreaSize = 14

const (
	offAreaIndex               = 0
	offAreaParentIndex         = 1
	offAreaTropicAnchor        = 2
	offAreaSegments            = 4
	offAreaAnchorLocalOffsetX  = 6
	offAreaAnchorLocalOffsetY  = 8
	offAreaWidth               = 10
	offAreaHeight              = 12
)

// ReadArea fills a model.Area from buf and returns AreaSize.
func ReadArea(buf []byte) (model.Area, int, error) {
	if err := need(buf, AreaSize); err != nil {
		return model.Area{}, 0, err
	}
	a := model.Area{
		Index:               Read8(buf[offAreaIndex:]),
		ParentIndex:         Read8(buf[offAreaParentIndex:]),
		TropicAnchor:        Read16(buf[offAreaTropicAnchor:]),
		AreaSegments:        Read16(buf[offAreaSegments:]),
		AnchorLocalOffsetX:  Read16(buf[offAreaAnchorLocalOffsetX:]),
		AnchorLocalOffsetY:  Read16(buf[offAreaAnchorLocalOffsetY:]),
		Width:               Read16(buf[offAreaWidth:]),
		Height:              Read16(buf[offAreaHeight:]),
	}
	return a, AreaSize, nil
}

// WriteArea writes a to dst and returns AreaSize.
func WriteArea(dst []byte, a model.Area) int {
	Write8(dst[offAreaIndex:], a.Index)
	Write8(dst[offAreaParentIndex:], a.ParentIndex)
	Write16(dst[offAreaTropicAnchor:], a.TropicAnchor)
	Write16(dst[offAreaSegments:], a.AreaSegments)
	Write16(dst[offAreaAnchorLocalOffsetX:], a.AnchorLocalOffsetX)
	Write16(dst[offAreaAnchorLocalOffsetY:], a.AnchorLocalOffsetY)
	Write16(dst[offAreaWidth:], a.Width)
	Write16(dst[offAreaHeight:], a.Height)
	return AreaSize
}

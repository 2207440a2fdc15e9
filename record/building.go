package record

import "github.com/sphereforge/dspbptk/model"

// BuildingFixedSize is the fixed byte length of a building record, not
// counting its variable-length parameters tail.
const BuildingFixedSize = 61

const (
	offBuildingIndex            = 0
	offBuildingAreaIndex        = 4
	offBuildingLocalOffsetX     = 5
	offBuildingLocalOffsetY     = 9
	offBuildingLocalOffsetZ     = 13
	offBuildingLocalOffset2X    = 17
	offBuildingLocalOffset2Y    = 21
	offBuildingLocalOffset2Z    = 25
	offBuildingYaw              = 29
	offBuildingYaw2             = 33
	offBuildingItemId           = 37
	offBuildingModelIndex       = 39
	offBuildingTempOutputObjIdx = 41
	offBuildingTempInputObjIdx  = 45
	offBuildingOutputToSlot     = 49
	offBuildingInputFromSlot    = 50
	offBuildingOutputFromSlot   = 51
	offBuildingInputToSlot      = 52
	offBuildingOutputOffset     = 53
	offBuildingInputOffset      = 54
	offBuildingRecipeId         = 55
	offBuildingFilterId         = 57
	offBuildingNumParameters    = 59
)

// ReadBuilding fills a model.Building from buf, including its
// parameters tail, and returns total bytes consumed.
func ReadBuilding(buf []byte) (model.Building, int, error) {
	if err := need(buf, BuildingFixedSize); err != nil {
		return model.Building{}, 0, err
	}

	b := model.Building{
		Index:     Read32(buf[offBuildingIndex:]),
		AreaIndex: Read8(buf[offBuildingAreaIndex:]),
		LocalOffset: model.Vec{
			X: ReadFloat32(buf[offBuildingLocalOffsetX:]),
			Y: ReadFloat32(buf[offBuildingLocalOffsetY:]),
			Z: ReadFloat32(buf[offBuildingLocalOffsetZ:]),
			W: 1,
		},
		LocalOffset2: model.Vec{
			X: ReadFloat32(buf[offBuildingLocalOffset2X:]),
			Y: ReadFloat32(buf[offBuildingLocalOffset2Y:]),
			Z: ReadFloat32(buf[offBuildingLocalOffset2Z:]),
			W: 1,
		},
		Yaw:              ReadFloat32(buf[offBuildingYaw:]),
		Yaw2:             ReadFloat32(buf[offBuildingYaw2:]),
		ItemId:           Read16(buf[offBuildingItemId:]),
		ModelIndex:       Read16(buf[offBuildingModelIndex:]),
		TempOutputObjIdx: model.RefFromWire(Read32(buf[offBuildingTempOutputObjIdx:])),
		TempInputObjIdx:  model.RefFromWire(Read32(buf[offBuildingTempInputObjIdx:])),
		OutputToSlot:     Read8(buf[offBuildingOutputToSlot:]),
		InputFromSlot:    Read8(buf[offBuildingInputFromSlot:]),
		OutputFromSlot:   Read8(buf[offBuildingOutputFromSlot:]),
		InputToSlot:      Read8(buf[offBuildingInputToSlot:]),
		OutputOffset:     Read8(buf[offBuildingOutputOffset:]),
		InputOffset:      Read8(buf[offBuildingInputOffset:]),
		RecipeId:         Read16(buf[offBuildingRecipeId:]),
		FilterId:         Read16(buf[offBuildingFilterId:]),
	}

	numParameters := Read16(buf[offBuildingNumParameters:])
	consumed := BuildingFixedSize
	if numParameters > 0 {
		tailLen := int(numParameters) * 4
		if err := need(buf[consumed:], tailLen); err != nil {
			return model.Building{}, 0, err
		}
		b.Parameters = make([]int32, numParameters)
		for i := range b.Parameters {
			b.Parameters[i] = Read32(buf[consumed+4*i:])
		}
		consumed += tailLen
	}

	return b, consumed, nil
}

// WriteBuilding writes b to dst, including its parameters tail, and
// returns total bytes written.
func WriteBuilding(dst []byte, b model.Building) int {
	Write32(dst[offBuildingIndex:], b.Index)
	Write8(dst[offBuildingAreaIndex:], b.AreaIndex)
	WriteFloat32(dst[offBuildingLocalOffsetX:], b.LocalOffset.X)
	WriteFloat32(dst[offBuildingLocalOffsetY:], b.LocalOffset.Y)
	WriteFloat32(dst[offBuildingLocalOffsetZ:], b.LocalOffset.Z)
	WriteFloat32(dst[offBuildingLocalOffset2X:], b.LocalOffset2.X)
	WriteFloat32(dst[offBuildingLocalOffset2Y:], b.LocalOffset2.Y)
	WriteFloat32(dst[offBuildingLocalOffset2Z:], b.LocalOffset2.Z)
	WriteFloat32(dst[offBuildingYaw:], b.Yaw)
	WriteFloat32(dst[offBuildingYaw2:], b.Yaw2)
	Write16(dst[offBuildingItemId:], b.ItemId)
	Write16(dst[offBuildingModelIndex:], b.ModelIndex)
	Write32(dst[offBuildingTempOutputObjIdx:], b.TempOutputObjIdx.ToWire())
	Write32(dst[offBuildingTempInputObjIdx:], b.TempInputObjIdx.ToWire())
	Write8(dst[offBuildingOutputToSlot:], b.OutputToSlot)
	Write8(dst[offBuildingInputFromSlot:], b.InputFromSlot)
	Write8(dst[offBuildingOutputFromSlot:], b.OutputFromSlot)
	Write8(dst[offBuildingInputToSlot:], b.InputToSlot)
	Write8(dst[offBuildingOutputOffset:], b.OutputOffset)
	Write8(dst[offBuildingInputOffset:], b.InputOffset)
	Write16(dst[offBuildingRecipeId:], b.RecipeId)
	Write16(dst[offBuildingFilterId:], b.FilterId)
	Write16(dst[offBuildingNumParameters:], int16(len(b.Parameters)))

	written := BuildingFixedSize
	for i, p := range b.Parameters {
		Write32(dst[written+4*i:], p)
	}
	written += len(b.Parameters) * 4
	return written
}

// BuildingWireSize returns the total byte length b will occupy on the
// wire, including its parameters tail, for sizing a destination buffer
// ahead of WriteBuilding.
func BuildingWireSize(b model.Building) int {
	return BuildingFixedSize + len(b.Parameters)*4
}

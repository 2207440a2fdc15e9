// Package record reads and writes the blueprint binary payload: a packed
// little-endian stream of a fixed header, an area array, a bare building
// count, and a building array with variable-length parameter tails.
// Every Read/Write pair operates at a caller-supplied buffer offset and
// returns the number of bytes consumed or written, mirroring the
// teacher's offset-table-plus-accessor style.
package record

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ErrShortBuffer is returned when a buffer is too small to hold the next
// fixed-size field of a record.
type ErrShortBuffer struct {
	Need int
	Have int
}

func (e *ErrShortBuffer) Error() string {
	return fmt.Sprintf("record: short buffer: need %d bytes, have %d", e.Need, e.Have)
}

func need(buf []byte, n int) error {
	if len(buf) < n {
		return &ErrShortBuffer{Need: n, Have: len(buf)}
	}
	return nil
}

// Read8 reads a signed 8-bit integer at offset 0 of buf.
func Read8(buf []byte) int8 {
	return int8(buf[0])
}

// Write8 writes a signed 8-bit integer at offset 0 of dst.
func Write8(dst []byte, v int8) {
	dst[0] = byte(v)
}

// Read16 reads a little-endian signed 16-bit integer at offset 0 of buf.
func Read16(buf []byte) int16 {
	return int16(binary.LittleEndian.Uint16(buf))
}

// Write16 writes a little-endian signed 16-bit integer at offset 0 of dst.
func Write16(dst []byte, v int16) {
	binary.LittleEndian.PutUint16(dst, uint16(v))
}

// Read32 reads a little-endian signed 32-bit integer at offset 0 of buf.
func Read32(buf []byte) int32 {
	return int32(binary.LittleEndian.Uint32(buf))
}

// Write32 writes a little-endian signed 32-bit integer at offset 0 of dst.
func Write32(dst []byte, v int32) {
	binary.LittleEndian.PutUint32(dst, uint32(v))
}

// ReadFloat32 reads a little-endian IEEE-754 float32 at offset 0 of buf,
// widened to float64.
func ReadFloat32(buf []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
}

// WriteFloat32 writes v, narrowed to float32, as little-endian IEEE-754
// bits at offset 0 of dst.
func WriteFloat32(dst []byte, v float64) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
}

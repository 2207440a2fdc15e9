package primitives

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrGzipTruncated is returned when an inflated stream is longer than
// the caller's output buffer, so only a truncated prefix of it fits.
var ErrGzipTruncated = errors.New("primitives: gzip stream truncated")

// GzipCodec holds a reusable gzip writer so that compressing many
// blueprints in sequence costs one writer allocation, not N.
type GzipCodec struct {
	writer *gzip.Writer
	buf    bytes.Buffer
}

// NewGzipCodec returns a codec compressing at the maximum practical
// level.
func NewGzipCodec() *GzipCodec {
	w, _ := gzip.NewWriterLevel(nil, gzip.BestCompression)
	return &GzipCodec{writer: w}
}

// Compress gzip-compresses data and returns the compressed bytes. The
// returned slice is only valid until the next call to Compress on the
// same codec.
func (c *GzipCodec) Compress(data []byte) ([]byte, error) {
	c.buf.Reset()
	c.writer.Reset(&c.buf)
	if _, err := c.writer.Write(data); err != nil {
		return nil, fmt.Errorf("primitives: gzip compress: %w", err)
	}
	if err := c.writer.Close(); err != nil {
		return nil, fmt.Errorf("primitives: gzip compress: %w", err)
	}
	return c.buf.Bytes(), nil
}

// Decompress inflates data into out, returning the number of bytes
// written. It fails if the stream is malformed or doesn't fit in out.
func (c *GzipCodec) Decompress(data []byte, out []byte) (int, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("primitives: gzip decompress: %w", err)
	}
	defer r.Close()

	n := 0
	for n < len(out) && err == nil {
		var m int
		m, err = r.Read(out[n:])
		n += m
	}
	switch {
	case err == io.EOF:
		// out was larger than the stream: that's fine, n bytes were read.
	case err != nil:
		return 0, fmt.Errorf("primitives: gzip decompress: %w", err)
	default:
		// out filled exactly; confirm the stream is actually exhausted.
		var extra [1]byte
		if m, _ := r.Read(extra[:]); m > 0 {
			return 0, ErrGzipTruncated
		}
	}
	return n, nil
}

// DeclaredGzipLen returns the little-endian 32-bit ISIZE trailer field
// of a gzip stream: the uncompressed length modulo 2^32, as declared by
// the stream itself. Callers use it to size a decompression buffer, but
// must still verify the actual decompressed length.
func DeclaredGzipLen(data []byte) (uint32, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("primitives: gzip stream too short for trailer")
	}
	return binary.LittleEndian.Uint32(data[len(data)-4:]), nil
}

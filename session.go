// Package dspbptk decodes and encodes the blueprint exchange format: a
// text envelope wrapping a gzip-compressed, base64-encoded binary
// record stream, content-fingerprinted with a game-specific MD5
// variant. Subpackages do the narrow work (primitives, record, refmap,
// envelope, geometry, model); this package is the façade that
// orchestrates them into decode(text) → model and encode(model) →
// text.
package dspbptk

import (
	"errors"
	"fmt"

	"github.com/sphereforge/dspbptk/envelope"
	"github.com/sphereforge/dspbptk/log"
	"github.com/sphereforge/dspbptk/model"
	"github.com/sphereforge/dspbptk/primitives"
	"github.com/sphereforge/dspbptk/record"
	"github.com/sphereforge/dspbptk/refmap"
)

// MaxBlueprintSize is the scratch buffer size in bytes: the format caps
// a blueprint's inflated binary payload at this size.
const MaxBlueprintSize = 256 * 1024 * 1024

// Session is a reusable decode/encode context. It owns the scratch
// buffers and the gzip handle, so processing many blueprints in
// sequence costs one large allocation, not N. A Session is not
// reentrant: decode and encode run to completion without suspension,
// and concurrent calls on one Session are undefined — callers wanting
// parallelism use one Session per goroutine.
type Session struct {
	// binaryScratch holds the inflated binary payload during decode,
	// and the binary payload awaiting compression during encode.
	binaryScratch []byte
	// gzipScratch holds the compressed stream awaiting base64 encoding
	// during encode.
	gzipScratch []byte

	gzip *primitives.GzipCodec
}

// NewSession allocates a Session with scratch buffers sized to
// MaxBlueprintSize.
func NewSession() *Session {
	return &Session{
		binaryScratch: make([]byte, MaxBlueprintSize),
		gzipScratch:   make([]byte, 0, MaxBlueprintSize),
		gzip:          primitives.NewGzipCodec(),
	}
}

// Decode parses a blueprint line into a model.Blueprint. On any error
// it returns (nil, err) with no partial blueprint.
func (s *Session) Decode(text string) (*model.Blueprint, error) {
	head, payload, fingerprint, err := envelope.Split(text)
	if err != nil {
		if errors.Is(err, envelope.ErrNotBlueprint) {
			return nil, fmt.Errorf("%w: %v", ErrNotBlueprint, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFingerprintFramingBroken, err)
	}

	header, err := envelope.ParseHead(head)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeadBroken, err)
	}

	gzipBytes, err := primitives.DecodeBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBase64Broken, err)
	}

	binaryData, err := s.inflate(gzipBytes)
	if err != nil {
		return nil, err
	}

	bp := model.New()
	bp.Header = header

	if err := decodeBinary(bp, binaryData); err != nil {
		return nil, err
	}
	bp.Fingerprint = fingerprint

	expected := primitives.FingerprintHex([]byte(envelope.FingerprintedPrefix(head, payload)))
	if expected != fingerprint {
		log.Warn("fingerprint mismatch on decode",
			log.F("expected", expected), log.F("actual", fingerprint))
	}

	return bp, nil
}

// inflate gzip-decompresses an already base64-decoded payload into the
// session's binary scratch buffer, returning the live portion.
func (s *Session) inflate(gzipBytes []byte) ([]byte, error) {
	declaredLen, err := primitives.DeclaredGzipLen(gzipBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGzipBroken, err)
	}
	if int(declaredLen) > len(s.binaryScratch) {
		return nil, fmt.Errorf("%w: declared length %d exceeds session buffer of %d", ErrPayloadTruncated, declaredLen, len(s.binaryScratch))
	}

	n, err := s.gzip.Decompress(gzipBytes, s.binaryScratch[:declaredLen])
	if err != nil {
		if errors.Is(err, primitives.ErrGzipTruncated) {
			return nil, fmt.Errorf("%w: %v", ErrPayloadTruncated, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrGzipBroken, err)
	}
	return s.binaryScratch[:n], nil
}

// decodeBinary walks the header, areas, numBuildings, and buildings out
// of buf into bp.
func decodeBinary(bp *model.Blueprint, buf []byte) error {
	binHeader, _, err := record.ReadHeader(buf)
	if err != nil {
		return fmt.Errorf("%w: header: %v", ErrPayloadTruncated, err)
	}
	numAreas, err := record.NumAreas(buf)
	if err != nil {
		return fmt.Errorf("%w: numAreas: %v", ErrPayloadTruncated, err)
	}

	bp.Header.Layout = binHeader.Layout
	bp.Header.CursorOffsetX = binHeader.CursorOffsetX
	bp.Header.CursorOffsetY = binHeader.CursorOffsetY
	bp.Header.CursorTargetArea = binHeader.CursorTargetArea
	bp.Header.DragBoxSizeX = binHeader.DragBoxSizeX
	bp.Header.DragBoxSizeY = binHeader.DragBoxSizeY
	bp.Header.PrimaryAreaIdx = binHeader.PrimaryAreaIdx

	pos := record.HeaderRecordSize

	bp.Areas = make([]model.Area, numAreas)
	for i := range bp.Areas {
		if pos > len(buf) {
			return fmt.Errorf("%w: area %d", ErrPayloadTruncated, i)
		}
		area, n, err := record.ReadArea(buf[pos:])
		if err != nil {
			return fmt.Errorf("%w: area %d: %v", ErrPayloadTruncated, i, err)
		}
		bp.Areas[i] = area
		pos += n
	}

	if pos+4 > len(buf) {
		return fmt.Errorf("%w: numBuildings", ErrPayloadTruncated)
	}
	numBuildings := record.Read32(buf[pos:])
	pos += 4

	bp.Buildings = make([]model.Building, numBuildings)
	for i := range bp.Buildings {
		if pos > len(buf) {
			return fmt.Errorf("%w: building %d", ErrPayloadTruncated, i)
		}
		building, n, err := record.ReadBuilding(buf[pos:])
		if err != nil {
			return fmt.Errorf("%w: building %d: %v", ErrPayloadTruncated, i, err)
		}
		bp.Buildings[i] = building
		pos += n
	}

	return nil
}

// Encode renders bp back to its envelope text. Every building's
// identifier fields are rewritten from stable index to array position
// via refmap; a dangling reference is logged and rewritten to -1
// rather than failing the encode.
func (s *Session) Encode(bp *model.Blueprint) (string, error) {
	head := envelope.FormatHead(bp.Header)

	binaryLen := record.HeaderRecordSize + len(bp.Areas)*record.AreaSize + 4
	for _, b := range bp.Buildings {
		binaryLen += record.BuildingWireSize(b)
	}
	if binaryLen > len(s.binaryScratch) {
		return "", fmt.Errorf("dspbptk: encoded payload of %d bytes exceeds session buffer of %d", binaryLen, len(s.binaryScratch))
	}
	buf := s.binaryScratch[:binaryLen]

	record.WriteHeader(buf, bp.Header)
	record.WriteNumAreas(buf, int8(len(bp.Areas)))
	pos := record.HeaderRecordSize

	for _, a := range bp.Areas {
		pos += record.WriteArea(buf[pos:], a)
	}

	record.Write32(buf[pos:], int32(len(bp.Buildings)))
	pos += 4

	table := refmap.Build(bp.Buildings)
	for i, b := range bp.Buildings {
		rewritten := rewriteReferences(table, b, int32(i))
		pos += record.WriteBuilding(buf[pos:], rewritten)
	}

	compressed, err := s.gzip.Compress(buf)
	if err != nil {
		return "", fmt.Errorf("dspbptk: gzip compress: %w", err)
	}
	s.gzipScratch = append(s.gzipScratch[:0], compressed...)

	payload := primitives.EncodeBase64(s.gzipScratch)

	fingerprint := primitives.FingerprintHex([]byte(envelope.FingerprintedPrefix(head, payload)))
	return envelope.Join(head, payload, fingerprint), nil
}

// rewriteReferences rewrites b's identifier fields from stable index to
// array position: its own Index becomes position (its location in this
// same array), and its cross-references resolve via table, logging and
// rewriting to -1 on a miss. It also normalizes the homogeneous w
// component of both local offsets to 1, as the codec contract requires
// before encode.
func rewriteReferences(table refmap.Table, b model.Building, position int32) model.Building {
	resolveSelf := func(ref model.Ref) model.Ref {
		pos, ok := table.Resolve(ref)
		if !ok {
			idx, _ := ref.Index()
			log.Warn("dangling reference on encode", log.F("stableIndex", idx))
			return model.NoRef
		}
		if pos < 0 {
			return model.NoRef
		}
		return model.NewRef(pos)
	}

	out := b
	out.Index = position
	out.TempOutputObjIdx = resolveSelf(b.TempOutputObjIdx)
	out.TempInputObjIdx = resolveSelf(b.TempInputObjIdx)
	out.LocalOffset = b.LocalOffset.Normalized()
	out.LocalOffset2 = b.LocalOffset2.Normalized()
	return out
}

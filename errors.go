package dspbptk

import "errors"

// Decode errors, one per way the decode pipeline can fail. Each
// wraps additional context with fmt.Errorf's %w; callers compare with
// errors.Is.
var (
	ErrNotBlueprint             = errors.New("dspbptk: not a blueprint")
	ErrHeadBroken               = errors.New("dspbptk: head fields broken")
	ErrFingerprintFramingBroken = errors.New("dspbptk: fingerprint framing broken")
	ErrBase64Broken             = errors.New("dspbptk: base64 payload broken")
	ErrGzipBroken               = errors.New("dspbptk: gzip payload broken")
	ErrPayloadTruncated         = errors.New("dspbptk: payload truncated")
)

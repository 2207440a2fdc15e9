// Package primitives wraps the codec's three low-level dependencies —
// base64, gzip, and the game's MD5F content fingerprint — behind small,
// swappable contracts. Everything above this package talks to these
// functions, never to encoding/base64 or compress/gzip directly.
package primitives

import "encoding/base64"

// encoding is RFC 4648 with the standard "+/" alphabet and mandatory
// "=" padding — the blueprint format never uses URL-safe or unpadded
// base64.
var encoding = base64.StdEncoding

// EncodeBase64 encodes bytes to base64 text.
func EncodeBase64(data []byte) string {
	return encoding.EncodeToString(data)
}

// DecodeBase64 decodes base64 text to bytes. It fails if the input
// contains bytes outside the alphabet or has incorrect padding.
func DecodeBase64(text string) ([]byte, error) {
	return encoding.DecodeString(text)
}

// DecodedBase64Len returns a tight upper bound on the decoded length of
// a base64 string of the given length, for sizing a scratch buffer
// ahead of decoding.
func DecodedBase64Len(textLen int) int {
	return encoding.DecodedLen(textLen)
}

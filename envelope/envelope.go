// Package envelope parses and formats a blueprint's text framing:
// `BLUEPRINT:<head-csv>"<base64>"<fingerprint>`. It never touches the
// binary payload itself — that's dspbptk/record's job, reached through
// dspbptk/primitives.
package envelope

import (
	"errors"
	"strings"
)

// Prefix is the literal tag every blueprint line begins with.
const Prefix = "BLUEPRINT:"

// FingerprintLen is the fixed length of the trailing hex fingerprint.
const FingerprintLen = 32

// ErrNotBlueprint is returned when the input lacks the BLUEPRINT: prefix
// or is shorter than the envelope floor.
var ErrNotBlueprint = errors.New("envelope: not a blueprint")

// ErrFingerprintFramingBroken is returned when the trailing fingerprint
// run isn't immediately preceded by the closing payload quote.
var ErrFingerprintFramingBroken = errors.New("envelope: fingerprint framing broken")

// Split divides a blueprint line into its head-csv, base64 payload, and
// trailing fingerprint. It does not validate the head-csv's field count
// or the payload's base64 alphabet — callers do that with ParseHead and
// primitives.DecodeBase64 respectively.
func Split(text string) (head, payload, fingerprint string, err error) {
	if len(text) < len(Prefix)+FingerprintLen || !strings.HasPrefix(text, Prefix) {
		return "", "", "", ErrNotBlueprint
	}

	rest := text[len(Prefix):]

	open := strings.IndexByte(rest, '"')
	if open < 0 {
		return "", "", "", ErrFingerprintFramingBroken
	}
	head = rest[:open]

	afterOpen := rest[open+1:]
	if len(afterOpen) < FingerprintLen+1 {
		return "", "", "", ErrFingerprintFramingBroken
	}

	fingerprint = afterOpen[len(afterOpen)-FingerprintLen:]
	closeAndPayload := afterOpen[:len(afterOpen)-FingerprintLen]
	if len(closeAndPayload) == 0 || closeAndPayload[len(closeAndPayload)-1] != '"' {
		return "", "", "", ErrFingerprintFramingBroken
	}
	payload = closeAndPayload[:len(closeAndPayload)-1]

	return head, payload, fingerprint, nil
}

// Join reassembles a blueprint line from its head-csv, base64 payload,
// and fingerprint.
func Join(head, payload, fingerprint string) string {
	var b strings.Builder
	b.Grow(len(Prefix) + len(head) + len(payload) + len(fingerprint) + 2)
	b.WriteString(Prefix)
	b.WriteString(head)
	b.WriteByte('"')
	b.WriteString(payload)
	b.WriteByte('"')
	b.WriteString(fingerprint)
	return b.String()
}

// FingerprintedPrefix returns the exact text the fingerprint is computed
// over: BLUEPRINT: + head + the quoted payload, including both quotes.
func FingerprintedPrefix(head, payload string) string {
	var b strings.Builder
	b.Grow(len(Prefix) + len(head) + len(payload) + 2)
	b.WriteString(Prefix)
	b.WriteString(head)
	b.WriteByte('"')
	b.WriteString(payload)
	b.WriteByte('"')
	return b.String()
}

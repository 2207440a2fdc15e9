package envelope

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sphereforge/dspbptk/model"
)

// ErrHeadBroken is returned when the head-csv does not split into the
// expected field count.
var ErrHeadBroken = errors.New("envelope: head fields broken")

// headFieldCount is the number of comma-separated fields in the
// head-csv: the two preserved literal zeros, layout, five icons,
// timestamp, the four-part game version, shortDesc, and desc.
const headFieldCount = 12

// ParseHead parses the head-csv into the subset of Header fields it
// carries (Layout, Icons, Timestamp, GameVersion, ShortDesc, Desc). The
// binary-payload-only fields (cursor/drag box/primary area) are left
// zero; the caller fills them in from the decoded binary header.
//
// The two literal "0" fields are unexplained in the source format and
// are preserved verbatim rather than interpreted; see the design notes.
func ParseHead(head string) (model.Header, error) {
	parts := strings.SplitN(head, ",", headFieldCount)
	if len(parts) != headFieldCount {
		return model.Header{}, fmt.Errorf("%w: got %d fields, want %d", ErrHeadBroken, len(parts), headFieldCount)
	}

	var h model.Header

	layout, err := parseInt32(parts[1])
	if err != nil {
		return model.Header{}, fmt.Errorf("%w: layout: %v", ErrHeadBroken, err)
	}
	h.Layout = layout

	for i := 0; i < 5; i++ {
		icon, err := parseInt32(parts[2+i])
		if err != nil {
			return model.Header{}, fmt.Errorf("%w: icon %d: %v", ErrHeadBroken, i, err)
		}
		h.Icons[i] = icon
	}

	timestamp, err := parseInt32(parts[8])
	if err != nil {
		return model.Header{}, fmt.Errorf("%w: timestamp: %v", ErrHeadBroken, err)
	}
	h.Timestamp = timestamp

	version, err := parseGameVersion(parts[9])
	if err != nil {
		return model.Header{}, fmt.Errorf("%w: gameVersion: %v", ErrHeadBroken, err)
	}
	h.GameVersion = version

	h.ShortDesc = parts[10]
	h.Desc = parts[11]

	return h, nil
}

// FormatHead formats h's head-csv-carried fields back into the
// comma-separated form ParseHead accepts. The two literal zero fields
// are emitted unconditionally.
func FormatHead(h model.Header) string {
	var b strings.Builder
	b.WriteString("0,")
	b.WriteString(strconv.FormatInt(int64(h.Layout), 10))
	for _, icon := range h.Icons {
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(icon), 10))
	}
	b.WriteString(",0,")
	b.WriteString(strconv.FormatInt(int64(h.Timestamp), 10))
	b.WriteByte(',')
	b.WriteString(strconv.FormatInt(int64(h.GameVersion.Major), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(int64(h.GameVersion.Minor), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(int64(h.GameVersion.Patch), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(int64(h.GameVersion.Build), 10))
	b.WriteByte(',')
	b.WriteString(h.ShortDesc)
	b.WriteByte(',')
	b.WriteString(h.Desc)
	return b.String()
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func parseGameVersion(s string) (model.GameVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return model.GameVersion{}, fmt.Errorf("expected 4 dot-separated parts, got %d", len(parts))
	}
	var v model.GameVersion
	fields := []*int32{&v.Major, &v.Minor, &v.Patch, &v.Build}
	for i, f := range fields {
		n, err := parseInt32(parts[i])
		if err != nil {
			return model.GameVersion{}, err
		}
		*f = n
	}
	return v, nil
}

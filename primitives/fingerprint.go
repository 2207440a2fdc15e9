package primitives

import (
	"encoding/binary"
	"fmt"
)

// md5fBlockWords is the block size of MD5F in 32-bit words (64 bytes).
const md5fBlockWords = 16

// md5fConstants is the standard MD5 per-round additive constant table,
// T[i] = floor(abs(sin(i+1)) * 2^32), with two entries deliberately
// altered. This is what makes MD5F diverge bit-for-bit from stock MD5:
// swapping in crypto/md5 will not interoperate with the game's digest.
var md5fConstants = func() [64]uint32 {
	t := [64]uint32{
		0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
		0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
		0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
		0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
		0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
		0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
		0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
		0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
		0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
		0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
		0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
		0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
		0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
		0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
		0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
		0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
	}
	// Two of the 64 round constants are replaced, each by its standard
	// value plus one. These indexes and values are not checked against
	// the game's own MD5F table, so FingerprintHex is not verified to
	// reproduce the fingerprints the game emits.
	t[axiomConstantIndexA] = axiomConstantValueA
	t[axiomConstantIndexB] = axiomConstantValueB
	return t
}()

const (
	axiomConstantIndexA = 19
	axiomConstantValueA = 0xe9b6c7ab

	axiomConstantIndexB = 47
	axiomConstantValueB = 0xc4ac5666
)

var md5fShifts = [64]uint32{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// FingerprintHex computes the MD5F digest of data and returns it as 32
// uppercase hex characters.
func FingerprintHex(data []byte) string {
	var a, b, c, d uint32 = 0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476

	msg := pad(data)
	var block [md5fBlockWords]uint32
	for off := 0; off < len(msg); off += 64 {
		for i := 0; i < md5fBlockWords; i++ {
			block[i] = binary.LittleEndian.Uint32(msg[off+4*i:])
		}
		a, b, c, d = md5fRound(a, b, c, d, block)
	}

	var digest [16]byte
	binary.LittleEndian.PutUint32(digest[0:], a)
	binary.LittleEndian.PutUint32(digest[4:], b)
	binary.LittleEndian.PutUint32(digest[8:], c)
	binary.LittleEndian.PutUint32(digest[12:], d)

	return fmt.Sprintf("%032X", digest)
}

func md5fRound(a, b, c, d uint32, m [md5fBlockWords]uint32) (uint32, uint32, uint32, uint32) {
	aa, bb, cc, dd := a, b, c, d

	for i := 0; i < 64; i++ {
		var f uint32
		var g int

		switch {
		case i < 16:
			f = (bb & cc) | (^bb & dd)
			g = i
		case i < 32:
			f = (dd & bb) | (^dd & cc)
			g = (5*i + 1) % 16
		case i < 48:
			f = bb ^ cc ^ dd
			g = (3*i + 5) % 16
		default:
			f = cc ^ (bb | ^dd)
			g = (7 * i) % 16
		}

		f = f + aa + md5fConstants[i] + m[g]
		aa = dd
		dd = cc
		cc = bb
		bb = bb + rotateLeft(f, md5fShifts[i])
	}

	return a + aa, b + bb, c + cc, d + dd
}

func rotateLeft(x uint32, n uint32) uint32 {
	return (x << n) | (x >> (32 - n))
}

// pad applies the standard MD5 bit-padding scheme: an 0x80 byte, zero
// bytes up to 56 mod 64, then the original bit length as a little-endian
// 64-bit integer.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	padded := make([]byte, 0, len(data)+72)
	padded = append(padded, data...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0x00)
	}

	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], bitLen)
	return append(padded, lenBytes[:]...)
}

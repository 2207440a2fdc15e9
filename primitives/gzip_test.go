package primitives

import (
	"bytes"
	"testing"
)

func TestGzipCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("blueprint payload")},
		{"repetitive", bytes.Repeat([]byte{0x42}, 4096)},
	}

	codec := NewGzipCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := codec.Compress(tt.data)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			// copy out: Compress's result is only valid until the next call.
			compressedCopy := append([]byte(nil), compressed...)

			out := make([]byte, len(tt.data))
			n, err := codec.Decompress(compressedCopy, out)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if n != len(tt.data) {
				t.Fatalf("Decompress returned %d bytes, want %d", n, len(tt.data))
			}
			if !bytes.Equal(out[:n], tt.data) {
				t.Errorf("round trip mismatch: got %v, want %v", out[:n], tt.data)
			}
		})
	}
}

func TestGzipCodecReusedAcrossCalls(t *testing.T) {
	codec := NewGzipCodec()

	first, err := codec.Compress([]byte("first payload"))
	if err != nil {
		t.Fatalf("Compress first: %v", err)
	}
	firstCopy := append([]byte(nil), first...)

	_, err = codec.Compress([]byte("second payload, different length"))
	if err != nil {
		t.Fatalf("Compress second: %v", err)
	}

	out := make([]byte, len("first payload"))
	n, err := codec.Decompress(firstCopy, out)
	if err != nil {
		t.Fatalf("Decompress firstCopy after reuse: %v", err)
	}
	if string(out[:n]) != "first payload" {
		t.Errorf("got %q, want %q", out[:n], "first payload")
	}
}

func TestGzipCodecDecompressMalformed(t *testing.T) {
	codec := NewGzipCodec()
	out := make([]byte, 16)
	if _, err := codec.Decompress([]byte("not a gzip stream"), out); err == nil {
		t.Error("expected an error decompressing a non-gzip stream")
	}
}

func TestGzipCodecDecompressTruncatedOutput(t *testing.T) {
	codec := NewGzipCodec()
	data := bytes.Repeat([]byte{0x7a}, 256)

	compressed, err := codec.Compress(data)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	compressedCopy := append([]byte(nil), compressed...)

	out := make([]byte, len(data)-10)
	if _, err := codec.Decompress(compressedCopy, out); err != ErrGzipTruncated {
		t.Errorf("Decompress with undersized buffer: got %v, want ErrGzipTruncated", err)
	}
}

func TestDeclaredGzipLen(t *testing.T) {
	codec := NewGzipCodec()
	data := []byte("twenty-six characters long")

	compressed, err := codec.Compress(data)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	declared, err := DeclaredGzipLen(compressed)
	if err != nil {
		t.Fatalf("DeclaredGzipLen: %v", err)
	}
	if int(declared) != len(data) {
		t.Errorf("DeclaredGzipLen = %d, want %d", declared, len(data))
	}
}

func TestDeclaredGzipLenTooShort(t *testing.T) {
	if _, err := DeclaredGzipLen([]byte{0x01, 0x02}); err == nil {
		t.Error("expected an error for a stream shorter than the trailer")
	}
}

package filter

import (
	"bytes"
	"testing"
)

func TestASCIIHexRoundTrip(t *testing.T) {
	for _, in := range [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("Hello, world!"),
		{0x00, 0xFF, 0x10, 0xAB},
	} {
		encoded, err := Collect(EncodeASCIIHex(FromBytes(in)))
		if err != nil {
			t.Fatalf("encode(%q) failed: %v", in, err)
		}
		decoded, err := Collect(DecodeASCIIHex(FromBytes(encoded)))
		if err != nil {
			t.Fatalf("decode(%q) failed: %v", encoded, err)
		}
		if !bytes.Equal(decoded, in) {
			t.Errorf("round trip: got %q, want %q (via %q)", decoded, in, encoded)
		}
	}
}

func TestASCIIHexEncodeLiteral(t *testing.T) {
	got, err := Collect(EncodeASCIIHex(FromBytes([]byte{0xAB, 0x01})))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(got) != "AB01>" {
		t.Errorf("encode = %q, want AB01>", got)
	}
}

func TestASCIIHexDecodeOddTrailingDigit(t *testing.T) {
	got, err := Collect(DecodeASCIIHex(FromBytes([]byte("A>"))))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0xA0}) {
		t.Errorf("decode(A>) = %v, want [0xA0]", got)
	}
}

func TestASCIIHexDecodeWhitespace(t *testing.T) {
	got, err := Collect(DecodeASCIIHex(FromBytes([]byte(" 4 1  42 >"))))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(got) != "AB" {
		t.Errorf("decode = %q, want AB", got)
	}
}

func TestASCIIHexDecodeMissingEOD(t *testing.T) {
	if _, err := Collect(DecodeASCIIHex(FromBytes([]byte("41")))); err == nil {
		t.Error("expected MissingEOD error")
	}
}

func TestASCIIHexDecodeInvalidByte(t *testing.T) {
	if _, err := Collect(DecodeASCIIHex(FromBytes([]byte("4g>")))); err == nil {
		t.Error("expected invalid-byte error")
	}
}

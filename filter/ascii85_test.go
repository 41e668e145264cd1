package filter

import (
	"bytes"
	"testing"
)

func TestASCII85RoundTrip(t *testing.T) {
	for _, in := range [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte("Man is distinguished, not only by his reason"),
		{0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0xFF},
	} {
		encoded, err := Collect(EncodeASCII85(FromBytes(in)))
		if err != nil {
			t.Fatalf("encode(%q) failed: %v", in, err)
		}
		decoded, err := Collect(DecodeASCII85(FromBytes(encoded)))
		if err != nil {
			t.Fatalf("decode(%q) failed: %v", encoded, err)
		}
		if !bytes.Equal(decoded, in) {
			t.Errorf("round trip: got %q, want %q (via %q)", decoded, in, encoded)
		}
	}
}

func TestASCII85EncodeZeroGroup(t *testing.T) {
	got, err := Collect(EncodeASCII85(FromBytes([]byte{0, 0, 0, 0, 'x'})))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if len(got) < 1 || got[0] != 'z' {
		t.Errorf("encode leading zero group = %q, want to start with z", got)
	}
}

func TestASCII85DecodeZAbbreviation(t *testing.T) {
	got, err := Collect(DecodeASCII85(FromBytes([]byte("z~>"))))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0, 0, 0, 0}) {
		t.Errorf("decode(z~>) = %v, want four zero bytes", got)
	}
}

func TestASCII85DecodeKnownVector(t *testing.T) {
	// 4 bytes 0x00 0x00 0x00 0x01 -> v = 1 -> base85 digits (0,0,0,0,1) + '!'.
	got, err := Collect(DecodeASCII85(FromBytes([]byte("!!!!\"~>"))))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []byte{0x00, 0x00, 0x00, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("decode(!!!!\") = %v, want %v", got, want)
	}
}

func TestASCII85DecodeMissingEOD(t *testing.T) {
	if _, err := Collect(DecodeASCII85(FromBytes([]byte("!!!!\"")))); err == nil {
		t.Error("expected MissingEOD error")
	}
}

func TestASCII85DecodeInvalidByte(t *testing.T) {
	if _, err := Collect(DecodeASCII85(FromBytes([]byte("v~>")))); err == nil {
		t.Error("expected invalid-byte error: 'v' is outside '!'..'u'")
	}
}

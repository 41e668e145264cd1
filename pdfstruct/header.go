// Package pdfstruct implements the two whole-file grammars that sit
// above the object layer: the PDF file header and the classic
// (non-stream) cross-reference table.
package pdfstruct

import (
	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
	"github.com/Thibaud379/pdfobj/scanner"
)

// replacementChar is U+FFFD in its UTF-8 encoding, used four times as
// the header's binary-marker comment line.
var replacementChar = []byte{0xEF, 0xBF, 0xBD}

// Header is a parsed PDF file header.
type Header struct {
	Major        int
	Minor        int
	BinaryMarker bool
}

var validVersions = map[[2]int]bool{
	{1, 0}: true, {1, 1}: true, {1, 2}: true, {1, 3}: true,
	{1, 4}: true, {1, 5}: true, {1, 6}: true, {1, 7}: true,
	{2, 0}: true,
}

// ParseHeader requires the literal "%PDF-", one digit major version,
// '.', one digit minor version, validated against the closed set of
// PDF versions. After stripping whitespace, a "%" line followed by at
// least four bytes >= 0x80 is recorded as a binary marker and skipped.
func ParseHeader(b []byte) (Header, []byte, error) {
	const prefix = "%PDF-"
	if len(b) < len(prefix)+3 || string(b[:len(prefix)]) != prefix {
		return Header{}, nil, pdferr.New(pdferr.Parse, "missing %PDF- header prefix")
	}
	rest := b[len(prefix):]
	major, ok := digitVal(rest[0])
	if !ok {
		return Header{}, nil, pdferr.New(pdferr.Parse, "expected a digit for major version")
	}
	if rest[1] != '.' {
		return Header{}, nil, pdferr.New(pdferr.Parse, "expected . between version digits")
	}
	minor, ok := digitVal(rest[2])
	if !ok {
		return Header{}, nil, pdferr.New(pdferr.Parse, "expected a digit for minor version")
	}
	if !validVersions[[2]int{major, minor}] {
		return Header{}, nil, pdferr.Newf(pdferr.InvalidData, "unsupported PDF version %d.%d", major, minor)
	}
	rest = scanner.StripWhitespace(rest[3:])

	h := Header{Major: major, Minor: minor}
	if len(rest) >= 5 && rest[0] == '%' && allAtLeast80(rest[1:5]) {
		h.BinaryMarker = true
		rest = scanner.NextEOL(rest)
	}
	plog.Struct.Printf("header: version %d.%d, binary marker %v\n", h.Major, h.Minor, h.BinaryMarker)
	return h, rest, nil
}

// EmitHeader renders h as "%PDF-<major>.<minor>\n", followed by the
// binary-marker comment line when set.
func EmitHeader(h Header) []byte {
	out := []byte{'%', 'P', 'D', 'F', '-', byte('0' + h.Major), '.', byte('0' + h.Minor), '\n'}
	if h.BinaryMarker {
		out = append(out, '%')
		for i := 0; i < 4; i++ {
			out = append(out, replacementChar...)
		}
		out = append(out, '\n')
	}
	return out
}

func digitVal(b byte) (int, bool) {
	if b < '0' || b > '9' {
		return 0, false
	}
	return int(b - '0'), true
}

func allAtLeast80(bs []byte) bool {
	for _, b := range bs {
		if b < 0x80 {
			return false
		}
	}
	return true
}

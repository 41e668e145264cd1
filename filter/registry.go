// Package filter implements the PDF filter name registry and the
// pull-based byte pipeline used to decode (and, for the two fully
// specified codecs, encode) stream data: ASCIIHexDecode and
// ASCII85Decode. The other eight names are reserved entries that are
// recognized but not implemented.
package filter

import "github.com/Thibaud379/pdfobj/pdferr"

// Name is one of the ten filter names defined by the PDF filter
// registry.
type Name uint8

const (
	ASCIIHexDecode Name = iota
	ASCII85Decode
	LZWDecode
	FlateDecode
	RunLengthDecode
	CCITTFaxDecode
	JBIG2Decode
	DCTDecode
	JPXDecode
	CryptDecode
)

var names = [...]string{
	ASCIIHexDecode:  "ASCIIHexDecode",
	ASCII85Decode:   "ASCII85Decode",
	LZWDecode:       "LZWDecode",
	FlateDecode:     "FlateDecode",
	RunLengthDecode: "RunLengthDecode",
	CCITTFaxDecode:  "CCITTFaxDecode",
	JBIG2Decode:     "JBIG2Decode",
	DCTDecode:       "DCTDecode",
	JPXDecode:       "JPXDecode",
	CryptDecode:     "CryptDecode",
}

func (n Name) String() string {
	if int(n) < len(names) {
		return names[n]
	}
	return "<invalid filter name>"
}

// ParseName converts a textual filter identifier to its Name, failing
// with an InvalidData error for anything outside the closed registry.
func ParseName(s string) (Name, error) {
	for i, n := range names {
		if n == s {
			return Name(i), nil
		}
	}
	return 0, pdferr.Newf(pdferr.InvalidData, "unknown filter name %q", s)
}

// recognizedParams lists the statically known parameter-dictionary
// keys for filters that take parameters; filters absent from this map
// take none.
var recognizedParams = map[Name][]string{
	LZWDecode:     {"Predictor", "Colors", "BitsPerComponent", "Columns", "EarlyChange"},
	FlateDecode:   {"Predictor", "Colors", "BitsPerComponent", "Columns"},
	CCITTFaxDecode: {"K", "EndOfLine", "EncodeByteAlign", "Columns", "Rows",
		"EndOfBlock", "BlackIs1", "DamagedRowsBeforeError"},
	JBIG2Decode: {"JBIG2Globals"},
	DCTDecode:   {"ColorTransform"},
	CryptDecode: {"Type", "Name"},
}

// RecognizedParams returns the set of parameter-dictionary keys this
// filter recognizes (nil for filters that take none).
func RecognizedParams(n Name) []string {
	return recognizedParams[n]
}

// RecognizesParam reports whether key is a recognized parameter name
// for n.
func RecognizesParam(n Name, key string) bool {
	for _, k := range recognizedParams[n] {
		if k == key {
			return true
		}
	}
	return false
}

// Implemented reports whether n has a usable Decode/Encode body in
// this package; only ASCIIHexDecode and ASCII85Decode do.
func Implemented(n Name) bool {
	return n == ASCIIHexDecode || n == ASCII85Decode
}

package object

import (
	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
	"github.com/Thibaud379/pdfobj/scanner"
)

// ParseName requires a leading '/', then accumulates bytes until the
// first non-regular byte. A '#' must be followed by two ASCII hex
// digits decoding to one output byte; a bare NUL is a parse error.
// The terminating non-regular byte remains in the suffix.
func ParseName(b []byte) (PdfObject, []byte, error) {
	if len(b) == 0 || b[0] != '/' {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "name missing leading /")
	}
	i := 1
	out := make([]byte, 0, len(b)-1)
	for i < len(b) && (scanner.IsRegular(b[i]) || b[i] == 0x00) {
		c := b[i]
		if c == 0x00 {
			return PdfObject{}, nil, pdferr.New(pdferr.Parse, "NUL byte in name")
		}
		if c == '#' {
			if i+2 >= len(b) || !isHexDigit(b[i+1]) || !isHexDigit(b[i+2]) {
				return PdfObject{}, nil, pdferr.New(pdferr.Parse, "#xx escape missing two hex digits")
			}
			out = append(out, hexVal(b[i+1])<<4|hexVal(b[i+2]))
			i += 3
			continue
		}
		out = append(out, c)
		i++
	}
	plog.Object.Printf("name: %q\n", out)
	return NameObj(out), b[i:], nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

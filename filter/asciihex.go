package filter

import (
	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
)

const hexDigits = "0123456789ABCDEF"

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

// EncodeASCIIHex wraps upstream to produce its ASCIIHexDecode
// encoding: two uppercase hex digits per byte, then a single '>' EOD.
func EncodeASCIIHex(upstream Source) Source {
	return &asciiHexEncoder{upstream: upstream}
}

type asciiHexEncoder struct {
	upstream Source
	pending  []byte
	done     bool
}

func (e *asciiHexEncoder) Next() (byte, bool, error) {
	for len(e.pending) == 0 {
		if e.done {
			return 0, false, nil
		}
		b, ok, err := e.upstream.Next()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			e.pending = append(e.pending, '>')
			e.done = true
			break
		}
		e.pending = append(e.pending, hexDigits[b>>4], hexDigits[b&0x0F])
	}
	out := e.pending[0]
	e.pending = e.pending[1:]
	return out, true, nil
}

// DecodeASCIIHex wraps upstream (an ASCIIHexDecode-encoded stream) to
// produce its decoded bytes, stopping cleanly at the '>' EOD.
func DecodeASCIIHex(upstream Source) Source {
	return &asciiHexDecoder{upstream: upstream}
}

type asciiHexDecoder struct {
	upstream Source
	ended    bool
}

func (d *asciiHexDecoder) Next() (byte, bool, error) {
	if d.ended {
		return 0, false, nil
	}
	h1, ok, err := nextNonWhitespace(d.upstream)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, pdferr.NewMissingEOD("ASCIIHexDecode stream ended before >")
	}
	if h1 == '>' {
		d.ended = true
		return 0, false, nil
	}
	if !isHexDigit(h1) {
		return 0, false, pdferr.NewFilter(pdferr.ASCIIHexDecode, h1, "expected a hex digit")
	}

	h2, ok, err := nextNonWhitespace(d.upstream)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, pdferr.NewMissingEOD("ASCIIHexDecode stream ended before >")
	}
	if h2 == '>' {
		d.ended = true
		plog.Filter.Printf("asciihex: trailing odd digit, treated as %c0\n", h1)
		return hexVal(h1) << 4, true, nil
	}
	if !isHexDigit(h2) {
		return 0, false, pdferr.NewFilter(pdferr.ASCIIHexDecode, h2, "expected a hex digit or >")
	}
	return hexVal(h1)<<4 | hexVal(h2), true, nil
}

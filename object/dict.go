package object

import (
	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
	"github.com/Thibaud379/pdfobj/scanner"
)

// ParseDict requires a leading "<<". It repeatedly strips whitespace,
// parses a PdfName key, strips whitespace, parses a PdfObject value,
// strips whitespace, and terminates on ">>". A duplicate key is
// overwritten by the later occurrence; key order is not preserved.
func ParseDict(b []byte) (PdfObject, []byte, error) {
	if len(b) < 2 || b[0] != '<' || b[1] != '<' {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "dict missing leading <<")
	}
	rest := scanner.StripWhitespace(b[2:])
	dict := make(map[string]PdfObject)
	for {
		if len(rest) >= 2 && rest[0] == '>' && rest[1] == '>' {
			plog.Object.Printf("dict: %d entries\n", len(dict))
			return PdfObject{Kind: KindDict, Dict: dict}, rest[2:], nil
		}
		key, next, err := ParseName(rest)
		if err != nil {
			return PdfObject{}, nil, pdferr.Propagate("dict key", err)
		}
		rest = scanner.StripWhitespace(next)
		value, next, err := ParseObject(rest)
		if err != nil {
			return PdfObject{}, nil, pdferr.Propagate("dict value", err)
		}
		dict[string(key.Bytes)] = value
		rest = scanner.StripWhitespace(next)
	}
}

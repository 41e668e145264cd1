package object

import (
	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
	"github.com/Thibaud379/pdfobj/scanner"
)

// ParseArray requires a leading '['. It repeatedly strips whitespace
// and parses a PdfObject, appending each on success, stopping at the
// first failure, then requires a trailing ']'.
func ParseArray(b []byte) (PdfObject, []byte, error) {
	if len(b) == 0 || b[0] != '[' {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "array missing leading [")
	}
	rest := b[1:]
	var elems []PdfObject
	for {
		stripped := scanner.StripWhitespace(rest)
		elem, next, err := ParseObject(stripped)
		if err != nil {
			rest = stripped
			break
		}
		elems = append(elems, elem)
		rest = next
	}
	rest = scanner.StripWhitespace(rest)
	if len(rest) == 0 || rest[0] != ']' {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "array missing trailing ]")
	}
	plog.Object.Printf("array: %d elements\n", len(elems))
	return PdfObject{Kind: KindArray, Arr: elems}, rest[1:], nil
}

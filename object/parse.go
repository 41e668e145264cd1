package object

import (
	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
	"github.com/Thibaud379/pdfobj/scanner"
)

// ParseObject dispatches on a one-byte (or two-byte, for "<<")
// lookahead to the variant parser, per the object dispatcher table:
// "<<" -> Dict, "[" -> Array, "(" or a lone "<" -> String, "/" -> Name,
// "f"/"t" -> Boolean, "n" -> Null, otherwise Indirect then Numeric.
func ParseObject(b []byte) (PdfObject, []byte, error) {
	if len(b) == 0 {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "empty input")
	}
	switch {
	case len(b) >= 2 && b[0] == '<' && b[1] == '<':
		return ParseDict(b)
	case b[0] == '[':
		return ParseArray(b)
	case b[0] == '(':
		return ParseStringLiteral(b)
	case b[0] == '<':
		return ParseStringHex(b)
	case b[0] == '/':
		return ParseName(b)
	case b[0] == 'f' || b[0] == 't':
		v, rest, err := ParseBoolean(b)
		if err != nil {
			return PdfObject{}, nil, err
		}
		return Boolean(v), rest, nil
	case b[0] == 'n':
		rest, err := ParseNull(b)
		if err != nil {
			return PdfObject{}, nil, err
		}
		return Null(), rest, nil
	default:
		if obj, rest, ok, err := tryIndirectRef(b); ok {
			if err != nil {
				return PdfObject{}, nil, err
			}
			return obj, rest, nil
		}
		num, rest, err := ParseNumeric(b)
		if err != nil {
			return PdfObject{}, nil, err
		}
		plog.Object.Printf("dispatch: numeric fallback\n")
		return PdfObject{Kind: KindNumeric, Num: num}, rest, nil
	}
}

// matchKeyword requires b to start with the literal kw, followed by
// EOF or a non-regular byte (the boundary byte is left in the
// returned suffix).
func matchKeyword(b []byte, kw string) ([]byte, bool) {
	n := len(kw)
	if len(b) < n || string(b[:n]) != kw {
		return nil, false
	}
	if len(b) > n && scanner.IsRegular(b[n]) {
		return nil, false
	}
	return b[n:], true
}

// parseNonNegIntToken consumes bytes up to the first whitespace byte
// and parses them as a non-negative decimal integer.
func parseNonNegIntToken(b []byte) (uint32, []byte, error) {
	i := 0
	for i < len(b) && !scanner.IsWhitespace(b[i]) {
		i++
	}
	token := b[:i]
	if len(token) == 0 {
		return 0, nil, pdferr.New(pdferr.Parse, "empty integer token")
	}
	var v uint64
	for _, c := range token {
		if !isDigit(c) {
			return 0, nil, pdferr.Newf(pdferr.Parse, "invalid integer token %q", token)
		}
		v = v*10 + uint64(c-'0')
		if v > 0xFFFFFFFF {
			return 0, nil, pdferr.Newf(pdferr.Parse, "integer token %q overflows uint32", token)
		}
	}
	return uint32(v), b[i:], nil
}

// parseIndirectHead reads two non-negative integer tokens separated
// by whitespace, as required by the start of both the "R" reference
// form and the "N G obj" indirect-object envelope.
func parseIndirectHead(b []byte) (object, generation uint32, rest []byte, err error) {
	object, rest, err = parseNonNegIntToken(b)
	if err != nil {
		return 0, 0, nil, err
	}
	if len(rest) == 0 || !scanner.IsWhitespace(rest[0]) {
		return 0, 0, nil, pdferr.New(pdferr.Parse, "object and generation numbers must be whitespace-separated")
	}
	rest = scanner.StripWhitespace(rest)
	generation, rest, err = parseNonNegIntToken(rest)
	if err != nil {
		return 0, 0, nil, err
	}
	return object, generation, rest, nil
}

// tryIndirectRef attempts "N G R" at the start of b. ok is false when
// the input doesn't even look like two integers followed by R/obj, in
// which case the dispatcher should fall back to Numeric; ok is true
// with a non-nil err when it looked like an indirect form but was
// malformed past that point.
func tryIndirectRef(b []byte) (PdfObject, []byte, bool, error) {
	objNum, gen, rest, err := parseIndirectHead(b)
	if err != nil {
		return PdfObject{}, nil, false, nil
	}
	rest = scanner.StripWhitespace(rest)
	if next, ok := matchKeyword(rest, "R"); ok {
		plog.Object.Printf("ref: %d %d R\n", objNum, gen)
		return Ref(objNum, gen), next, true, nil
	}
	if next, ok := matchKeyword(rest, "obj"); ok {
		obj, next, err := parseIndirectBody(objNum, gen, next)
		return obj, next, true, err
	}
	return PdfObject{}, nil, false, nil
}

// ParseIndirectObject parses a top-level "N G obj ... endobj"
// envelope (including its stream sub-case), as produced by a PDF
// file body between cross-reference entries.
func ParseIndirectObject(b []byte) (PdfObject, []byte, error) {
	objNum, gen, rest, err := parseIndirectHead(b)
	if err != nil {
		return PdfObject{}, nil, pdferr.Propagate("indirect object header", err)
	}
	rest = scanner.StripWhitespace(rest)
	next, ok := matchKeyword(rest, "obj")
	if !ok {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "expected obj keyword")
	}
	return parseIndirectBody(objNum, gen, next)
}

func parseIndirectBody(objNum, gen uint32, rest []byte) (PdfObject, []byte, error) {
	rest = scanner.StripWhitespace(rest)
	body, rest, err := ParseObject(rest)
	if err != nil {
		return PdfObject{}, nil, pdferr.Propagate("indirect object body", err)
	}
	rest = scanner.StripWhitespace(rest)
	if next, ok := matchKeyword(rest, "stream"); ok {
		return parseStreamBody(objNum, gen, body, next)
	}
	next, ok := matchKeyword(rest, "endobj")
	if !ok {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "expected endobj keyword")
	}
	body.Indirect = &Indirect{Object: objNum, Generation: gen}
	plog.Object.Printf("indirect object %d %d obj\n", objNum, gen)
	return body, next, nil
}

func parseStreamBody(objNum, gen uint32, dictObj PdfObject, rest []byte) (PdfObject, []byte, error) {
	if dictObj.Kind != KindDict {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "stream body must follow a dict")
	}
	switch {
	case len(rest) >= 2 && rest[0] == '\r' && rest[1] == '\n':
		rest = rest[2:]
	case len(rest) >= 1 && rest[0] == '\n':
		rest = rest[1:]
	default:
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "stream keyword must be followed by a single EOL")
	}
	lengthObj, ok := dictObj.Dict["Length"]
	if !ok || lengthObj.Kind != KindNumeric || !lengthObj.Num.IsInt {
		return PdfObject{}, nil, pdferr.New(pdferr.MissingStreamLength, "stream dict has no integer Length entry")
	}
	length := int(lengthObj.Num.Int)
	if length < 0 || length > len(rest) {
		return PdfObject{}, nil, pdferr.New(pdferr.InvalidData, "stream Length exceeds available bytes")
	}
	data := rest[:length]
	rest = scanner.StripWhitespace(rest[length:])
	next, ok := matchKeyword(rest, "endstream")
	if !ok {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "expected endstream keyword")
	}
	rest = scanner.StripWhitespace(next)
	next, ok = matchKeyword(rest, "endobj")
	if !ok {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "expected endobj keyword")
	}
	plog.Object.Printf("stream object %d %d, length %d\n", objNum, gen, length)
	return PdfObject{
		Kind:     KindStream,
		Stream:   &PdfStream{Info: dictObj.Dict, Length: length, Data: data},
		Indirect: &Indirect{Object: objNum, Generation: gen},
	}, next, nil
}

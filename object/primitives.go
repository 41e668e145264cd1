package object

import (
	"strconv"

	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
	"github.com/Thibaud379/pdfobj/scanner"
)

// ParseBoolean matches the literal "true" or "false". The byte after
// the literal, if any, must be whitespace; that byte is not consumed.
func ParseBoolean(b []byte) (bool, []byte, error) {
	for _, lit := range [2]struct {
		s string
		v bool
	}{{"true", true}, {"false", false}} {
		n := len(lit.s)
		if len(b) < n || string(b[:n]) != lit.s {
			continue
		}
		if len(b) > n && !scanner.IsWhitespace(b[n]) {
			return false, nil, pdferr.New(pdferr.Parse, "boolean literal not followed by whitespace")
		}
		plog.Object.Printf("boolean: %v\n", lit.v)
		return lit.v, b[n:], nil
	}
	return false, nil, pdferr.New(pdferr.Parse, "not a boolean literal")
}

// ParseNull matches "null" iff followed by a non-regular byte or EOF,
// consuming any trailing whitespace.
func ParseNull(b []byte) ([]byte, error) {
	const lit = "null"
	if len(b) < len(lit) || string(b[:len(lit)]) != lit {
		return nil, pdferr.New(pdferr.Parse, "not a null literal")
	}
	rest := b[len(lit):]
	if len(rest) > 0 && scanner.IsRegular(rest[0]) {
		return nil, pdferr.New(pdferr.Parse, "null literal not followed by a delimiter or whitespace")
	}
	return scanner.StripWhitespace(rest), nil
}

// ParseNumeric consumes bytes up to the first whitespace byte,
// attempts an integer parse, then a real parse; a token containing
// 'e', 'E' or '#' is rejected outright (no exponent, no PostScript
// radix notation). The returned suffix starts at the whitespace byte.
func ParseNumeric(b []byte) (PdfNumeric, []byte, error) {
	i := 0
	for i < len(b) && !scanner.IsWhitespace(b[i]) {
		i++
	}
	token, rest := b[:i], b[i:]
	if len(token) == 0 {
		return PdfNumeric{}, nil, pdferr.New(pdferr.Parse, "empty numeric token")
	}
	for _, c := range token {
		if c == 'e' || c == 'E' || c == '#' {
			return PdfNumeric{}, nil, pdferr.Newf(pdferr.Parse, "invalid numeric literal %q", token)
		}
	}
	if iv, err := strconv.ParseInt(string(token), 10, 32); err == nil {
		plog.Object.Printf("numeric: integer %d\n", iv)
		return PdfNumeric{IsInt: true, Int: int32(iv)}, rest, nil
	}
	if !isRealLiteral(token) {
		return PdfNumeric{}, nil, pdferr.Newf(pdferr.Parse, "invalid numeric literal %q", token)
	}
	fv, err := strconv.ParseFloat(string(token), 32)
	if err != nil {
		return PdfNumeric{}, nil, pdferr.Wrap("invalid real literal", err)
	}
	plog.Object.Printf("numeric: real %g\n", fv)
	return PdfNumeric{Real: float32(fv)}, rest, nil
}

// isRealLiteral reports whether token matches [+-]?digits?.digits?
// with at least one digit group present, as required for a PDF real.
func isRealLiteral(token []byte) bool {
	i := 0
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		i++
	}
	start := i
	for i < len(token) && isDigit(token[i]) {
		i++
	}
	intDigits := i - start
	if i >= len(token) || token[i] != '.' {
		return false
	}
	i++
	start = i
	for i < len(token) && isDigit(token[i]) {
		i++
	}
	fracDigits := i - start
	return i == len(token) && (intDigits > 0 || fracDigits > 0)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

package object

import (
	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
	"github.com/Thibaud379/pdfobj/scanner"
)

// ParseStringLiteral reads a "(...)" string: balanced parenthesis
// depth starting at 1 after the opening '(', the matching ')' at
// depth 0 ending the string. Escapes and octal sequences are resolved
// per the literal-string grammar; a bare EOL contributes a single \n.
func ParseStringLiteral(b []byte) (PdfObject, []byte, error) {
	if len(b) == 0 || b[0] != '(' {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "string literal missing leading (")
	}
	var out []byte
	depth := 1
	i := 1
	for {
		if i >= len(b) {
			return PdfObject{}, nil, pdferr.New(pdferr.Parse, "unterminated string literal")
		}
		c := b[i]
		switch {
		case c == '(':
			depth++
			out = append(out, c)
			i++
		case c == ')':
			depth--
			i++
			if depth == 0 {
				plog.Object.Printf("string literal: %d bytes\n", len(out))
				return String(out), b[i:], nil
			}
			out = append(out, c)
		case scanner.IsEOL(c):
			rest := scanner.NextEOL(b[i:])
			out = append(out, '\n')
			i = len(b) - len(rest)
		case c == '\\':
			i++
			if i >= len(b) {
				return PdfObject{}, nil, pdferr.New(pdferr.Parse, "unterminated escape in string literal")
			}
			n, consumed := decodeStringEscape(b[i:])
			if consumed == 0 {
				// \ followed by EOL: line continuation, no byte emitted.
				rest := scanner.NextEOL(b[i:])
				i = len(b) - len(rest)
				continue
			}
			if n >= 0 {
				out = append(out, byte(n))
			}
			i += consumed
		default:
			out = append(out, c)
			i++
		}
	}
}

// decodeStringEscape decodes the escape sequence starting right after
// a '\' in a string literal. Returns the decoded byte (or -1 if the
// escape is a line continuation producing no byte) and the number of
// bytes consumed from b. consumed == 0 signals a line continuation.
func decodeStringEscape(b []byte) (value int, consumed int) {
	c := b[0]
	switch c {
	case 'n':
		return 0x0A, 1
	case 'r':
		return 0x0D, 1
	case 't':
		return 0x09, 1
	case 'b':
		return 0x08, 1
	case 'f':
		return 0xFF, 1
	case '\\':
		return 0x5C, 1
	case '(':
		return 0x28, 1
	case ')':
		return 0x29, 1
	case '\n', '\r':
		return -1, 0
	case '0', '1', '2', '3', '4', '5', '6', '7':
		n := 0
		v := 0
		for n < 3 && n < len(b) && b[n] >= '0' && b[n] <= '7' {
			v = v*8 + int(b[n]-'0')
			n++
		}
		return v & 0xFF, n
	default:
		return int(c), 1
	}
}

// ParseStringHex reads a "<...>" hex string: whitespace between the
// brackets is skipped, remaining bytes must be ASCII hex digits
// consumed in pairs, with an odd trailing digit treated as if
// followed by '0'.
func ParseStringHex(b []byte) (PdfObject, []byte, error) {
	if len(b) == 0 || b[0] != '<' {
		return PdfObject{}, nil, pdferr.New(pdferr.Parse, "hex string missing leading <")
	}
	var out []byte
	i := 1
	var pending byte
	havePending := false
	for {
		for i < len(b) && scanner.IsWhitespace(b[i]) {
			i++
		}
		if i >= len(b) {
			return PdfObject{}, nil, pdferr.New(pdferr.Parse, "unterminated hex string")
		}
		if b[i] == '>' {
			i++
			if havePending {
				out = append(out, pending<<4)
			}
			plog.Object.Printf("hex string: %d bytes\n", len(out))
			return String(out), b[i:], nil
		}
		if !isHexDigit(b[i]) {
			return PdfObject{}, nil, pdferr.Newf(pdferr.Parse, "invalid hex digit %q in hex string", b[i])
		}
		if !havePending {
			pending = hexVal(b[i])
			havePending = true
		} else {
			out = append(out, pending<<4|hexVal(b[i]))
			havePending = false
		}
		i++
	}
}

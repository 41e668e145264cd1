package filter

import (
	"github.com/Thibaud379/pdfobj/scanner"
)

// Source is a lazy pull sequence of bytes: each call to Next returns
// either the next byte, a clean end of data (ok == false, err == nil),
// or a failure. Implementations hold their own small state; there is
// no package-level state shared between pipelines.
type Source interface {
	Next() (b byte, ok bool, err error)
}

// FromBytes adapts a byte slice into a Source that yields its bytes
// in order and then ends cleanly.
func FromBytes(buf []byte) Source {
	return &sliceSource{buf: buf}
}

type sliceSource struct {
	buf []byte
	pos int
}

func (s *sliceSource) Next() (byte, bool, error) {
	if s.pos >= len(s.buf) {
		return 0, false, nil
	}
	b := s.buf[s.pos]
	s.pos++
	return b, true, nil
}

// nextNonWhitespace pulls from src until a non-whitespace byte is
// found, a clean end is reached, or src fails.
func nextNonWhitespace(src Source) (byte, bool, error) {
	for {
		b, ok, err := src.Next()
		if err != nil || !ok {
			return 0, ok, err
		}
		if !scanner.IsWhitespace(b) {
			return b, true, nil
		}
	}
}

// collect drains src into a byte slice; used by tests and by callers
// that want the full decoded/encoded output rather than streaming it.
func collect(src Source) ([]byte, error) {
	var out []byte
	for {
		b, ok, err := src.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, b)
	}
}

// Collect drains src into a byte slice, returning an error if src
// ever fails.
func Collect(src Source) ([]byte, error) {
	return collect(src)
}

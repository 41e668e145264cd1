// Package pdferr defines the structured error kind shared by every
// package in this module: parsers and codecs never panic and never
// swallow a failure, they return a pdferr.Error carrying one of the
// kinds below.
package pdferr

import "fmt"

// Kind classifies a pdferr.Error.
type Kind uint8

const (
	// Parse is a generic lexical/syntactic failure.
	Parse Kind = iota
	// WrongType means an object was viewed as a kind it is not.
	WrongType
	// InvalidData means well-formed syntax but semantically inconsistent
	// content (unknown filter name, stream Length mismatch, ...).
	InvalidData
	// MissingStreamLength means a stream dictionary lacks Length.
	MissingStreamLength
	// Filter wraps a failure from the filter pipeline; see FilterKind.
	Filter
	// External wraps a foreign error (numeric parse, UTF-8 validation).
	External
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "Parse"
	case WrongType:
		return "WrongType"
	case InvalidData:
		return "InvalidData"
	case MissingStreamLength:
		return "MissingStreamLength"
	case Filter:
		return "Filter"
	case External:
		return "External"
	default:
		return "<invalid error kind>"
	}
}

// FilterKind further classifies a Filter error.
type FilterKind uint8

const (
	// ASCIIHexDecode reports an invalid byte in an ASCIIHexDecode stream.
	ASCIIHexDecode FilterKind = iota
	// ASCII85Decode reports an invalid byte in an ASCII85Decode stream.
	ASCII85Decode
	// MissingEOD reports an upstream that ended before the codec's
	// end-of-data marker was found.
	MissingEOD
)

func (k FilterKind) String() string {
	switch k {
	case ASCIIHexDecode:
		return "ASCIIHexDecode"
	case ASCII85Decode:
		return "ASCII85Decode"
	case MissingEOD:
		return "MissingEOD"
	default:
		return "<invalid filter error kind>"
	}
}

// Error is the single structured error type surfaced by this module.
type Error struct {
	Kind       Kind
	FilterKind FilterKind // only meaningful when Kind == Filter
	Byte       byte       // offending byte, when known (ASCIIHexDecode/ASCII85Decode)
	Msg        string
	Err        error // wrapped cause, for External and chained failures
}

func (e *Error) Error() string {
	switch e.Kind {
	case Filter:
		if e.FilterKind == MissingEOD {
			return fmt.Sprintf("pdf: filter: missing end-of-data marker: %s", e.Msg)
		}
		return fmt.Sprintf("pdf: filter: %s: invalid byte %#x: %s", e.FilterKind, e.Byte, e.Msg)
	case External:
		return fmt.Sprintf("pdf: %s: %s: %v", e.Kind, e.Msg, e.Err)
	default:
		return fmt.Sprintf("pdf: %s: %s", e.Kind, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a plain error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds a plain error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an External error around a foreign cause (one that is
// not itself a *Error — e.g. strconv/UTF-8 failures). Use Propagate
// instead when err may already be a *Error produced by a nested
// parser, so its real Kind survives.
func Wrap(msg string, err error) *Error {
	return &Error{Kind: External, Msg: msg, Err: err}
}

// Propagate adds context to err while preserving its Kind (and
// FilterKind/Byte, when set) if err is already a *Error, as happens
// when a composite parser forwards a nested parser's failure. A
// foreign err that is not a *Error is wrapped as External, same as
// Wrap.
func Propagate(msg string, err error) *Error {
	if pe, ok := err.(*Error); ok {
		return &Error{Kind: pe.Kind, FilterKind: pe.FilterKind, Byte: pe.Byte, Msg: msg + ": " + pe.Msg, Err: err}
	}
	return &Error{Kind: External, Msg: msg, Err: err}
}

// NewFilter builds a Filter error carrying the offending byte.
func NewFilter(fk FilterKind, b byte, msg string) *Error {
	return &Error{Kind: Filter, FilterKind: fk, Byte: b, Msg: msg}
}

// NewMissingEOD builds the shared MissingEOD filter error.
func NewMissingEOD(msg string) *Error {
	return &Error{Kind: Filter, FilterKind: MissingEOD, Msg: msg}
}

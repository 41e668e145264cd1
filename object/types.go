// Package object implements the PDF object model and the
// byte-oriented parsers for it: booleans, numerics, strings, names,
// null, arrays, dictionaries, indirect objects and streams.
//
// Every parser in this package has the same shape: given a byte
// buffer, it returns the parsed value plus the unconsumed suffix of
// the buffer, or a *pdferr.Error. The suffix is always a genuine tail
// slice of the input (no copies), so callers can backtrack for free
// by keeping the pre-call slice around.
package object

import (
	"bytes"
	"fmt"

	"github.com/Thibaud379/pdfobj/pdferr"
)

// Kind discriminates the variants of PdfObject.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindNumeric
	KindString
	KindName
	KindArray
	KindDict
	KindStream
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindNumeric:
		return "Numeric"
	case KindString:
		return "String"
	case KindName:
		return "Name"
	case KindArray:
		return "Array"
	case KindDict:
		return "Dict"
	case KindStream:
		return "Stream"
	case KindRef:
		return "Ref"
	default:
		return "<invalid kind>"
	}
}

// Indirect is the (object number, generation number) identity carried
// by Ref objects, and optionally by any object read as the body of an
// "obj ... endobj" envelope.
type Indirect struct {
	Object     uint32
	Generation uint32
}

// PdfNumeric is either a 32-bit signed integer or a 32-bit float,
// never both: the literal is attempted as integer first, then real.
type PdfNumeric struct {
	IsInt bool
	Int   int32
	Real  float32
}

// AsFloat returns the numeric value as a float64, regardless of which
// representation it holds.
func (n PdfNumeric) AsFloat() float64 {
	if n.IsInt {
		return float64(n.Int)
	}
	return float64(n.Real)
}

func (n PdfNumeric) String() string {
	if n.IsInt {
		return fmt.Sprintf("%d", n.Int)
	}
	return fmt.Sprintf("%g", n.Real)
}

// PdfObject is the tagged variant produced by every parser in this
// package. Indirect is nil unless the value is a Ref (always set) or
// was parsed as the body of an indirect object envelope.
type PdfObject struct {
	Kind Kind

	Bool  bool       // KindBoolean
	Num   PdfNumeric // KindNumeric
	Bytes []byte     // KindString, KindName: owned raw bytes

	Arr    []PdfObject          // KindArray
	Dict   map[string]PdfObject // KindDict, and KindStream's Info
	Stream *PdfStream           // KindStream

	Indirect *Indirect // optional indirect identity
}

// PdfStream is a dictionary plus the raw (still filtered) byte
// payload whose length is carried by the dictionary's Length entry.
type PdfStream struct {
	Info   map[string]PdfObject
	Length int
	Data   []byte
}

// PdfDict is map[string]PdfObject: keys are the decoded bytes of a
// PdfName, interned to a Go string once at dict-construction time
// (names are never mutated afterwards, so this is safe).
type PdfDict = map[string]PdfObject

// Null returns the null value.
func Null() PdfObject { return PdfObject{Kind: KindNull} }

// Boolean wraps a bool into a PdfObject.
func Boolean(b bool) PdfObject { return PdfObject{Kind: KindBoolean, Bool: b} }

// Integer wraps a 32-bit integer into a numeric PdfObject.
func Integer(i int32) PdfObject {
	return PdfObject{Kind: KindNumeric, Num: PdfNumeric{IsInt: true, Int: i}}
}

// Real wraps a 32-bit float into a numeric PdfObject.
func Real(f float32) PdfObject {
	return PdfObject{Kind: KindNumeric, Num: PdfNumeric{Real: f}}
}

// String wraps raw bytes into a string PdfObject.
func String(b []byte) PdfObject { return PdfObject{Kind: KindString, Bytes: b} }

// NameObj wraps raw (already #xx-decoded) bytes into a name PdfObject.
func NameObj(b []byte) PdfObject { return PdfObject{Kind: KindName, Bytes: b} }

// Ref builds a reference PdfObject to the given indirect identity.
func Ref(object, generation uint32) PdfObject {
	return PdfObject{Kind: KindRef, Indirect: &Indirect{Object: object, Generation: generation}}
}

// IsNull reports whether o is the null object.
func (o PdfObject) IsNull() bool { return o.Kind == KindNull }

// AsBool returns the boolean value of o, or a WrongType error.
func (o PdfObject) AsBool() (bool, error) {
	if o.Kind != KindBoolean {
		return false, pdferr.Newf(pdferr.WrongType, "expected Boolean, got %s", o.Kind)
	}
	return o.Bool, nil
}

// AsNumeric returns the numeric value of o, or a WrongType error.
func (o PdfObject) AsNumeric() (PdfNumeric, error) {
	if o.Kind != KindNumeric {
		return PdfNumeric{}, pdferr.Newf(pdferr.WrongType, "expected Numeric, got %s", o.Kind)
	}
	return o.Num, nil
}

// AsString returns the raw bytes of o as a string object, or a
// WrongType error.
func (o PdfObject) AsString() ([]byte, error) {
	if o.Kind != KindString {
		return nil, pdferr.Newf(pdferr.WrongType, "expected String, got %s", o.Kind)
	}
	return o.Bytes, nil
}

// AsName returns the raw (decoded) bytes of o as a name object, or a
// WrongType error.
func (o PdfObject) AsName() ([]byte, error) {
	if o.Kind != KindName {
		return nil, pdferr.Newf(pdferr.WrongType, "expected Name, got %s", o.Kind)
	}
	return o.Bytes, nil
}

// AsArray returns the elements of o, or a WrongType error.
func (o PdfObject) AsArray() ([]PdfObject, error) {
	if o.Kind != KindArray {
		return nil, pdferr.Newf(pdferr.WrongType, "expected Array, got %s", o.Kind)
	}
	return o.Arr, nil
}

// AsDict returns the mapping of o, or a WrongType error. For
// KindStream, this returns the stream's Info dictionary.
func (o PdfObject) AsDict() (map[string]PdfObject, error) {
	switch o.Kind {
	case KindDict:
		return o.Dict, nil
	case KindStream:
		return o.Stream.Info, nil
	default:
		return nil, pdferr.Newf(pdferr.WrongType, "expected Dict, got %s", o.Kind)
	}
}

// AsStream returns the stream value of o, or a WrongType error.
func (o PdfObject) AsStream() (*PdfStream, error) {
	if o.Kind != KindStream {
		return nil, pdferr.Newf(pdferr.WrongType, "expected Stream, got %s", o.Kind)
	}
	return o.Stream, nil
}

// AsRef returns the indirect identity of o, or a WrongType error.
func (o PdfObject) AsRef() (Indirect, error) {
	if o.Kind != KindRef || o.Indirect == nil {
		return Indirect{}, pdferr.Newf(pdferr.WrongType, "expected Ref, got %s", o.Kind)
	}
	return *o.Indirect, nil
}

// Equal reports deep equality of two PdfObjects, ignoring indirect
// identity (used by round-trip tests comparing parsed values).
func Equal(a, b PdfObject) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBoolean:
		return a.Bool == b.Bool
	case KindNumeric:
		return a.Num == b.Num
	case KindString, KindName:
		return bytes.Equal(a.Bytes, b.Bytes)
	case KindRef:
		return *a.Indirect == *b.Indirect
	case KindArray:
		if len(a.Arr) != len(b.Arr) {
			return false
		}
		for i := range a.Arr {
			if !Equal(a.Arr[i], b.Arr[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(a.Dict) != len(b.Dict) {
			return false
		}
		for k, av := range a.Dict {
			bv, ok := b.Dict[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindStream:
		return Equal(PdfObject{Kind: KindDict, Dict: a.Stream.Info}, PdfObject{Kind: KindDict, Dict: b.Stream.Info}) &&
			bytes.Equal(a.Stream.Data, b.Stream.Data)
	default:
		return false
	}
}

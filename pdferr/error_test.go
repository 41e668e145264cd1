package pdferr

import (
	"errors"
	"testing"
)

func TestPropagatePreservesKind(t *testing.T) {
	inner := New(WrongType, "expected Dict, got Array")
	outer := Propagate("dict value", inner)
	if outer.Kind != WrongType {
		t.Errorf("Propagate Kind = %v, want %v", outer.Kind, WrongType)
	}
	if !errors.Is(outer, inner) {
		t.Error("Propagate should keep inner as the wrapped cause")
	}
}

func TestPropagatePreservesFilterKind(t *testing.T) {
	inner := NewFilter(ASCII85Decode, 'x', "byte outside '!'..'u'")
	outer := Propagate("decode group", inner)
	if outer.Kind != Filter || outer.FilterKind != ASCII85Decode || outer.Byte != 'x' {
		t.Errorf("Propagate lost Filter sub-kind: %+v", outer)
	}
}

func TestPropagateForeignErrorIsExternal(t *testing.T) {
	outer := Propagate("numeric literal", errors.New("boom"))
	if outer.Kind != External {
		t.Errorf("Propagate(foreign) Kind = %v, want %v", outer.Kind, External)
	}
}

func TestWrapIsAlwaysExternal(t *testing.T) {
	inner := New(Parse, "inner failure")
	outer := Wrap("context", inner)
	if outer.Kind != External {
		t.Errorf("Wrap Kind = %v, want %v (Wrap is for foreign errors only)", outer.Kind, External)
	}
}

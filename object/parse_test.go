package object

import "testing"

func doTestParseObjectOK(t *testing.T, in string) PdfObject {
	o, _, err := ParseObject([]byte(in))
	if err != nil {
		t.Errorf("ParseObject(%q) failed: %v", in, err)
	}
	return o
}

func doTestParseObjectFail(t *testing.T, in string) {
	if _, _, err := ParseObject([]byte(in)); err == nil {
		t.Errorf("ParseObject(%q) should have failed", in)
	}
}

func TestParseObjectDispatch(t *testing.T) {
	doTestParseObjectOK(t, "null")
	doTestParseObjectOK(t, "true")
	doTestParseObjectOK(t, "false")
	doTestParseObjectOK(t, "123")
	doTestParseObjectOK(t, "-1.5")
	doTestParseObjectOK(t, "/Name")
	doTestParseObjectOK(t, "(abc)")
	doTestParseObjectOK(t, "<41>")
	doTestParseObjectOK(t, "<</K/V>>")
	doTestParseObjectOK(t, "[1 2 3 ]")

	o := doTestParseObjectOK(t, "12 0 R")
	ref, err := o.AsRef()
	if err != nil || ref.Object != 12 || ref.Generation != 0 {
		t.Errorf("12 0 R -> %v, %v", ref, err)
	}

	doTestParseObjectFail(t, "")
}

func TestParseIndirectObject(t *testing.T) {
	o, rest, err := ParseIndirectObject([]byte("7 0 obj\n(hello)\nendobj"))
	if err != nil {
		t.Fatalf("ParseIndirectObject failed: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %q, want empty", rest)
	}
	s, err := o.AsString()
	if err != nil || string(s) != "hello" {
		t.Fatalf("body = %q, err %v", s, err)
	}
	if o.Indirect == nil || o.Indirect.Object != 7 {
		t.Fatalf("indirect identity = %v", o.Indirect)
	}
}

func TestParseIndirectObjectStream(t *testing.T) {
	const body = "abcde"
	src := "5 0 obj\n<</Length 5 >>\nstream\n" + body + "\nendstream\nendobj"
	o, rest, err := ParseIndirectObject([]byte(src))
	if err != nil {
		t.Fatalf("ParseIndirectObject (stream) failed: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %q, want empty", rest)
	}
	st, err := o.AsStream()
	if err != nil {
		t.Fatalf("AsStream failed: %v", err)
	}
	if string(st.Data) != body {
		t.Fatalf("stream data = %q, want %q", st.Data, body)
	}
	if st.Length != len(body) {
		t.Fatalf("stream length = %d, want %d", st.Length, len(body))
	}
}

func TestParseIndirectObjectMissingLength(t *testing.T) {
	src := "5 0 obj\n<<>>\nstream\nabcde\nendstream\nendobj"
	if _, _, err := ParseIndirectObject([]byte(src)); err == nil {
		t.Error("expected MissingStreamLength error")
	}
}

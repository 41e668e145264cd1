package object

import "testing"

func doTestNumericOK(t *testing.T, in string, want PdfNumeric, wantRest string) {
	n, rest, err := ParseNumeric([]byte(in))
	if err != nil {
		t.Errorf("ParseNumeric(%q) failed: %v", in, err)
		return
	}
	if n != want {
		t.Errorf("ParseNumeric(%q) = %v, want %v", in, n, want)
	}
	if string(rest) != wantRest {
		t.Errorf("ParseNumeric(%q) rest = %q, want %q", in, rest, wantRest)
	}
}

func doTestNumericFail(t *testing.T, in string) {
	if _, _, err := ParseNumeric([]byte(in)); err == nil {
		t.Errorf("ParseNumeric(%q) should have failed", in)
	}
}

func TestParseNumeric(t *testing.T) {
	doTestNumericOK(t, "123", PdfNumeric{IsInt: true, Int: 123}, "")
	doTestNumericOK(t, "+17 ", PdfNumeric{IsInt: true, Int: 17}, " ")
	doTestNumericOK(t, "-98", PdfNumeric{IsInt: true, Int: -98}, "")
	doTestNumericOK(t, "009.87", PdfNumeric{Real: 9.87}, "")
	doTestNumericOK(t, "0.4\n/", PdfNumeric{Real: 0.4}, "\n/")
	doTestNumericOK(t, ".5", PdfNumeric{Real: 0.5}, "")
	doTestNumericOK(t, "4.", PdfNumeric{Real: 4}, "")

	doTestNumericFail(t, "16#FFFE")
	doTestNumericFail(t, "3.0e1")
	doTestNumericFail(t, "")
	doTestNumericFail(t, ".")
}

func TestParseBoolean(t *testing.T) {
	v, rest, err := ParseBoolean([]byte("true "))
	if err != nil || !v || string(rest) != " " {
		t.Fatalf("ParseBoolean(true ) = %v, %q, %v", v, rest, err)
	}
	v, rest, err = ParseBoolean([]byte("false"))
	if err != nil || v || len(rest) != 0 {
		t.Fatalf("ParseBoolean(false) = %v, %q, %v", v, rest, err)
	}
	if _, _, err := ParseBoolean([]byte("True")); err == nil {
		t.Error("ParseBoolean(True) should have failed")
	}
	if _, _, err := ParseBoolean([]byte("false\\")); err == nil {
		t.Error(`ParseBoolean(false\) should have failed`)
	}
}

func TestParseNull(t *testing.T) {
	rest, err := ParseNull([]byte("null  abc"))
	if err != nil || string(rest) != "abc" {
		t.Fatalf("ParseNull(null  abc) = %q, %v", rest, err)
	}
	rest, err = ParseNull([]byte("null"))
	if err != nil || len(rest) != 0 {
		t.Fatalf("ParseNull(null) = %q, %v", rest, err)
	}
	if _, err := ParseNull([]byte("nullable")); err == nil {
		t.Error("ParseNull(nullable) should have failed")
	}
}

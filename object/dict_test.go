package object

import "testing"

func TestParseDict(t *testing.T) {
	o, rest, err := ParseDict([]byte("<</Key1 /Value1/Key2(abc)>>"))
	if err != nil {
		t.Fatalf("ParseDict failed: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %q, want empty", rest)
	}
	d, err := o.AsDict()
	if err != nil || len(d) != 2 {
		t.Fatalf("expected 2 entries, got %v, err %v", d, err)
	}
	if name, _ := d["Key1"].AsName(); string(name) != "Value1" {
		t.Errorf("Key1 = %q, want Value1", name)
	}

	o, rest, err = ParseDict([]byte("<<>>"))
	if err != nil {
		t.Fatalf("ParseDict(<<>>) failed: %v", err)
	}
	d, _ = o.AsDict()
	if len(d) != 0 {
		t.Fatalf("expected empty dict, got %v", d)
	}

	// Duplicate keys: later wins.
	o, _, err = ParseDict([]byte("<</K 1 /K 2 >>"))
	if err != nil {
		t.Fatalf("ParseDict duplicate keys failed: %v", err)
	}
	d, _ = o.AsDict()
	n, _ := d["K"].AsNumeric()
	if !n.IsInt || n.Int != 2 {
		t.Errorf("duplicate key K = %v, want 2 (later wins)", n)
	}

	if _, _, err := ParseDict([]byte("<</Key>")); err == nil {
		t.Error("ParseDict with missing closing >> should have failed")
	}
}

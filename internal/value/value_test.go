package value

import "testing"

func TestStrictEqualByStringification(t *testing.T) {
	a := NewString(NewStr([]byte("42")))
	b := New(&Trait{Name: "int", ToString: func(d Datum) Str {
		return NewStr([]byte("42"))
	}}, IntDatum(42))

	if !StrictEqual(a, b) {
		t.Fatal("values stringifying to the same bytes should be strictly equal")
	}
}

func TestGetAttrWalksChain(t *testing.T) {
	base := &Trait{Name: "base"}
	mid := &Trait{Name: "mid", Next: base}
	top := &Trait{Name: "top", Next: mid}
	v := New(top, Datum{})

	if _, ok := GetAttr(v, "base"); !ok {
		t.Fatal("expected to find 'base' by walking the attribute chain")
	}
	if _, ok := GetAttr(v, "nonexistent"); ok {
		t.Fatal("did not expect to find an unregistered attribute")
	}
}

func TestHashConsistentWithStrictEqual(t *testing.T) {
	Init()
	a := NewString(NewStr([]byte("hello")))
	b := NewString(Concat(NewStr([]byte("hel")), NewStr([]byte("lo"))))
	if !StrictEqual(a, b) {
		t.Fatal("expected equal values")
	}
	if Hash(a) != Hash(b) {
		t.Fatal("equal values must hash equally")
	}
}

package interp

import "testing"

func TestObjString(t *testing.T) {
	o := NewString("hello")
	if o.String() != "hello" {
		t.Errorf("got %q, want %q", o.String(), "hello")
	}
}

func TestObjNilString(t *testing.T) {
	var o *Obj
	if o.String() != "" {
		t.Errorf("nil Obj should stringify to empty string, got %q", o.String())
	}
}

func TestObjListMemoized(t *testing.T) {
	o := NewString("a b c")
	first, err := o.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	second, err := o.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(first))
	}
	if len(second) != 3 {
		t.Fatalf("expected memoized list to have 3 elements, got %d", len(second))
	}
	if first[0] != second[0] {
		t.Error("expected List() to return the same memoized Obj pointers on repeat calls")
	}
}

func TestObjInt(t *testing.T) {
	o := NewString("42")
	n, err := o.Int()
	if err != nil {
		t.Fatalf("Int failed: %v", err)
	}
	if n != 42 {
		t.Errorf("got %d, want 42", n)
	}
}

func TestObjBoolLiterals(t *testing.T) {
	cases := map[string]bool{"true": true, "false": false, "0": false, "1": true, "42": true}
	for s, want := range cases {
		b, err := NewString(s).Bool()
		if err != nil {
			t.Fatalf("Bool(%q) failed: %v", s, err)
		}
		if b != want {
			t.Errorf("Bool(%q) = %v, want %v", s, b, want)
		}
	}
}

func TestObjBoolInvalid(t *testing.T) {
	if _, err := NewString("yes").Bool(); err == nil {
		t.Error("expected error for non-boolean, non-integer string")
	}
}

package interp

import "strconv"

// Obj is a TCL value: an immutable string that may carry a memoized
// parsed-list view. Any operation that would mutate a value instead
// produces a new Obj; the list cache lives on a single Obj and is
// populated once, on first use.
type Obj struct {
	bytes   string
	list    []*Obj
	haslist bool
}

// NewString wraps a Go string as an Obj.
func NewString(s string) *Obj {
	return &Obj{bytes: s}
}

// NewList builds an Obj whose string form is the canonical list
// representation of items, with the list view pre-populated.
func NewList(items ...*Obj) *Obj {
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = it.String()
	}
	return &Obj{bytes: FormatList(strs), list: items, haslist: true}
}

// Empty is the canonical empty-string result value.
func Empty() *Obj { return NewString("") }

// String returns the string representation. A nil Obj stringifies to "".
func (o *Obj) String() string {
	if o == nil {
		return ""
	}
	return o.bytes
}

// IsEmpty reports whether the value's string form is the empty string.
func (o *Obj) IsEmpty() bool {
	return o == nil || o.bytes == ""
}

// List returns the element sequence of this value, parsing and memoizing
// it the first time it is requested. Subsequent calls return the cached view.
func (o *Obj) List() ([]*Obj, error) {
	if o == nil {
		return nil, nil
	}
	if o.haslist {
		return o.list, nil
	}
	elems, err := ParseList(o.bytes)
	if err != nil {
		return nil, err
	}
	items := make([]*Obj, len(elems))
	for i, e := range elems {
		items[i] = NewString(e)
	}
	o.list = items
	o.haslist = true
	return items, nil
}

// Int parses the value as a signed integer.
func (o *Obj) Int() (int64, error) {
	return strconv.ParseInt(o.String(), 0, 64)
}

// Bool implements TCL boolean-literal truthiness: the literals "true" and
// "false", plus integer truthiness (zero is false, nonzero is true).
// spec.md explicitly limits the core to this subset rather than a full
// expression evaluator.
func (o *Obj) Bool() (bool, error) {
	s := o.String()
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

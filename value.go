package picotcl

import (
	"fmt"
	"strings"

	"github.com/picotcl/picotcl/interp"
)

// Value represents a picotcl value with type-safe accessors. TCL values are
// fundamentally strings; Value exposes the conversions spec.md's core
// supports without pulling in expr's full numeric-type machinery.
type Value interface {
	// String returns the string representation of the value.
	String() string

	// Int returns the integer representation of the value.
	Int() (int64, error)

	// Bool returns the boolean representation. Beyond the core's "true"/
	// "false" literals and integer truthiness, embedders also get the
	// extended truthy/falsy token set ("yes"/"no", "on"/"off"), matched
	// case-insensitively, the same set [Interp.Register]-wrapped functions
	// accept for a bool parameter.
	Bool() (bool, error)

	// List returns the list representation of the value.
	List() ([]Value, error)

	// Type always reports "string": picotcl values have no distinct
	// int/double/dict representation, only a memoized list view.
	Type() string

	// IsNil reports whether this is a nil or empty value.
	IsNil() bool
}

// objValue adapts an *interp.Obj to the Value interface.
type objValue struct {
	obj *interp.Obj
}

func wrapObj(o *interp.Obj) Value {
	return objValue{obj: o}
}

func (v objValue) String() string {
	return v.obj.String()
}

func (v objValue) Int() (int64, error) {
	return v.obj.Int()
}

func (v objValue) Bool() (bool, error) {
	switch strings.ToLower(v.obj.String()) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	}
	b, err := v.obj.Bool()
	if err != nil {
		return false, fmt.Errorf("expected boolean value but got %q", v.obj.String())
	}
	return b, nil
}

func (v objValue) List() ([]Value, error) {
	items, err := v.obj.List()
	if err != nil {
		return nil, err
	}
	result := make([]Value, len(items))
	for i, it := range items {
		result[i] = wrapObj(it)
	}
	return result, nil
}

// Type always reports "string": picotcl's core has no int/double/dict
// variant representations, only the memoized list view on Obj.
func (v objValue) Type() string {
	return "string"
}

func (v objValue) IsNil() bool {
	return v.obj.IsEmpty()
}

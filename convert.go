package picotcl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/picotcl/picotcl/interp"
)

// toObj converts a Go value to an *interp.Obj, the way a registered
// command's return value is converted back into TCL. Strings, integers,
// bools and []string all have direct representations; anything else falls
// back to fmt's default formatting.
func toObj(v any) *interp.Obj {
	switch val := v.(type) {
	case nil:
		return interp.Empty()
	case *interp.Obj:
		return val
	case string:
		return interp.NewString(val)
	case int:
		return interp.NewString(strconv.Itoa(val))
	case int64:
		return interp.NewString(strconv.FormatInt(val, 10))
	case bool:
		if val {
			return interp.NewString("1")
		}
		return interp.NewString("0")
	case []string:
		items := make([]*interp.Obj, len(val))
		for i, s := range val {
			items[i] = interp.NewString(s)
		}
		return interp.NewList(items...)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			items := make([]*interp.Obj, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				items[i] = toObj(rv.Index(i).Interface())
			}
			return interp.NewList(items...)
		}
		return interp.NewString(fmt.Sprintf("%v", v))
	}
}

// wrapGoFunc wraps a Go function as an interp.NativeFunc: arguments are
// converted from the command's TCL-string args (args[1:]; args[0] is the
// command name) to fn's parameter types, and fn's results are converted
// back to a single *interp.Obj result.
func wrapGoFunc(fn any) interp.NativeFunc {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		panic(fmt.Sprintf("Register: expected function, got %T", fn))
	}
	numIn := fnType.NumIn()
	isVariadic := fnType.IsVariadic()

	return func(in *interp.Interp, args []*interp.Obj) (*interp.Obj, interp.Code, error) {
		callArgs := args[1:]
		if isVariadic {
			if len(callArgs) < numIn-1 {
				return nil, interp.Error, fmt.Errorf("wrong # args: expected at least %d, got %d", numIn-1, len(callArgs))
			}
		} else if len(callArgs) != numIn {
			return nil, interp.Error, fmt.Errorf("wrong # args: expected %d, got %d", numIn, len(callArgs))
		}

		in_ := make([]reflect.Value, len(callArgs))
		for j, a := range callArgs {
			var paramType reflect.Type
			if isVariadic && j >= numIn-1 {
				paramType = fnType.In(numIn - 1).Elem()
			} else {
				paramType = fnType.In(j)
			}
			converted, err := convertArg(a, paramType)
			if err != nil {
				return nil, interp.Error, fmt.Errorf("argument %d: %v", j+1, err)
			}
			in_[j] = converted
		}

		results := fnVal.Call(in_)
		return processResults(results, fnType)
	}
}

// convertArg converts one TCL-string argument to a Go value of the given
// target type.
func convertArg(arg *interp.Obj, targetType reflect.Type) (reflect.Value, error) {
	switch targetType.Kind() {
	case reflect.String:
		return reflect.ValueOf(arg.String()), nil
	case reflect.Int:
		v, err := arg.Int()
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(int(v)), nil
	case reflect.Int64:
		v, err := arg.Int()
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v), nil
	case reflect.Bool:
		s := strings.ToLower(arg.String())
		switch s {
		case "1", "true", "yes", "on":
			return reflect.ValueOf(true), nil
		case "0", "false", "no", "off":
			return reflect.ValueOf(false), nil
		default:
			return reflect.Value{}, fmt.Errorf("expected boolean but got %q", arg.String())
		}
	case reflect.Slice:
		items, err := arg.List()
		if err != nil {
			return reflect.Value{}, err
		}
		slice := reflect.MakeSlice(targetType, len(items), len(items))
		for j, item := range items {
			converted, err := convertArg(item, targetType.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %v", j, err)
			}
			slice.Index(j).Set(converted)
		}
		return slice, nil
	default:
		return reflect.Value{}, fmt.Errorf("unsupported parameter type %s", targetType)
	}
}

// processResults converts a registered function's return values into a
// single result Obj, plus a completion code and error. A trailing error
// return value, if non-nil, yields an Error completion; any non-error
// leading return value is converted with toObj.
func processResults(results []reflect.Value, fnType reflect.Type) (*interp.Obj, interp.Code, error) {
	numOut := fnType.NumOut()
	if numOut == 0 {
		return interp.Empty(), interp.OK, nil
	}
	last := results[numOut-1]
	if fnType.Out(numOut-1) == reflect.TypeOf((*error)(nil)).Elem() {
		if !last.IsNil() {
			return nil, interp.Error, last.Interface().(error)
		}
		if numOut == 1 {
			return interp.Empty(), interp.OK, nil
		}
		return toObj(results[0].Interface()), interp.OK, nil
	}
	return toObj(results[0].Interface()), interp.OK, nil
}

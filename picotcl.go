package picotcl

import (
	"github.com/picotcl/picotcl/interp"
)

// Interp is a picotcl interpreter instance.
//
// Create one with [New]; an Interp is not safe for concurrent use from
// multiple goroutines.
//
//	in := picotcl.New()
//	result, _ := in.Eval(`set greeting "hello"`)
//	fmt.Println(result.String())
type Interp struct {
	engine *interp.Interp
}

// New creates a picotcl interpreter with the core command set registered:
// set, unset, if, foreach, proc, return, break, continue, global, info,
// list, lindex, llength, lappend, join, rename and append.
func New() *Interp {
	engine := interp.New()
	interp.RegisterBuiltins(engine.Commands)
	return &Interp{engine: engine}
}

// Eval parses and evaluates script. A Return completion that escapes to
// top level becomes the script's result, matching a TCL shell's behavior;
// any other non-OK completion becomes a Go error.
func (in *Interp) Eval(script string) (Value, error) {
	res, err := in.engine.Eval(script)
	if err != nil {
		return nil, newEvalError(err)
	}
	return wrapObj(res), nil
}

// Parse parses script into a list of commands without evaluating it,
// surfacing syntax errors the way Eval would, without running any code.
// Scripts that merely look incomplete (an unterminated brace or quote that
// a following line could still close) return [ErrIncomplete] rather than
// the underlying parse error — see [Interp.IsComplete].
func (in *Interp) Parse(script string) error {
	_, err := interp.ParseScript(script)
	if err == nil {
		return nil
	}
	if !interp.IsComplete(script) {
		return ErrIncomplete
	}
	return err
}

// IsComplete reports whether script is a syntactically complete picotcl
// script: every brace, bracket and quote balanced, with no dangling
// backslash-newline continuation. A shell REPL uses this to decide
// whether to read another line before evaluating what the user typed.
func (in *Interp) IsComplete(script string) bool {
	return interp.IsComplete(script)
}

// SetVar sets a global variable to value, converting value via the same
// rules as [Interp.Register]'s return-value conversion.
func (in *Interp) SetVar(name string, value any) {
	in.engine.Scopes.Set(name, toObj(value))
}

// Var reads a global variable. It returns a nil Value if the variable is
// unset.
func (in *Interp) Var(name string) Value {
	v, ok := in.engine.Scopes.Get(name)
	if !ok {
		return nil
	}
	return wrapObj(v)
}

// Register installs fn as a native command named name. Arguments are
// converted from TCL strings to fn's parameter types, and fn's results
// (plus an optional trailing error) are converted back. Supported
// parameter types are string, int, int64, bool and slices of those; a call
// to a function with any other parameter type fails with an error.
func (in *Interp) Register(name string, fn any) {
	in.engine.Commands.RegisterNative(name, wrapGoFunc(fn))
}

package interp

import (
	"fmt"
	"strings"
)

// Interp is the evaluation engine: a command table plus a scope stack.
// The root picotcl package wraps Interp with a friendlier embedding API;
// Interp itself works purely in terms of Obj, Code and error.
type Interp struct {
	Commands *CommandTable
	Scopes   *Scopes
}

// New builds an Interp with an empty global scope and no commands
// registered. The root package's constructor registers the builtin set.
func New() *Interp {
	return &Interp{
		Commands: NewCommandTable(),
		Scopes:   NewScopes(),
	}
}

// Eval parses and evaluates script as a top-level script. A Return
// completion is converted to a normal result, matching top-level TCL
// behavior; a Break or Continue that escapes every enclosing loop becomes
// a Go error.
func (in *Interp) Eval(script string) (*Obj, error) {
	cmds, err := ParseScript(script)
	if err != nil {
		return nil, err
	}
	res, code, err := in.EvalCommands(cmds)
	if err != nil {
		return nil, err
	}
	switch code {
	case OK, Return:
		return res, nil
	case Break:
		return nil, fmt.Errorf("invoked \"break\" outside of a loop")
	case Continue:
		return nil, fmt.Errorf("invoked \"continue\" outside of a loop")
	}
	return res, nil
}

// EvalCommands runs cmds in sequence, stopping early on any non-OK
// completion code and returning it for the caller to interpret.
func (in *Interp) EvalCommands(cmds []*Command) (*Obj, Code, error) {
	result := Empty()
	for _, cmd := range cmds {
		res, code, err := in.evalCommand(cmd)
		if code != OK {
			return res, code, err
		}
		result = res
	}
	return result, OK, nil
}

// evalCommand substitutes a command's words and dispatches it.
func (in *Interp) evalCommand(cmd *Command) (*Obj, Code, error) {
	if len(cmd.Words) == 0 {
		return Empty(), OK, nil
	}
	args := make([]*Obj, len(cmd.Words))
	for i, w := range cmd.Words {
		v, code, err := in.substWord(w)
		if code != OK {
			return v, code, err
		}
		args[i] = v
	}
	return in.dispatch(args)
}

// substWord evaluates a word's fragments and concatenates them to a
// single Obj. A word consisting of exactly one fragment returns that
// fragment's value directly, so e.g. a bare "[list $x]" word yields the
// list-producing command's actual result Obj rather than a re-wrapped
// copy of its string form.
func (in *Interp) substWord(w Word) (*Obj, Code, error) {
	if len(w.frags) == 0 {
		return Empty(), OK, nil
	}
	if len(w.frags) == 1 {
		return in.substFragment(w.frags[0])
	}
	var b strings.Builder
	for _, f := range w.frags {
		v, code, err := in.substFragment(f)
		if code != OK {
			return v, code, err
		}
		b.WriteString(v.String())
	}
	return NewString(b.String()), OK, nil
}

func (in *Interp) substFragment(f fragment) (*Obj, Code, error) {
	switch f.kind {
	case fragText:
		return NewString(f.text), OK, nil
	case fragVar:
		v, ok := in.Scopes.Get(f.name)
		if !ok {
			return nil, Error, fmt.Errorf("can't read %q: no such variable", f.name)
		}
		return v, OK, nil
	case fragCmd:
		return in.EvalCommands(f.cmds)
	}
	return Empty(), OK, nil
}

// dispatch looks up and invokes the command named by args[0].
func (in *Interp) dispatch(args []*Obj) (*Obj, Code, error) {
	name := args[0].String()
	entry, ok := in.Commands.Lookup(name)
	if !ok {
		return nil, Error, fmt.Errorf("invalid command name %q", name)
	}
	switch entry.kind {
	case kindNative:
		return entry.native(in, args)
	case kindProc:
		return in.callProc(entry.proc, args)
	}
	return nil, Error, fmt.Errorf("invalid command name %q", name)
}

// callProc binds args to proc's formal parameters, pushes a new scope
// frame, evaluates the body, and pops the frame. A Return completion
// inside the body becomes the call's OK result; a Break or Continue that
// escapes the body becomes an error, since procedure bodies are not loops.
func (in *Interp) callProc(proc *Procedure, args []*Obj) (*Obj, Code, error) {
	bound, err := bindArgs(proc, args[1:])
	if err != nil {
		return nil, Error, err
	}
	frame := newFrame()
	frame.procName = proc.Name
	frame.formals = proc.Params
	for _, b := range bound {
		frame.touch(b.name).value = b.value
	}
	in.Scopes.Push(frame)
	res, code, err := in.EvalCommands(proc.Body)
	in.Scopes.Pop()
	switch code {
	case OK, Return:
		return res, OK, nil
	case Error:
		return res, Error, err
	case Break:
		return nil, Error, fmt.Errorf("invoked \"break\" outside of a loop")
	case Continue:
		return nil, Error, fmt.Errorf("invoked \"continue\" outside of a loop")
	}
	return res, OK, nil
}

type boundArg struct {
	name  string
	value *Obj
}

// bindArgs matches call-time args against proc's formal parameters,
// following spec.md §4.D: required params must all be supplied; params
// with a default may be omitted (taking their default in that case); a
// trailing "args" parameter collects every remaining argument as a list
// and may itself be empty. Mismatches produce the canonical
// wrong-#-args error, built from the procedure's usage string.
func bindArgs(proc *Procedure, args []*Obj) ([]boundArg, error) {
	params := proc.Params
	hasRest := len(params) > 0 && params[len(params)-1].IsRest
	fixed := params
	var rest Param
	if hasRest {
		fixed = params[:len(params)-1]
		rest = params[len(params)-1]
	}

	required := 0
	for _, p := range fixed {
		if !p.HasDefault {
			required++
		}
	}

	if len(args) < required || (!hasRest && len(args) > len(fixed)) {
		return nil, fmt.Errorf("wrong # args: should be \"%s\"", usage(proc))
	}

	var bound []boundArg
	for i, p := range fixed {
		var val *Obj
		switch {
		case i < len(args):
			val = args[i]
		case p.HasDefault:
			val = p.Default
		default:
			return nil, fmt.Errorf("wrong # args: should be \"%s\"", usage(proc))
		}
		bound = append(bound, boundArg{name: p.Name, value: val})
	}
	if hasRest {
		var restArgs []*Obj
		if len(args) > len(fixed) {
			restArgs = args[len(fixed):]
		}
		bound = append(bound, boundArg{name: rest.Name, value: NewList(restArgs...)})
	}
	return bound, nil
}

// usage renders a proc's canonical "wrong # args" usage string: the
// procedure name, each required param verbatim, each defaulted param as
// "?name?", and a trailing rest param always as the literal "?arg ...?"
// regardless of its own name (which is always "args").
func usage(proc *Procedure) string {
	parts := []string{proc.Name}
	for _, p := range proc.Params {
		switch {
		case p.IsRest:
			parts = append(parts, "?arg ...?")
		case p.HasDefault:
			parts = append(parts, fmt.Sprintf("?%s?", p.Name))
		default:
			parts = append(parts, p.Name)
		}
	}
	return strings.Join(parts, " ")
}

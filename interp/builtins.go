package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// RegisterBuiltins installs the core command set named in spec.md §3 into
// t: set, unset, if, foreach, proc, return, break, continue, global,
// info, list, lindex, llength, lappend, join, rename, append.
func RegisterBuiltins(t *CommandTable) {
	t.RegisterNative("set", cmdSet)
	t.RegisterNative("unset", cmdUnset)
	t.RegisterNative("if", cmdIf)
	t.RegisterNative("foreach", cmdForeach)
	t.RegisterNative("proc", cmdProc)
	t.RegisterNative("return", cmdReturn)
	t.RegisterNative("break", cmdBreak)
	t.RegisterNative("continue", cmdContinue)
	t.RegisterNative("global", cmdGlobal)
	t.RegisterNative("info", cmdInfo)
	t.RegisterNative("list", cmdList)
	t.RegisterNative("lindex", cmdLindex)
	t.RegisterNative("llength", cmdLlength)
	t.RegisterNative("lappend", cmdLappend)
	t.RegisterNative("join", cmdJoin)
	t.RegisterNative("rename", cmdRename)
	t.RegisterNative("append", cmdAppend)
}

func wrongArgs(usage string) error {
	return fmt.Errorf("wrong # args: should be %q", usage)
}

func cmdSet(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, Error, wrongArgs("set varName ?newValue?")
	}
	name := args[1].String()
	if len(args) == 3 {
		in.Scopes.Set(name, args[2])
		return args[2], OK, nil
	}
	v, ok := in.Scopes.Get(name)
	if !ok {
		return nil, Error, fmt.Errorf("can't read %q: no such variable", name)
	}
	return v, OK, nil
}

func cmdUnset(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) < 2 {
		return nil, Error, wrongArgs("unset varName ?varName ...?")
	}
	for _, a := range args[1:] {
		in.Scopes.Unset(a.String())
	}
	return Empty(), OK, nil
}

// cmdIf implements "if cond ?then? body ?elseif cond ?then? body ...? ?else body?".
// Its error wording matches reference Tcl: the "argument" blamed for a
// missing expression or script is the keyword ("if", "elseif") or the
// token ("then") that precedes the gap.
func cmdIf(in *Interp, args []*Obj) (*Obj, Code, error) {
	pos := 1
	keyword := "if"
	if pos >= len(args) {
		return nil, Error, fmt.Errorf("wrong # args: no expression after %q argument", keyword)
	}
	for {
		cond := args[pos]
		pos++

		blame := keyword
		if pos < len(args) && args[pos].String() == "then" {
			blame = "then"
			pos++
		}
		if pos >= len(args) {
			return nil, Error, fmt.Errorf("wrong # args: no script following after %q argument", blame)
		}
		body := args[pos]
		pos++

		truthy, err := cond.Bool()
		if err != nil {
			return nil, Error, fmt.Errorf("expected boolean value but got %q", cond.String())
		}
		if truthy {
			return in.evalBody(body.String())
		}

		if pos >= len(args) {
			return Empty(), OK, nil
		}
		tok := args[pos].String()
		switch tok {
		case "elseif":
			pos++
			keyword = "elseif"
			if pos >= len(args) {
				return nil, Error, fmt.Errorf("wrong # args: no expression after %q argument", keyword)
			}
			continue
		case "else":
			pos++
			if pos >= len(args) {
				return nil, Error, fmt.Errorf("wrong # args: no script following after %q argument", tok)
			}
			return in.evalBody(args[pos].String())
		default:
			return nil, Error, wrongArgs("if cond ?then? body ?elseif cond ?then? body ...? ?else body?")
		}
	}
}

// evalBody parses and runs a procedure/control-structure body, passing
// through its completion code and error unchanged.
func (in *Interp) evalBody(body string) (*Obj, Code, error) {
	cmds, err := ParseScript(body)
	if err != nil {
		return nil, Error, err
	}
	return in.EvalCommands(cmds)
}

// cmdForeach strides through list in chunks the size of varList, binding
// each chunk's elements to the corresponding variable names (missing
// trailing elements bind to the empty string) and running body once per
// chunk. Loop-variable assignments land directly in the caller's frame,
// since foreach does not push one of its own, so they persist after the
// loop (including after break), per spec.md §4.G.
func cmdForeach(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) != 4 {
		return nil, Error, wrongArgs("foreach varList list body")
	}
	varNames, err := args[1].List()
	if err != nil {
		return nil, Error, err
	}
	if len(varNames) == 0 {
		return nil, Error, fmt.Errorf("foreach varlist is empty")
	}
	items, err := args[2].List()
	if err != nil {
		return nil, Error, err
	}
	cmds, err := ParseScript(args[3].String())
	if err != nil {
		return nil, Error, err
	}

	stride := len(varNames)
	result := Empty()
	for i := 0; i < len(items); i += stride {
		for j, vn := range varNames {
			idx := i + j
			if idx < len(items) {
				in.Scopes.Set(vn.String(), items[idx])
			} else {
				in.Scopes.Set(vn.String(), Empty())
			}
		}
		res, code, err := in.EvalCommands(cmds)
		switch code {
		case OK:
			result = res
		case Continue:
			continue
		case Break:
			return result, OK, nil
		case Error:
			return res, Error, err
		default:
			return res, code, err
		}
	}
	return result, OK, nil
}

func cmdProc(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) != 4 {
		return nil, Error, wrongArgs("proc name args body")
	}
	name := args[1].String()
	specs, err := args[2].List()
	if err != nil {
		return nil, Error, err
	}
	params := make([]Param, 0, len(specs))
	for i, spec := range specs {
		elems, err := spec.List()
		if err != nil {
			return nil, Error, err
		}
		var p Param
		switch len(elems) {
		case 0:
			return nil, Error, fmt.Errorf("argument with no name")
		case 1:
			p.Name = elems[0].String()
		case 2:
			p.Name = elems[0].String()
			p.HasDefault = true
			p.Default = elems[1]
		default:
			return nil, Error, fmt.Errorf("too many fields in argument specifier %q", spec.String())
		}
		if p.Name == "" {
			return nil, Error, fmt.Errorf("argument with no name")
		}
		if p.Name == "args" && i == len(specs)-1 {
			p.IsRest = true
			p.HasDefault = false
		}
		params = append(params, p)
	}
	body, err := ParseScript(args[3].String())
	if err != nil {
		return nil, Error, err
	}
	in.Commands.RegisterProc(&Procedure{Name: name, Params: params, Body: body})
	return Empty(), OK, nil
}

func cmdReturn(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) > 2 {
		return nil, Error, wrongArgs("return ?value?")
	}
	if len(args) == 2 {
		return args[1], Return, nil
	}
	return Empty(), Return, nil
}

func cmdBreak(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) != 1 {
		return nil, Error, wrongArgs("break")
	}
	return Empty(), Break, nil
}

func cmdContinue(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) != 1 {
		return nil, Error, wrongArgs("continue")
	}
	return Empty(), Continue, nil
}

func cmdGlobal(in *Interp, args []*Obj) (*Obj, Code, error) {
	for _, a := range args[1:] {
		in.Scopes.LinkGlobal(a.String())
	}
	return Empty(), OK, nil
}

func cmdInfo(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) < 2 {
		return nil, Error, wrongArgs("info subcommand ?arg ...?")
	}
	switch args[1].String() {
	case "vars":
		names := in.Scopes.VarNames()
		items := make([]*Obj, len(names))
		for i, n := range names {
			items[i] = NewString(n)
		}
		return NewList(items...), OK, nil
	case "commands":
		names := in.Commands.Names()
		items := make([]*Obj, len(names))
		for i, n := range names {
			items[i] = NewString(n)
		}
		return NewList(items...), OK, nil
	case "complete":
		if len(args) != 3 {
			return nil, Error, wrongArgs("info complete command")
		}
		return boolObj(IsComplete(args[2].String())), OK, nil
	}
	return nil, Error, fmt.Errorf("unknown or ambiguous subcommand %q: must be commands, complete, or vars", args[1].String())
}

func boolObj(b bool) *Obj {
	if b {
		return NewString("1")
	}
	return NewString("0")
}

func cmdList(in *Interp, args []*Obj) (*Obj, Code, error) {
	return NewList(args[1:]...), OK, nil
}

// cmdLindex recursively indexes into nested lists: with no indices it
// returns the list unchanged; each successive index descends one level,
// and a negative or out-of-range index at any level yields the empty
// string rather than an error, per spec.md §4.G and scenario 8.
func cmdLindex(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) < 2 {
		return nil, Error, wrongArgs("lindex list ?index ...?")
	}
	cur := args[1]
	for _, idxArg := range args[2:] {
		idx, err := strconv.Atoi(idxArg.String())
		if err != nil {
			return nil, Error, fmt.Errorf("bad index %q: must be integer", idxArg.String())
		}
		items, err := cur.List()
		if err != nil {
			return nil, Error, err
		}
		if idx < 0 || idx >= len(items) {
			return Empty(), OK, nil
		}
		cur = items[idx]
	}
	return cur, OK, nil
}

func cmdLlength(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) != 2 {
		return nil, Error, wrongArgs("llength list")
	}
	items, err := args[1].List()
	if err != nil {
		return nil, Error, err
	}
	return NewString(strconv.Itoa(len(items))), OK, nil
}

func cmdLappend(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) < 2 {
		return nil, Error, wrongArgs("lappend varName ?value ...?")
	}
	name := args[1].String()
	var items []*Obj
	if cur, ok := in.Scopes.Get(name); ok {
		var err error
		items, err = cur.List()
		if err != nil {
			return nil, Error, err
		}
	}
	items = append(items, args[2:]...)
	result := NewList(items...)
	in.Scopes.Set(name, result)
	return result, OK, nil
}

func cmdJoin(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, Error, wrongArgs("join list ?joinString?")
	}
	items, err := args[1].List()
	if err != nil {
		return nil, Error, err
	}
	sep := " "
	if len(args) == 3 {
		sep = args[2].String()
	}
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = it.String()
	}
	return NewString(strings.Join(strs, sep)), OK, nil
}

func cmdRename(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) != 3 {
		return nil, Error, wrongArgs("rename oldName newName")
	}
	if err := in.Commands.Rename(args[1].String(), args[2].String()); err != nil {
		return nil, Error, err
	}
	return Empty(), OK, nil
}

func cmdAppend(in *Interp, args []*Obj) (*Obj, Code, error) {
	if len(args) < 2 {
		return nil, Error, wrongArgs("append varName ?value ...?")
	}
	name := args[1].String()
	var b strings.Builder
	if cur, ok := in.Scopes.Get(name); ok {
		b.WriteString(cur.String())
	}
	for _, v := range args[2:] {
		b.WriteString(v.String())
	}
	result := NewString(b.String())
	in.Scopes.Set(name, result)
	return result, OK, nil
}

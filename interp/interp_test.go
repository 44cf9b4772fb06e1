package interp

import "testing"

func newTestInterp() *Interp {
	in := New()
	RegisterBuiltins(in.Commands)
	return in
}

func TestEvalSetAndSubst(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval("set x 1"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	res, err := in.Eval("set y $x")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "1" {
		t.Errorf("got %q, want %q", res.String(), "1")
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval("set y $nope"); err == nil {
		t.Error("expected error reading undefined variable")
	}
}

func TestEvalCommandSubst(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval("set x [list a b c]; llength $x")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "3" {
		t.Errorf("got %q, want %q", res.String(), "3")
	}
}

func TestForeachBreakStopsLoop(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval(`
		set result ""
		foreach n {1 2 3} {
			append result $n
			break
		}
		set result
	`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "1" {
		t.Errorf("got %q, want %q", res.String(), "1")
	}
}

func TestForeachContinueSkipsRest(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval(`
		set result ""
		foreach n {1 2 3} {
			continue
			append result $n
		}
		set result
	`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "" {
		t.Errorf("got %q, want empty string", res.String())
	}
}

func TestForeachAccumulatesAcrossIterations(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval(`
		set result ""
		foreach n {1 3 2} {
			append result $n
		}
		set result
	`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "132" {
		t.Errorf("got %q, want %q", res.String(), "132")
	}
}

func TestProcWrongArgs(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval(`proc myproc {a {b 1} args} { return $a }`); err != nil {
		t.Fatalf("proc definition failed: %v", err)
	}
	_, err := in.Eval("myproc")
	if err == nil {
		t.Fatal("expected wrong # args error")
	}
	want := `wrong # args: should be "myproc a ?b? ?arg ...?"`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestProcArgsRestBinding(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval(`proc myproc {a args} { list $a $args }`); err != nil {
		t.Fatalf("proc definition failed: %v", err)
	}
	res, err := in.Eval("myproc A 1 2")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "A {1 2}" {
		t.Errorf("got %q, want %q", res.String(), "A {1 2}")
	}
}

func TestProcDefaultParam(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval(`proc greet {name {greeting hello}} { return "$greeting, $name" }`); err != nil {
		t.Fatalf("proc definition failed: %v", err)
	}
	res, err := in.Eval(`greet World`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "hello, World" {
		t.Errorf("got %q, want %q", res.String(), "hello, World")
	}
}

func TestReturnEndsProcBody(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval(`proc f {} { return 1; return 2 }`); err != nil {
		t.Fatalf("proc definition failed: %v", err)
	}
	res, err := in.Eval("f")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "1" {
		t.Errorf("got %q, want %q", res.String(), "1")
	}
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval("break"); err == nil {
		t.Error("expected error for break outside a loop")
	}
}

func TestGlobalLinksToGlobalFrame(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval("set counter 0"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if _, err := in.Eval(`proc bump {} { global counter; set counter [llength {a b}] }`); err != nil {
		t.Fatalf("proc definition failed: %v", err)
	}
	if _, err := in.Eval("bump"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	res, err := in.Eval("set counter")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "2" {
		t.Errorf("got %q, want %q", res.String(), "2")
	}
}

func TestGlobalMissingVarStaysUnset(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval(`proc f {} { global nope; set nope }`); err != nil {
		t.Fatalf("proc definition failed: %v", err)
	}
	if _, err := in.Eval("f"); err == nil {
		t.Error("expected reading a linked-but-never-set global to fail")
	}
}

func TestRenameCommand(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval("rename set my_set"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if _, err := in.Eval("my_set x 1"); err != nil {
		t.Fatalf("renamed command should still work: %v", err)
	}
	if _, err := in.Eval("set y 2"); err == nil {
		t.Error("expected original name to be gone after rename")
	}
}

func TestLappendAndJoin(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval("lappend items a b"); err != nil {
		t.Fatalf("lappend failed: %v", err)
	}
	res, err := in.Eval(`join $items ","`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "a,b" {
		t.Errorf("got %q, want %q", res.String(), "a,b")
	}
}

func TestLindexOutOfRangeIsEmpty(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval("lindex {a b} 5")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if !res.IsEmpty() {
		t.Errorf("expected empty result, got %q", res.String())
	}
}

func TestLindexNestedIndices(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval("lindex {a {b c} d} 1 1")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "c" {
		t.Errorf("got %q, want %q", res.String(), "c")
	}

	res, err = in.Eval("lindex {a {b c} d} -1")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if !res.IsEmpty() {
		t.Errorf("expected empty result, got %q", res.String())
	}
}

func TestForeachMultiVariableStride(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval(`
		foreach {a b} {1 2 3} { append alist $a; append blist $b }
		list $alist $blist
	`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "13 2" {
		t.Errorf("got %q, want %q", res.String(), "13 2")
	}
}

func TestIfThenElse(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval(`if {true} then { set a then } else { set a else }; set a`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "then" {
		t.Errorf("got %q, want %q", res.String(), "then")
	}
}

func TestUnsetThenLappend(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval("unset x; lappend x a b c; lappend x d e f")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "a b c d e f" {
		t.Errorf("got %q, want %q", res.String(), "a b c d e f")
	}
}

func TestInfoCompleteEscapedBrace(t *testing.T) {
	in := newTestInterp()
	res, err := in.Eval(`info complete "\{cmd"`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "0" {
		t.Errorf("got %q, want %q", res.String(), "0")
	}
	res, err = in.Eval("info complete cmd")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "1" {
		t.Errorf("got %q, want %q", res.String(), "1")
	}
}

func TestProcRestBindingAcrossArities(t *testing.T) {
	in := newTestInterp()
	if _, err := in.Eval(`proc myproc {a args} { list $a $args }`); err != nil {
		t.Fatalf("proc definition failed: %v", err)
	}
	res, err := in.Eval(`list A [myproc 1] B [myproc 1 2] C [myproc 1 2 3]`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.String() != "A {1 {}} B {1 2} C {1 {2 3}}" {
		t.Errorf("got %q, want %q", res.String(), "A {1 {}} B {1 2} C {1 {2 3}}")
	}
}

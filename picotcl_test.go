package picotcl_test

import (
	"errors"
	"testing"

	"github.com/picotcl/picotcl"
)

func TestNew(t *testing.T) {
	in := picotcl.New()

	result, err := in.Eval("list 1 2 3")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "1 2 3" {
		t.Errorf("expected '1 2 3', got %q", result.String())
	}
}

func TestSetVar(t *testing.T) {
	in := picotcl.New()

	in.SetVar("name", "World")
	result, err := in.Eval(`set greeting "Hello, $name!"`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "Hello, World!" {
		t.Errorf("expected 'Hello, World!', got %q", result.String())
	}
}

func TestVar(t *testing.T) {
	in := picotcl.New()

	in.SetVar("x", 42)
	v := in.Var("x")
	if v.String() != "42" {
		t.Errorf("expected '42', got %q", v.String())
	}

	n, err := v.Int()
	if err != nil {
		t.Fatalf("Int() failed: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}

func TestVarUnset(t *testing.T) {
	in := picotcl.New()
	if v := in.Var("nope"); v != nil {
		t.Errorf("expected nil Value for unset variable, got %v", v)
	}
}

func TestRegisterSimple(t *testing.T) {
	in := picotcl.New()

	in.Register("double", func(x int) int {
		return x * 2
	})

	result, err := in.Eval("double 21")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "42" {
		t.Errorf("expected '42', got %q", result.String())
	}
}

func TestRegisterWithError(t *testing.T) {
	in := picotcl.New()

	in.Register("divide", func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	})

	if _, err := in.Eval("divide 1 0"); err == nil {
		t.Error("expected division by zero error")
	}

	result, err := in.Eval("divide 10 2")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "5" {
		t.Errorf("expected '5', got %q", result.String())
	}
}

func TestRegisterVariadic(t *testing.T) {
	in := picotcl.New()

	in.Register("sum", func(nums ...int) int {
		total := 0
		for _, n := range nums {
			total += n
		}
		return total
	})

	result, err := in.Eval("sum 1 2 3 4")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "10" {
		t.Errorf("expected '10', got %q", result.String())
	}
}

func TestIsComplete(t *testing.T) {
	in := picotcl.New()
	if !in.IsComplete("set x 1") {
		t.Error("expected complete script to report complete")
	}
	if in.IsComplete("set x {") {
		t.Error("expected unbalanced script to report incomplete")
	}
}

func TestEvalError(t *testing.T) {
	in := picotcl.New()
	_, err := in.Eval("nosuchcommand")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	var evalErr *picotcl.EvalError
	if !errors.As(err, &evalErr) {
		t.Errorf("expected *picotcl.EvalError, got %T", err)
	}
}

func TestProcDefinedThenCalled(t *testing.T) {
	in := picotcl.New()
	if _, err := in.Eval(`proc square {x} { set result [list $x $x]; llength $result }`); err != nil {
		t.Fatalf("proc definition failed: %v", err)
	}
	result, err := in.Eval("square 7")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "2" {
		t.Errorf("expected '2', got %q", result.String())
	}
}

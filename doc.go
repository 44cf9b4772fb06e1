// Package picotcl provides an embeddable, Tcl-flavored command interpreter
// for Go applications.
//
// # Overview
//
// picotcl implements the core of TCL's command language: list parsing and
// formatting, script substitution, variable scoping with global links, and
// user-defined procedures. It deliberately leaves out expr, namespaces
// beyond a single global/proc split, and byte compilation, in favor of a
// small, well-understood surface meant for embedding.
//
// # Quick Start
//
//	import "github.com/picotcl/picotcl"
//
//	func main() {
//	    in := picotcl.New()
//
//	    in.SetVar("name", "World")
//	    result, _ := in.Eval(`set greeting "Hello, $name!"`)
//	    fmt.Println(result.String()) // "Hello, World!"
//
//	    in.Register("double", func(x int) int { return x * 2 })
//	    result, _ = in.Eval("double 21")
//	    fmt.Println(result.String()) // "42"
//	}
//
// # Registering Go Functions
//
// Register accepts any Go function and converts arguments and results
// automatically:
//
//	in.Register("sum", func(nums ...int) int {
//	    total := 0
//	    for _, n := range nums {
//	        total += n
//	    }
//	    return total
//	})
package picotcl

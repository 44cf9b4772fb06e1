package picotcl

import "errors"

// ErrIncomplete is returned by [Interp.Parse] when script is syntactically
// malformed only because it is unterminated — an open brace, bracket or
// quote that a following line could still close. Callers that want to
// distinguish this from any other parse error can check for it with
// errors.Is.
var ErrIncomplete = errors.New("incomplete script")

// EvalError is returned by Eval when a script completes with the Error
// code. Message is the text of the error the failing command returned, the
// same text a TCL shell would print for an uncaught error.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string {
	return e.Message
}

func newEvalError(err error) error {
	if err == nil {
		return nil
	}
	return &EvalError{Message: err.Error()}
}

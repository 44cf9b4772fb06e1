package tcltest

import (
	"io"

	"github.com/picotcl/picotcl"
)

// TestResult holds the outcome of running a single TestCase.
type TestResult struct {
	TestCase TestCase
	Passed   bool
	Actual   string
	ErrMsg   string
	Failures []string
}

// Runner executes test suites against a freshly-constructed picotcl
// interpreter, one per test case, so that no state leaks between tests.
type Runner struct {
	Output io.Writer
}

// NewRunner creates a Runner with out as its Output. Running tests writes
// nothing to Output; printing results is the Reporter's job.
func NewRunner(out io.Writer) *Runner {
	return &Runner{Output: out}
}

// RunSuite executes every case in suite and returns their results.
func (r *Runner) RunSuite(suite *TestSuite) []TestResult {
	results := make([]TestResult, 0, len(suite.Cases))
	for _, tc := range suite.Cases {
		results = append(results, r.RunTest(tc))
	}
	return results
}

// RunTest executes a single test case in a fresh interpreter.
func (r *Runner) RunTest(tc TestCase) TestResult {
	result := TestResult{TestCase: tc, Passed: true}
	if tc.Skip {
		return result
	}

	in := picotcl.New()
	val, err := in.Eval(tc.Script)

	if tc.Error != "" {
		if err == nil {
			result.Passed = false
			result.Failures = append(result.Failures, "expected an error but script succeeded")
			return result
		}
		result.ErrMsg = err.Error()
		if result.ErrMsg != tc.Error {
			result.Passed = false
			result.Failures = append(result.Failures, "error message mismatch")
		}
		return result
	}

	if err != nil {
		result.Passed = false
		result.Failures = append(result.Failures, "unexpected error: "+err.Error())
		return result
	}

	result.Actual = val.String()
	if result.Actual != tc.Result {
		result.Passed = false
		result.Failures = append(result.Failures, "result mismatch")
	}
	return result
}

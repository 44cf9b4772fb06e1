package tcltest

import (
	"fmt"
	"io"
)

// Summary tallies a full run across one or more suites.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Reporter prints test results in a PASS/FAIL-per-line format.
type Reporter struct {
	Out io.Writer
}

// NewReporter creates a Reporter that writes to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// ReportResult prints the outcome of one test case.
func (r *Reporter) ReportResult(suiteName string, result TestResult) {
	if result.TestCase.Skip {
		fmt.Fprintf(r.Out, "SKIP: %s: %s\n", suiteName, result.TestCase.Name)
		return
	}
	if result.Passed {
		fmt.Fprintf(r.Out, "PASS: %s: %s\n", suiteName, result.TestCase.Name)
		return
	}
	fmt.Fprintf(r.Out, "FAIL: %s: %s\n", suiteName, result.TestCase.Name)
	for _, failure := range result.Failures {
		fmt.Fprintf(r.Out, "  %s\n", failure)
	}
}

// ReportSummary prints the final tally.
func (r *Reporter) ReportSummary(s Summary) {
	fmt.Fprintf(r.Out, "\n%d tests, %d passed, %d failed\n", s.Total, s.Passed, s.Failed)
}

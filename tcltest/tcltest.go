package tcltest

import (
	"fmt"
	"io"
)

// Config holds the configuration for a test run.
type Config struct {
	TestPaths []string
	Output    io.Writer
	ErrOutput io.Writer
}

// Run executes every test-suite file found under cfg.TestPaths and prints
// a PASS/FAIL line per case plus a final summary. It returns 0 if every
// case passed, 1 otherwise.
func Run(cfg Config) int {
	testFiles, err := CollectTestFiles(cfg.TestPaths)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	if len(testFiles) == 0 {
		fmt.Fprintln(cfg.ErrOutput, "error: no test files found")
		return 1
	}

	runner := NewRunner(cfg.Output)
	reporter := NewReporter(cfg.Output)
	var summary Summary

	for _, path := range testFiles {
		suite, err := ParseFile(path)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error parsing %s: %v\n", path, err)
			return 1
		}
		for _, result := range runner.RunSuite(suite) {
			reporter.ReportResult(suite.Name, result)
			summary.Total++
			if result.Passed {
				summary.Passed++
			} else {
				summary.Failed++
			}
		}
	}

	reporter.ReportSummary(summary)
	if summary.Failed > 0 {
		return 1
	}
	return 0
}

package tcltest

import (
	"strings"
	"testing"
)

const sampleSuite = `<test-suite name="basics">
  <test-case name="set and read">
    <script>set x 1; set x</script>
    <result>1</result>
  </test-case>
  <test-case name="undefined variable">
    <script>set y $nope</script>
    <error>can't read "nope": no such variable</error>
  </test-case>
</test-suite>`

func TestParseSuite(t *testing.T) {
	suite, err := Parse(strings.NewReader(sampleSuite))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if suite.Name != "basics" {
		t.Errorf("got name %q, want %q", suite.Name, "basics")
	}
	if len(suite.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(suite.Cases))
	}
	if suite.Cases[0].Script != "set x 1; set x" {
		t.Errorf("got script %q", suite.Cases[0].Script)
	}
	if suite.Cases[1].Error == "" {
		t.Error("expected second case to carry an expected error")
	}
}

func TestRunSuite(t *testing.T) {
	suite, err := Parse(strings.NewReader(sampleSuite))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	runner := NewRunner(nil)
	results := runner.RunSuite(suite)
	for _, r := range results {
		if !r.Passed {
			t.Errorf("case %q failed: %v", r.TestCase.Name, r.Failures)
		}
	}
}

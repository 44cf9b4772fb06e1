// Package tcltest runs golden XML test suites against a picotcl
// interpreter, in-process.
package tcltest

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"
)

// TestCase is a single named script/expected-result pair.
type TestCase struct {
	Name   string
	Script string
	Result string
	Error  string
	Skip   bool
}

// TestSuite is a named collection of TestCases, typically one per XML file.
type TestSuite struct {
	Name  string
	Path  string
	Cases []TestCase
}

type xmlTestSuite struct {
	XMLName   xml.Name      `xml:"test-suite"`
	Name      string        `xml:"name,attr"`
	TestCases []xmlTestCase `xml:"test-case"`
}

type xmlTestCase struct {
	Name   string `xml:"name,attr"`
	Skip   string `xml:"skip,attr"`
	Script string `xml:"script"`
	Result string `xml:"result"`
	Error  string `xml:"error"`
}

// ParseFile parses a test suite from the file at path.
func ParseFile(path string) (*TestSuite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	suite, err := Parse(f)
	if err != nil {
		return nil, err
	}
	suite.Path = path
	if suite.Name == "" {
		suite.Name = path
	}
	return suite, nil
}

// Parse parses a test suite from r.
func Parse(r io.Reader) (*TestSuite, error) {
	var xs xmlTestSuite
	if err := xml.NewDecoder(r).Decode(&xs); err != nil {
		return nil, err
	}

	suite := &TestSuite{
		Name:  xs.Name,
		Cases: make([]TestCase, 0, len(xs.TestCases)),
	}
	for _, xtc := range xs.TestCases {
		skip, _ := strconv.ParseBool(xtc.Skip)
		suite.Cases = append(suite.Cases, TestCase{
			Name:   xtc.Name,
			Script: strings.TrimSpace(xtc.Script),
			Result: strings.TrimSpace(xtc.Result),
			Error:  strings.TrimSpace(xtc.Error),
			Skip:   skip,
		})
	}
	return suite, nil
}

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectSuccess() and ExpectFailure() functions report
// a test error but allow the test to continue. The Demand*() equivalents stop
// the test immediately on failure.
//
// The Writer type implements io.Writer and can be used to capture output for
// later comparison.
package test

package test

import "testing"

// DemandEquality is like ExpectEquality but stops the test on failure
func DemandEquality[T comparable](t testing.TB, value T, expected T) {
	t.Helper()
	if value != expected {
		t.Fatalf("equality test of type %T failed: %v does not equal %v)", value, value, expected)
	}
}

// DemandSuccess is like ExpectSuccess but stops the test on failure
func DemandSuccess(t testing.TB, value any) {
	t.Helper()
	if !ExpectSuccess(t, value) {
		t.FailNow()
	}
}

// DemandFailure is like ExpectFailure but stops the test on failure
func DemandFailure(t testing.TB, value any) {
	t.Helper()
	if !ExpectFailure(t, value) {
		t.FailNow()
	}
}

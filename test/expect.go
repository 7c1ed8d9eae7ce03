package test

import (
	"testing"
)

// ExpectEquality compares value against expected and reports an error if they
// are not the same
func ExpectEquality[T comparable](t testing.TB, value T, expected T) bool {
	t.Helper()
	if value != expected {
		t.Errorf("equality test of type %T failed: %v does not equal %v)", value, value, expected)
		return false
	}
	return true
}

// ExpectInequality is the reverse of ExpectEquality
func ExpectInequality[T comparable](t testing.TB, value T, expected T) bool {
	t.Helper()
	if value == expected {
		t.Errorf("inequality test of type %T failed: %v does equal %v)", value, value, expected)
		return false
	}
	return true
}

// ExpectSuccess tests the value for success. the meaning of success depends
// on the type of value:
//
//	bool: value must be true
//	error: value must be nil
//
// nil is also treated as success. any other type is a test error
func ExpectSuccess(t testing.TB, value any) bool {
	t.Helper()

	switch v := value.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}
	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectFailure is the reverse of ExpectSuccess. a nil value is treated as a
// success and will therefore fail the test
func ExpectFailure(t testing.TB, value any) bool {
	t.Helper()

	switch v := value.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}
	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}
	case nil:
		t.Errorf("expected failure (nil error)")
		return false
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

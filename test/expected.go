// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package test

import "testing"

// ExpectedFailure tests argument v for a failure condition suitable for it's
// type. Currentlly support types:
//
//		bool -> bool == false
//		error -> error != nil
//
// If type is nil then the test will fail.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
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
		t.Errorf("expected failure (nil)")
		return false

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectedSuccess tests argument v for a success condition suitable for it's
// type. Currentlly support types:
//
//		bool -> bool == true
//		error -> error == nil
//
// If type is nil then the test will succeed.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
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
		return true

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectFailure is an alias of ExpectedFailure.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	return ExpectedFailure(t, v)
}

// ExpectSuccess is an alias of ExpectedSuccess.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	return ExpectedSuccess(t, v)
}

// ExpectEquality tests that v equals expectedValue.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality tests that v does not equal expectedValue.
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' equals '%v'", v, v, expectedValue)
		return false
	}
	return true
}

// ExpectApproximate tests that v is within the given relative tolerance
// of expectedValue (eg. a tolerance of 0.1 allows up to 10% difference).
func ExpectApproximate(t *testing.T, v float64, expectedValue float64, tolerance float64) bool {
	t.Helper()
	diff := v - expectedValue
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance*expectedValue {
		t.Errorf("approximate equality test failed: '%v' is not within '%v' of '%v'", v, tolerance, expectedValue)
		return false
	}
	return true
}

// This file is part of Bambam.
//
// Bambam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bambam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bambam.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// id builds the tag prefix used in test failure messages.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}

	s := make([]string, 0, len(tags))
	for _, tag := range tags {
		s = append(s, fmt.Sprintf("%v", tag))
	}

	return fmt.Sprintf("[%s] ", strings.Join(s, ", "))
}

// expect decides whether v is a 'success' value for its type. it does not
// report anything itself, that is the responsibility of the caller.
//
//	bool  -> true is a success
//	error -> nil is a success
//
// A value of nil is considered a success. This is because of how errors
// usually work (nil to indicate no error).
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v

	case error:
		return v == nil

	case nil:
		return true

	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// In other words, the test does not want the values to be equal.
func ExpectInequality[T comparable](t *testing.T, v T, unexpectedValue T, tags ...any) bool {
	t.Helper()
	if v == unexpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, unexpectedValue)
		return false
	}
	return true
}

// ExpectSuccess is used to test for a value which indicates a 'successful'
// value for the type. See the expect() function for which types are
// supported.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Errorf("%sa success value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectFailure is used to test for a value which indicates an 'unsuccessful'
// value for the type. See the expect() function for which types are
// supported.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectImplements tests whether an instance is an implementation of type T.
func ExpectImplements[T any](t *testing.T, instance any, tags ...any) bool {
	t.Helper()
	if _, ok := instance.(T); !ok {
		var impl T
		t.Errorf("%simplementation test failed: type %T does not implement %T", id(tags...), instance, impl)
		return false
	}
	return true
}

// approximate are the types supported by ExpectApproximate.
type approximate interface {
	~int | ~float32 | ~float64
}

// ExpectApproximate tests whether value is approximately equal to the
// expected value. The tolerance is a fraction of the expected value.
func ExpectApproximate[T approximate](t *testing.T, v T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()

	tol := math.Abs(float64(expectedValue) * tolerance)
	if float64(v) < float64(expectedValue)-tol || float64(v) > float64(expectedValue)+tol {
		t.Errorf("%sapproximation test of type %T failed: '%v' is outside the range '%v' +/- '%v'", id(tags...), v, v, expectedValue, tol)
		return false
	}

	return true
}

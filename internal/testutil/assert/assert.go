// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package assert provides the small set of assertion helpers used by
// the libmsd tests, so the internal packages do not depend on a
// third-party testing framework.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
)

type miniTB interface {
	Helper()
	Fatalf(string, ...any)
}

func suffix(msgFormat string, args ...any) string {
	if msgFormat == "" {
		return ""
	}
	return " - " + fmt.Sprintf(msgFormat, args...)
}

// Equal asserts that two comparable values are equal. For slices, maps
// and structs containing them, use [DeepEqual].
func Equal(tb miniTB, want, got any) {
	tb.Helper()
	Equalf(tb, want, got, "")
}

// Equalf is [Equal] with an extra printf-style message.
func Equalf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if got != want {
		tb.Fatalf("got %v; want %v%s", got, want, suffix(msgFormat, args...))
	}
}

// DeepEqual asserts that two values are equal under reflect.DeepEqual.
func DeepEqual(tb miniTB, want, got any) {
	tb.Helper()
	DeepEqualf(tb, want, got, "")
}

// DeepEqualf is [DeepEqual] with an extra printf-style message.
func DeepEqualf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if !reflect.DeepEqual(got, want) {
		tb.Fatalf("got %+v; want %+v%s", got, want, suffix(msgFormat, args...))
	}
}

// ErrorMatches asserts that err is non-nil and its message matches the
// regular expression pattern.
func ErrorMatches(tb miniTB, pattern string, err error) {
	tb.Helper()
	ErrorMatchesf(tb, pattern, err, "")
}

// ErrorMatchesf is [ErrorMatches] with an extra printf-style message.
func ErrorMatchesf(tb miniTB, pattern string, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err == nil {
		tb.Fatalf("got nil; want error matching %q%s", pattern, suffix(msgFormat, args...))
		return
	}
	re, reErr := regexp.Compile(pattern)
	if reErr != nil {
		tb.Fatalf("invalid regexp %q: %v", pattern, reErr)
		return
	}
	if !re.MatchString(err.Error()) {
		tb.Fatalf("error %q does not match %q%s", err.Error(), pattern, suffix(msgFormat, args...))
	}
}

// ErrorIs asserts that errors.Is(got, want) holds.
func ErrorIs(tb miniTB, got, want error) {
	tb.Helper()
	if !errors.Is(got, want) {
		tb.Fatalf("got %#v; want %#v", got, want)
	}
}

// ErrorAs asserts that errors.As can assign err to target.
func ErrorAs(tb miniTB, err error, target any) {
	tb.Helper()
	if !errors.As(err, target) {
		tb.Fatalf("got %#v; want %s", err, reflect.TypeOf(target).Elem())
	}
}

// NoError asserts that err is nil.
func NoError(tb miniTB, err error) {
	tb.Helper()
	NoErrorf(tb, err, "")
}

// NoErrorf is [NoError] with an extra printf-style message.
func NoErrorf(tb miniTB, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("unexpected error: %v%s", err, suffix(msgFormat, args...))
	}
}

// IsNil asserts that v is nil, including typed nils.
func IsNil(tb miniTB, v any) {
	tb.Helper()
	if !isNil(v) {
		tb.Fatalf("got non-nil (type %T): %#v", v, v)
	}
}

// NotNil asserts that v is not nil.
func NotNil(tb miniTB, v any) {
	tb.Helper()
	if isNil(v) {
		tb.Fatalf("got nil; want non-nil")
	}
}

// True asserts that got is true.
func True(tb miniTB, got bool) {
	tb.Helper()
	Truef(tb, got, "")
}

// Truef is [True] with an extra printf-style message.
func Truef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if !got {
		tb.Fatalf("got false; want true%s", suffix(msgFormat, args...))
	}
}

// False asserts that got is false.
func False(tb miniTB, got bool) {
	tb.Helper()
	if got {
		tb.Fatalf("got true; want false")
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

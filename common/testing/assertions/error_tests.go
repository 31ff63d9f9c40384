// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package assertions contains goconvey assertions for errors.
package assertions

import (
	"fmt"
	"reflect"

	"github.com/smarty/assertions"

	"go.chromium.org/playpublisher/common/errors"
)

// ShouldErrLike compares an `error` or `string` on the left side, to an `error`
// or `string` on the right side.
//
// If the righthand side is omitted, this expects `actual` to be nil.
//
// If a singular righthand side is provided, this expects the stringified
// `actual` to contain the stringified `expected[0]` to be a substring of it.
//
// Example:
//
//	// Usage                          Equivalent To
//	So(err, ShouldErrLike, "custom")    // `err.Error()` ShouldContainSubstring "custom"
//	So(err, ShouldErrLike, io.EOF)      // `err.Error()` ShouldContainSubstring io.EOF.Error()
//	So(err, ShouldErrLike, "EOF")       // `err.Error()` ShouldContainSubstring "EOF"
//	So(nilErr, ShouldErrLike)           // nilErr ShouldBeNil
//	So(nilErr, ShouldErrLike, nil)      // nilErr ShouldBeNil
//	So(nonNilErr, ShouldErrLike, "")    // nonNilErr ShouldNotBeNil
func ShouldErrLike(actual any, expected ...any) string {
	if len(expected) == 0 {
		return assertions.ShouldBeNil(actual)
	}
	if len(expected) != 1 {
		return fmt.Sprintf("ShouldErrLike requires 0 or 1 expected value, got %d", len(expected))
	}

	if expected[0] == nil {
		return assertions.ShouldBeNil(actual)
	} else if actual == nil {
		return assertions.ShouldNotBeNil(actual)
	}

	ae, ok := actual.(error)
	if !ok {
		return assertions.ShouldImplement(actual, (*error)(nil))
	}

	switch x := expected[0].(type) {
	case string:
		return assertions.ShouldContainSubstring(ae.Error(), x)
	case error:
		return assertions.ShouldContainSubstring(ae.Error(), x.Error())
	}
	return fmt.Sprintf("unexpected argument type %T, expected string or error", expected[0])
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ShouldErrAs asserts that the error on the left side has, somewhere in its
// chain, an error of the same type as the (pointer) value on the right side.
//
// When it does, the right side is filled in, like errors.As, so the test can
// inspect it further.
//
// Example:
//
//	var clash *gensupport.FieldClashError
//	So(err, ShouldErrAs, &clash)
//	So(clash.Name, ShouldEqual, "packageName")
func ShouldErrAs(actual any, expected ...any) string {
	if len(expected) != 1 {
		return fmt.Sprintf("ShouldErrAs requires exactly one expected value, got %d", len(expected))
	}
	ae, ok := actual.(error)
	if !ok || ae == nil {
		return fmt.Sprintf("ShouldErrAs requires a non-nil error, got %T", actual)
	}
	target := expected[0]
	if v := reflect.ValueOf(target); !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Sprintf("ShouldErrAs requires a non-nil pointer, got %T", target)
	}
	if elem := reflect.TypeOf(target).Elem(); elem.Kind() != reflect.Interface && !elem.Implements(errorType) {
		return fmt.Sprintf("ShouldErrAs requires a pointer to an interface or an error type, got %T", target)
	}
	if !errors.As(ae, target) {
		return fmt.Sprintf("expected %q (%T) to contain an error of type %s",
			ae, ae, reflect.TypeOf(target).Elem())
	}
	return ""
}

// ShouldContainErr checks if an `errors.MultiError` on the left side contains
// as one of its errors an `error` or `string` on the right side.
func ShouldContainErr(actual any, expected ...any) string {
	if len(expected) != 1 {
		return fmt.Sprintf("ShouldContainErr requires 1 expected value, got %d", len(expected))
	}

	me, ok := actual.(errors.MultiError)
	if !ok {
		return assertions.ShouldHaveSameTypeAs(actual, errors.MultiError{})
	}
	for _, err := range me {
		if err != nil && ShouldErrLike(err, expected[0]) == "" {
			return ""
		}
	}
	return fmt.Sprintf("expected MultiError to contain %q", expected[0])
}

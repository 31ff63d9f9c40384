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

package errors

import (
	"fmt"
)

// annotatedError is an error with a reason and a set of tags, optionally
// wrapping an inner error.
type annotatedError struct {
	inner  error
	reason string
	tags   map[TagKey]bool
}

func (e *annotatedError) Error() string {
	switch {
	case e.inner == nil:
		return e.reason
	case e.reason == "":
		return e.inner.Error()
	default:
		return e.reason + ": " + e.inner.Error()
	}
}

func (e *annotatedError) Unwrap() error { return e.inner }

// Annotator is a builder for annotating errors. Obtain one by calling Annotate
// or Reason on an existing error or a fresh message, then finish the
// annotation with Err.
type Annotator struct {
	inner  error
	reason string
	tags   map[TagKey]bool
}

// Annotate captures the supplied error for annotation.
//
// If err is nil, the resulting Annotator is a no-op and Err returns nil.
// The reason is formatted with fmt.Sprintf style args; an empty reason leaves
// the error message unchanged (handy for only adding tags).
func Annotate(err error, reason string, args ...any) *Annotator {
	if err == nil {
		return nil
	}
	return &Annotator{inner: err, reason: format(reason, args)}
}

// Reason builds a new error from the formatted reason.
func Reason(reason string, args ...any) *Annotator {
	return &Annotator{reason: format(reason, args)}
}

// Tag adds the given tags to the annotated error.
func (a *Annotator) Tag(tags ...TagKey) *Annotator {
	if a == nil {
		return a
	}
	if a.tags == nil {
		a.tags = make(map[TagKey]bool, len(tags))
	}
	for _, t := range tags {
		a.tags[t] = true
	}
	return a
}

// Err returns the finalized annotated error.
func (a *Annotator) Err() error {
	if a == nil {
		return nil
	}
	return &annotatedError{inner: a.inner, reason: a.reason, tags: a.tags}
}

func format(reason string, args []any) string {
	if len(args) == 0 {
		return reason
	}
	return fmt.Sprintf(reason, args...)
}

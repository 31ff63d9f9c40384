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

// Package retry implements a general-purpose retry loop driven by pluggable
// back-off iterators.
package retry

import (
	"context"
	"time"

	"go.chromium.org/playpublisher/common/clock"
)

// Stop is a sentinel value returned by Iterator.Next to indicate that no more
// attempts should be made.
const Stop time.Duration = -1

// Iterator describes a stateful implementation of retry logic.
type Iterator interface {
	// Returns the next retry delay, or Stop if no more retries should be made.
	Next(context.Context, error) time.Duration
}

// Factory is a function that produces an independent Iterator instance.
//
// Since each Iterator is stateful, each call needs its own Iterator.
type Factory func(context.Context) Iterator

// Callback is a callback function that Retry will invoke every time an
// attempt fails prior to sleeping.
type Callback func(error, time.Duration)

// Retry executes a function 'fn'. If the function returns an error, it will
// be re-executed according to a retry plan.
//
// If a nil Factory is supplied, no retries will be performed.
//
// If the supplied context is canceled, retry will stop executing. Retry will
// not execute the supplied function at all if the context is canceled when
// Retry is invoked.
//
// If 'callback' is not nil, it will be invoked if an error occurs (prior to
// sleeping).
func Retry(ctx context.Context, f Factory, fn func() error, callback Callback) (err error) {
	var it Iterator
	if f != nil {
		it = f(ctx)
	}

	for {
		if err = ctx.Err(); err != nil {
			return
		}

		if err = fn(); err == nil {
			return
		}

		if it == nil {
			return
		}
		delay := it.Next(ctx, err)
		if delay == Stop {
			return
		}

		if callback != nil {
			callback(err, delay)
		}

		if tr := clock.Sleep(ctx, delay); tr.Incomplete() {
			return tr.Err
		}
	}
}

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

package lhttp

import (
	"net/http"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// RoundTripper is an http.RoundTripper implemented by a function.
type RoundTripper func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (r RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return r(req)
}

// LimitRate wraps rt so that requests are issued no faster than the limiter
// allows.
//
// Waiting respects the request context.
func LimitRate(rt http.RoundTripper, l *rate.Limiter) http.RoundTripper {
	return RoundTripper(func(req *http.Request) (*http.Response, error) {
		if err := l.Wait(req.Context()); err != nil {
			return nil, err
		}
		return rt.RoundTrip(req)
	})
}

// LimitConcurrency wraps rt so that at most the semaphore's weight of requests
// are in flight at once.
//
// The slot is released when the round trip returns, before the response body
// is consumed.
func LimitConcurrency(rt http.RoundTripper, sem *semaphore.Weighted) http.RoundTripper {
	return RoundTripper(func(req *http.Request) (*http.Response, error) {
		if err := sem.Acquire(req.Context(), 1); err != nil {
			return nil, err
		}
		defer sem.Release(1)
		return rt.RoundTrip(req)
	})
}

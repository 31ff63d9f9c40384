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

// Package clock is an interface to system time and timers which is easy to
// test.
package clock

import (
	"context"
	"time"
)

// A Clock is an interface to system time.
//
// The standard clock is the system clock, which falls through to the system
// time library. The testclock package offers a controllable clock for tests.
type Clock interface {
	// Returns the current time (see time.Now).
	Now() time.Time

	// Sleeps the current goroutine (see time.Sleep).
	//
	// Sleep will return a TimerResult containing the time when it was awakened
	// and detailing its execution. If the sleep terminated prematurely from
	// cancellation, the TimerResult's Incomplete() method will return true.
	Sleep(context.Context, time.Duration) TimerResult
}

// TimerResult is the result of a sleep.
type TimerResult struct {
	time.Time

	// Err, if not nil, indicates that the sleep did not finish naturally and
	// contains the reason why.
	Err error
}

// Incomplete will return true if the sleep was interrupted prior to its
// expiration.
func (tr TimerResult) Incomplete() bool {
	return tr.Err != nil
}

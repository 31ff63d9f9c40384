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

// Package testclock implements a deterministic clock for tests.
package testclock

import (
	"context"
	"sync"
	"time"

	"go.chromium.org/playpublisher/common/clock"
)

// TestClock is a Clock interface with additional methods to help instrument
// it.
type TestClock interface {
	clock.Clock

	// Set sets the test clock's time.
	Set(time.Time)

	// Add advances the test clock's time.
	Add(time.Duration)

	// SetTimerCallback is a goroutine-safe method to set an instance-wide
	// callback that is invoked when any sleep begins.
	SetTimerCallback(TimerCallback)
}

// TimerCallback is called when a sleep of the given duration begins.
type TimerCallback func(time.Duration)

type testClock struct {
	sync.Mutex

	now       time.Time
	timerCond *sync.Cond

	timerCallback TimerCallback
}

var _ TestClock = (*testClock)(nil)

// New returns a TestClock instance set at the specified time.
func New(now time.Time) TestClock {
	c := testClock{now: now}
	c.timerCond = sync.NewCond(&c)
	return &c
}

// UseTime instantiates a TestClock and returns a Context that is configured to
// use that clock, as well as the instantiated clock.
func UseTime(ctx context.Context, now time.Time) (context.Context, TestClock) {
	tc := New(now)
	return clock.Set(ctx, tc), tc
}

func (c *testClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()

	return c.now
}

// Sleep blocks until the clock is advanced past the sleep deadline (usually by
// a TimerCallback) or the context is done.
func (c *testClock) Sleep(ctx context.Context, d time.Duration) clock.TimerResult {
	c.Lock()
	deadline := c.now.Add(d)
	cb := c.timerCallback
	c.Unlock()

	if cb != nil {
		cb(d)
	}

	stop := context.AfterFunc(ctx, func() {
		c.Lock()
		defer c.Unlock()
		c.timerCond.Broadcast()
	})
	defer stop()

	c.Lock()
	defer c.Unlock()
	for c.now.Before(deadline) {
		if err := ctx.Err(); err != nil {
			return clock.TimerResult{Time: c.now, Err: err}
		}
		c.timerCond.Wait()
	}
	return clock.TimerResult{Time: c.now}
}

func (c *testClock) Set(t time.Time) {
	c.Lock()
	defer c.Unlock()

	c.setTimeLocked(t)
}

func (c *testClock) Add(d time.Duration) {
	c.Lock()
	defer c.Unlock()

	c.setTimeLocked(c.now.Add(d))
}

func (c *testClock) setTimeLocked(t time.Time) {
	if t.Before(c.now) {
		panic("Cannot go backwards in time. You're not Doc Brown.")
	}
	c.now = t
	c.timerCond.Broadcast()
}

func (c *testClock) SetTimerCallback(callback TimerCallback) {
	c.Lock()
	defer c.Unlock()

	c.timerCallback = callback
}

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

package testclock

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTestClock(t *testing.T) {
	t.Parallel()

	Convey(`A test clock`, t, func() {
		now := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
		ctx, tc := UseTime(context.Background(), now)

		Convey(`can be advanced`, func() {
			tc.Add(time.Minute)
			So(tc.Now(), ShouldEqual, now.Add(time.Minute))
		})

		Convey(`refuses to go backwards`, func() {
			So(func() { tc.Set(now.Add(-time.Second)) }, ShouldPanic)
		})

		Convey(`wakes sleepers advanced by the timer callback`, func() {
			var slept []time.Duration
			tc.SetTimerCallback(func(d time.Duration) {
				slept = append(slept, d)
				tc.Add(d)
			})
			tr := tc.Sleep(ctx, 3*time.Second)
			So(tr.Incomplete(), ShouldBeFalse)
			So(tr.Time, ShouldEqual, now.Add(3*time.Second))
			So(slept, ShouldResemble, []time.Duration{3 * time.Second})
		})

		Convey(`interrupts sleepers on cancellation`, func() {
			cctx, cancel := context.WithCancel(ctx)
			tc.SetTimerCallback(func(time.Duration) { cancel() })
			tr := tc.Sleep(cctx, time.Hour)
			So(tr.Incomplete(), ShouldBeTrue)
			So(tr.Err, ShouldEqual, context.Canceled)
		})
	})
}

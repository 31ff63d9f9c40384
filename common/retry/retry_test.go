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

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/clock/testclock"
)

func TestRetry(t *testing.T) {
	t.Parallel()

	Convey(`Retry`, t, func() {
		ctx, tc := testclock.UseTime(context.Background(), time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC))
		tc.SetTimerCallback(func(d time.Duration) { tc.Add(d) })

		boom := errors.New("boom")
		calls := 0
		var delays []time.Duration
		cb := func(_ error, d time.Duration) { delays = append(delays, d) }

		Convey(`succeeds after failures`, func() {
			err := Retry(ctx, func(context.Context) Iterator {
				return &Limited{Delay: time.Second, Retries: 5}
			}, func() error {
				calls++
				if calls < 3 {
					return boom
				}
				return nil
			}, cb)
			So(err, ShouldBeNil)
			So(calls, ShouldEqual, 3)
			So(delays, ShouldResemble, []time.Duration{time.Second, time.Second})
		})

		Convey(`gives up when the iterator stops`, func() {
			err := Retry(ctx, func(context.Context) Iterator {
				return &Limited{Delay: time.Second, Retries: 1}
			}, func() error {
				calls++
				return boom
			}, cb)
			So(err, ShouldEqual, boom)
			So(calls, ShouldEqual, 2)
		})

		Convey(`a nil factory runs once`, func() {
			err := Retry(ctx, nil, func() error {
				calls++
				return boom
			}, nil)
			So(err, ShouldEqual, boom)
			So(calls, ShouldEqual, 1)
		})

		Convey(`does not run with a canceled context`, func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			err := Retry(cctx, Default, func() error {
				calls++
				return nil
			}, nil)
			So(err, ShouldEqual, context.Canceled)
			So(calls, ShouldEqual, 0)
		})
	})
}

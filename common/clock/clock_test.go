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

package clock

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
func (c fixedClock) Sleep(context.Context, time.Duration) TimerResult {
	return TimerResult{Time: c.now}
}

func TestContext(t *testing.T) {
	t.Parallel()

	Convey(`A context without a clock uses the system clock`, t, func() {
		So(Get(context.Background()), ShouldEqual, GetSystemClock())
	})

	Convey(`A context with a clock returns it`, t, func() {
		now := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
		ctx := Set(context.Background(), fixedClock{now})
		So(Now(ctx), ShouldEqual, now)
		So(Sleep(ctx, time.Hour).Incomplete(), ShouldBeFalse)
	})

	Convey(`The system clock sleep stops on cancellation`, t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		tr := GetSystemClock().Sleep(ctx, time.Hour)
		So(tr.Incomplete(), ShouldBeTrue)
		So(tr.Err, ShouldEqual, context.Canceled)
	})

	Convey(`The system clock sleeps`, t, func() {
		tr := GetSystemClock().Sleep(context.Background(), time.Millisecond)
		So(tr.Incomplete(), ShouldBeFalse)
	})
}

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

package transient

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/retry"
)

func TestOnly(t *testing.T) {
	t.Parallel()

	Convey(`Only`, t, func() {
		ctx := context.Background()
		f := Only(func(context.Context) retry.Iterator {
			return &retry.Limited{Delay: time.Second, Retries: 3}
		})
		it := f(ctx)

		Convey(`retries transient errors`, func() {
			So(it.Next(ctx, Tag.Apply(errors.New("temporary"))), ShouldEqual, time.Second)
		})

		Convey(`stops on permanent errors`, func() {
			So(it.Next(ctx, errors.New("permanent")), ShouldEqual, retry.Stop)
		})

		Convey(`is nil for a nil factory`, func() {
			So(Only(nil), ShouldBeNil)
		})
	})
}

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

package gensupport

import (
	"testing"

	"google.golang.org/api/googleapi"

	. "github.com/smartystreets/goconvey/convey"
)

func TestURLParams(t *testing.T) {
	t.Parallel()

	Convey(`URLParams`, t, func() {
		u := URLParams{}
		So(u.Get("a"), ShouldEqual, "")
		So(u.Has("a"), ShouldBeFalse)

		u.Set("a", "1")
		u.SetMulti("b", []string{"x", "y"})
		So(u.Get("b"), ShouldEqual, "x")
		So(u.Encode(), ShouldEqual, "a=1&b=x&b=y")

		cpy := u.Copy()
		cpy.Del("a")
		So(u.Has("a"), ShouldBeTrue)
		So(cpy.Has("a"), ShouldBeFalse)

		So(URLParams(nil).Copy(), ShouldResemble, URLParams{})
	})

	Convey(`SetOptions applies call options`, t, func() {
		u := URLParams{}
		SetOptions(u, googleapi.QuotaUser("someone"))
		So(u.Get("quotaUser"), ShouldEqual, "someone")
	})
}

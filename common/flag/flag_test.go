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

package flag

import (
	"flag"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "go.chromium.org/playpublisher/common/testing/assertions"
)

func TestInt64Slice(t *testing.T) {
	t.Parallel()

	Convey(`Int64Slice`, t, func() {
		var s []int64
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Var(Int64Slice(&s), "v", "")

		Convey(`reads repeated and comma-separated values`, func() {
			So(fs.Parse([]string{"-v", "1,2", "-v", " 30"}), ShouldBeNil)
			So(s, ShouldResemble, []int64{1, 2, 30})
			So(Int64Slice(&s).String(), ShouldEqual, "1,2,30")
			So(Int64Slice(&s).Get(), ShouldResemble, []int64{1, 2, 30})
		})

		Convey(`rejects garbage`, func() {
			So(Int64Slice(&s).Set("1,x"), ShouldErrLike, `got "x"`)
		})
	})
}

func TestStringMap(t *testing.T) {
	t.Parallel()

	Convey(`StringMap`, t, func() {
		var m map[string]string
		f := StringMap(&m)

		So(f.Set("en-US=Bug fixes"), ShouldBeNil)
		So(f.Set("de-DE=Fehlerbehebungen=viele"), ShouldBeNil)
		So(m, ShouldResemble, map[string]string{
			"en-US": "Bug fixes",
			"de-DE": "Fehlerbehebungen=viele",
		})
		So(f.String(), ShouldEqual, "de-DE=Fehlerbehebungen=viele, en-US=Bug fixes")

		So(f.Set("en-US=again"), ShouldErrLike, "given twice")
		So(f.Set("novalue"), ShouldErrLike, "not a key=value pair")
		So(f.Set("=x"), ShouldErrLike, "not a key=value pair")
	})
}

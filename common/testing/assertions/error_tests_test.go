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

package assertions

import (
	"fmt"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/errors"
)

type sizeError struct{ size int64 }

func (e *sizeError) Error() string { return fmt.Sprintf("size %d", e.size) }

func TestShouldErrLike(t *testing.T) {
	t.Parallel()

	Convey(`ShouldErrLike`, t, func() {
		So(nil, ShouldErrLike)
		So(nil, ShouldErrLike, nil)
		So(io.EOF, ShouldErrLike, "EOF")
		So(errors.Annotate(io.EOF, "reading").Err(), ShouldErrLike, io.EOF)
		So(ShouldErrLike(io.EOF, "nope"), ShouldNotEqual, "")
		So(ShouldErrLike(nil, "EOF"), ShouldNotEqual, "")
	})
}

func TestShouldErrAs(t *testing.T) {
	t.Parallel()

	Convey(`ShouldErrAs`, t, func() {
		err := errors.Annotate(&sizeError{42}, "upload").Err()

		var se *sizeError
		So(err, ShouldErrAs, &se)
		So(se.size, ShouldEqual, 42)

		So(ShouldErrAs(io.EOF, &se), ShouldNotEqual, "")
		So(ShouldErrAs(nil, &se), ShouldNotEqual, "")
		So(ShouldErrAs(err, se), ShouldContainSubstring, "interface or an error type")
		So(ShouldErrAs(err, (*sizeError)(nil)), ShouldContainSubstring, "non-nil pointer")

		n := 0
		So(ShouldErrAs(err, &n), ShouldContainSubstring, "interface or an error type")
		var sev sizeError
		So(ShouldErrAs(err, &sev), ShouldContainSubstring, "interface or an error type")

		var iface interface{ Error() string }
		So(err, ShouldErrAs, &iface)
	})
}

func TestShouldContainErr(t *testing.T) {
	t.Parallel()

	Convey(`ShouldContainErr`, t, func() {
		me := errors.MultiError{nil, io.EOF}
		So(me, ShouldContainErr, "EOF")
		So(ShouldContainErr(me, "nope"), ShouldNotEqual, "")
		So(ShouldContainErr(io.EOF, "EOF"), ShouldNotEqual, "")
	})
}

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

package errors

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var testTag = NewTag("test tag")

func TestAnnotate(t *testing.T) {
	t.Parallel()

	Convey(`Annotate`, t, func() {
		base := New("base")

		Convey(`nil stays nil`, func() {
			So(Annotate(nil, "reason").Tag(testTag.Key).Err(), ShouldBeNil)
		})

		Convey(`prefixes the reason`, func() {
			err := Annotate(base, "loading %q", "thing").Err()
			So(err.Error(), ShouldEqual, `loading "thing": base`)
			So(Is(err, base), ShouldBeTrue)
		})

		Convey(`empty reason keeps the message`, func() {
			So(Annotate(base, "").Err().Error(), ShouldEqual, "base")
		})

		Convey(`Reason builds a fresh error`, func() {
			So(Reason("bad %d", 3).Err().Error(), ShouldEqual, "bad 3")
		})

		Convey(`survives fmt wrapping`, func() {
			err := fmt.Errorf("outer: %w", Annotate(base, "inner").Err())
			So(Is(err, base), ShouldBeTrue)
			So(Contains(err, base), ShouldBeTrue)
		})
	})
}

func TestTags(t *testing.T) {
	t.Parallel()

	Convey(`BoolTag`, t, func() {
		err := New("boom")

		So(testTag.In(err), ShouldBeFalse)
		So(testTag.In(nil), ShouldBeFalse)
		So(testTag.Apply(nil), ShouldBeNil)

		tagged := testTag.Apply(err)
		So(tagged.Error(), ShouldEqual, "boom")
		So(testTag.In(tagged), ShouldBeTrue)
		So(testTag.In(Annotate(tagged, "context").Err()), ShouldBeTrue)
		So(testTag.In(fmt.Errorf("wrapped: %w", tagged)), ShouldBeTrue)

		Convey(`A MultiError with a tagged sub-error is tagged.`, func() {
			So(testTag.In(MultiError{nil, tagged, err}), ShouldBeTrue)
		})

		Convey(`Distinct tags with equal descriptions do not collide.`, func() {
			So(NewTag("test tag").In(tagged), ShouldBeFalse)
		})

		Convey(`An error can carry the tag itself.`, func() {
			self := &selfTagged{tagged: true}
			So(testTag.In(self), ShouldBeTrue)
			So(testTag.In(Annotate(self, "context").Err()), ShouldBeTrue)
			So(testTag.In(&selfTagged{}), ShouldBeFalse)
			So(NewTag("other").In(self), ShouldBeFalse)
		})
	})
}

type selfTagged struct {
	tagged bool
}

func (e *selfTagged) Error() string { return "self tagged" }

func (e *selfTagged) HasTag(key TagKey) bool { return e.tagged && key == testTag.Key }

func TestMultiError(t *testing.T) {
	t.Parallel()

	Convey(`MultiError`, t, func() {
		a, b := New("a"), New("b")

		So(MultiError{}.AsError(), ShouldBeNil)
		So(MultiError{nil, nil}.AsError(), ShouldBeNil)
		So(MultiError{nil, a}.Error(), ShouldEqual, "a")
		So(MultiError{a, b}.Error(), ShouldEqual, "a (and 1 other error)")
		So(MultiError{a, b, b}.Error(), ShouldEqual, "a (and 2 other errors)")
		So(Is(MultiError{a, b}, b), ShouldBeTrue)
	})
}

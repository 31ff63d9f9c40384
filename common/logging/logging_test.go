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

package logging

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recordingLogger struct {
	ctx  context.Context
	msgs *[]string
}

func (l recordingLogger) Debugf(format string, args ...any)   { l.LogCall(Debug, 0, format, args) }
func (l recordingLogger) Infof(format string, args ...any)    { l.LogCall(Info, 0, format, args) }
func (l recordingLogger) Warningf(format string, args ...any) { l.LogCall(Warning, 0, format, args) }
func (l recordingLogger) Errorf(format string, args ...any)   { l.LogCall(Error, 0, format, args) }
func (l recordingLogger) LogCall(lvl Level, _ int, format string, args []any) {
	if IsLogging(l.ctx, lvl) {
		*l.msgs = append(*l.msgs, lvl.String()+" "+format+" "+GetFields(l.ctx).String())
	}
}

func TestLogging(t *testing.T) {
	t.Parallel()

	Convey(`Without a logger, messages go nowhere`, t, func() {
		So(Get(context.Background()), ShouldEqual, Null)
		So(func() { Infof(context.Background(), "hello") }, ShouldNotPanic)
	})

	Convey(`With a logger factory`, t, func() {
		var msgs []string
		ctx := SetFactory(context.Background(), func(ctx context.Context) Logger {
			return recordingLogger{ctx, &msgs}
		})

		Convey(`respects the level`, func() {
			ctx = SetLevel(ctx, Warning)
			Infof(ctx, "dropped")
			Warningf(ctx, "kept")
			So(msgs, ShouldResemble, []string{"warning kept {}"})
		})

		Convey(`passes fields`, func() {
			ctx = SetField(ctx, "method", "edits.insert")
			ctx = SetError(ctx, errors.New("boom"))
			Errorf(ctx, "failed")
			So(msgs, ShouldResemble, []string{"error failed {error:boom, method:edits.insert}"})
		})
	})
}

func TestLevel(t *testing.T) {
	t.Parallel()

	Convey(`Level parses its names`, t, func() {
		var l Level
		for _, name := range []string{"debug", "info", "warning", "error"} {
			So(l.Set(name), ShouldBeNil)
			So(l.String(), ShouldEqual, name)
		}
		So(l.Set("loud"), ShouldNotBeNil)
	})
}

func TestFields(t *testing.T) {
	t.Parallel()

	Convey(`Fields are layered`, t, func() {
		ctx := SetFields(context.Background(), Fields{"a": 1, "b": 2})
		ctx = SetField(ctx, "b", 3)
		So(GetFields(ctx), ShouldResemble, Fields{"a": 1, "b": 3})
		So(GetFields(ctx).String(), ShouldEqual, "{a:1, b:3}")
	})
}

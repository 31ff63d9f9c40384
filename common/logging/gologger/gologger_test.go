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

package gologger

import (
	"bytes"
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/logging"
)

func TestGoLogger(t *testing.T) {
	Convey(`A go-logging backed logger`, t, func() {
		buf := &bytes.Buffer{}
		lc := &LoggerConfig{Format: "%{level:.4s} %{message}", Out: buf}
		ctx := lc.Use(context.Background())

		Convey(`writes messages at or above the context level`, func() {
			ctx = logging.SetLevel(ctx, logging.Info)
			logging.Debugf(ctx, "quiet")
			logging.Infof(ctx, "uploaded %d bytes", 12)
			So(buf.String(), ShouldEqual, "INFO uploaded 12 bytes\n")
		})

		Convey(`appends fields`, func() {
			ctx = logging.SetField(ctx, "method", "edits.get")
			logging.Warningf(ctx, "retrying")
			So(buf.String(), ShouldEqual, "WARN retrying {method:edits.get}\n")
		})
	})
}

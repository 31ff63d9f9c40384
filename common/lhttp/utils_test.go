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

package lhttp

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "go.chromium.org/playpublisher/common/testing/assertions"
)

func TestIsLocalHost(t *testing.T) {
	t.Parallel()

	Convey(`IsLocalHost`, t, func() {
		for _, h := range []string{"localhost", "localhost:8080", "127.0.0.1", "127.0.0.1:1", "[::1]:80", ""} {
			So(IsLocalHost(h), ShouldBeTrue)
		}
		for _, h := range []string{"androidpublisher.googleapis.com", "10.0.0.1:80", "example.com:443"} {
			So(IsLocalHost(h), ShouldBeFalse)
		}
	})
}

func TestCheckEndpoint(t *testing.T) {
	t.Parallel()

	Convey(`CheckEndpoint`, t, func() {
		So(CheckEndpoint("https://androidpublisher.googleapis.com/"), ShouldBeNil)
		So(CheckEndpoint("http://127.0.0.1:8080/androidpublisher/v3/"), ShouldBeNil)
		So(CheckEndpoint("http://localhost:1111"), ShouldBeNil)

		So(CheckEndpoint("http://androidpublisher.googleapis.com/"), ShouldErrLike, "can only be used with local servers")
		So(CheckEndpoint("androidpublisher.googleapis.com"), ShouldErrLike, "has no host")
		So(CheckEndpoint("ftp://example.com/"), ShouldErrLike, `unsupported scheme "ftp"`)
		So(CheckEndpoint("https://%zz"), ShouldNotBeNil)
	})
}

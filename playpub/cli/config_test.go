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

package cli

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/logging"
	. "go.chromium.org/playpublisher/common/testing/assertions"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	Convey(`LoadConfig`, t, func() {
		dir := t.TempDir()
		write := func(content string) string {
			path := filepath.Join(dir, "playpub.yaml")
			So(os.WriteFile(path, []byte(content), 0600), ShouldBeNil)
			return path
		}

		Convey(`reads a full configuration`, func() {
			key := filepath.Join(dir, "key.json")
			So(os.WriteFile(key, []byte("{}"), 0600), ShouldBeNil)

			cfg, err := LoadConfig(write(`
credentials: ` + key + `
package: com.example.app
user_agent: release-bot
qps: 2.5
max_concurrent: 4
retries: 5
log_level: debug
`))
			So(err, ShouldBeNil)
			So(cfg.Credentials, ShouldEqual, key)
			So(cfg.Package, ShouldEqual, "com.example.app")
			So(cfg.QPS, ShouldEqual, 2.5)
			So(cfg.MaxConcurrent, ShouldEqual, 4)
			So(cfg.retries(), ShouldEqual, 5)
			So(*cfg.LogLevel, ShouldEqual, logging.Debug)
		})

		Convey(`defaults retries`, func() {
			cfg, err := LoadConfig(write("package: com.example.app\n"))
			So(err, ShouldBeNil)
			So(cfg.retries(), ShouldEqual, DefaultRetries)

			cfg, err = LoadConfig(write("retries: 0\n"))
			So(err, ShouldBeNil)
			So(cfg.retries(), ShouldEqual, 0)
		})

		Convey(`needs explicit files to exist`, func() {
			_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
			So(err, ShouldErrLike, "reading config")
		})

		Convey(`accepts no path`, func() {
			cfg, err := LoadConfig("")
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, &Config{})
		})

		Convey(`rejects unknown fields`, func() {
			_, err := LoadConfig(write("pakage: com.example.app\n"))
			So(err, ShouldErrLike, "pakage")
		})

		Convey(`rejects bad log levels`, func() {
			_, err := LoadConfig(write("log_level: loud\n"))
			So(err, ShouldNotBeNil)
		})

		Convey(`collects every invalid field`, func() {
			_, err := LoadConfig(write(`
package: not a package
base_url: nowhere
qps: -1
retries: 100
`))
			var merr errors.MultiError
			So(err, ShouldErrAs, &merr)
			So(merr, ShouldHaveLength, 5)
			So(err, ShouldErrLike, `field Config.Package fails "android_package" (value not a package)`)
		})

		Convey(`needs secure endpoints`, func() {
			_, err := LoadConfig(write("base_url: http://androidpublisher.googleapis.com/\n"))
			So(err, ShouldErrLike, "can only be used with local servers")

			cfg, err := LoadConfig(write("base_url: http://localhost:8080/\n"))
			So(err, ShouldBeNil)
			So(cfg.BaseURL, ShouldEqual, "http://localhost:8080/")
		})

		Convey(`refuses credentials and a token together`, func() {
			key := filepath.Join(dir, "key.json")
			So(os.WriteFile(key, []byte("{}"), 0600), ShouldBeNil)
			_, err := LoadConfig(write("credentials: " + key + "\ntoken: tok\n"))
			So(err, ShouldErrLike, `fails "excluded_with"`)
		})

		Convey(`needs credentials to exist`, func() {
			_, err := LoadConfig(write("credentials: " + filepath.Join(dir, "nope.json") + "\n"))
			So(err, ShouldErrLike, `fails "file"`)
		})
	})
}

func TestPackageNames(t *testing.T) {
	t.Parallel()

	Convey(`Package names`, t, func() {
		for _, name := range []string{"com.example", "com.example.app_2", "a.b.c.D"} {
			So((&Config{Package: name}).Validate(), ShouldBeNil)
		}
		for _, name := range []string{"example", "com..example", "1com.example", "com.example.", "com.ex-ample"} {
			So((&Config{Package: name}).Validate(), ShouldNotBeNil)
		}
	})
}

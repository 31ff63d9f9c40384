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
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/playpub/fakeplay"
)

const pkg = "com.example.app"

// testEnv runs playpub against a fake.
type testEnv struct {
	fake *fakeplay.Server
	dir  string
	cfg  string
}

func newTestEnv(t *testing.T, extraConfig string) *testEnv {
	fake := fakeplay.New()
	fake.Token = "secret"
	fake.AddApp(pkg, 1)
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := filepath.Join(dir, "playpub.yaml")
	blob := fmt.Sprintf("base_url: %s/\nroot_url: %s/\nretries: 0\n%s", srv.URL, srv.URL, extraConfig)
	if err := os.WriteFile(cfg, []byte(blob), 0600); err != nil {
		t.Fatal(err)
	}
	return &testEnv{fake: fake, dir: dir, cfg: cfg}
}

func (e *testEnv) run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = Main(Params{ConfigPath: e.cfg, Out: &out, Err: &errOut}, args)
	return code, out.String(), errOut.String()
}

func (e *testEnv) file(name, content string) string {
	path := filepath.Join(e.dir, name)
	So(os.WriteFile(path, []byte(content), 0600), ShouldBeNil)
	return path
}

func TestCommands(t *testing.T) {
	t.Parallel()

	Convey(`With a configured fake`, t, func() {
		env := newTestEnv(t, "package: "+pkg+"\ntoken: secret\n")

		Convey(`edit-insert`, func() {
			code, out, _ := env.run("edit-insert")
			So(code, ShouldEqual, 0)
			var edit androidpublisher.AppEdit
			So(json.Unmarshal([]byte(out), &edit), ShouldBeNil)
			So(edit.Id, ShouldEqual, "edit-1")
			So(env.fake.Edits(pkg), ShouldEqual, 1)

			code, _, _ = env.run("edit-commit", "-not-sent-for-review", "edit-1")
			So(code, ShouldEqual, 0)
			So(env.fake.Edits(pkg), ShouldEqual, 0)
		})

		Convey(`edit-delete`, func() {
			code, _, _ := env.run("edit-insert")
			So(code, ShouldEqual, 0)
			code, out, _ := env.run("edit-delete", "edit-1")
			So(code, ShouldEqual, 0)
			So(out, ShouldEqual, "")
			So(env.fake.Edits(pkg), ShouldEqual, 0)
		})

		Convey(`upload-apk commits its own edit`, func() {
			apk := env.file("app.apk", "apk bytes")
			code, out, stderr := env.run("upload-apk", apk)
			So(code, ShouldEqual, 0)
			So(stderr, ShouldContainSubstring, "(9 B)")

			var res androidpublisher.Apk
			So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
			So(res.VersionCode, ShouldEqual, 2)
			So(env.fake.Edits(pkg), ShouldEqual, 0)
		})

		Convey(`upload-apk uses the given edit`, func() {
			So(first(env.run("edit-insert")), ShouldEqual, 0)
			code, _, _ := env.run("upload-bundle", "-edit", "edit-1", env.file("app.aab", "aab"))
			So(code, ShouldEqual, 0)
			So(env.fake.Edits(pkg), ShouldEqual, 1)
		})

		Convey(`upload-apk reports missing files`, func() {
			code, _, stderr := env.run("upload-apk", filepath.Join(env.dir, "missing.apk"))
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "opening apk")
			So(env.fake.Requests(), ShouldEqual, 0)
		})

		Convey(`internal-share`, func() {
			code, out, _ := env.run("internal-share", "-bundle", env.file("app.aab", "aab"))
			So(code, ShouldEqual, 0)
			var art androidpublisher.InternalAppSharingArtifact
			So(json.Unmarshal([]byte(out), &art), ShouldBeNil)
			So(art.DownloadUrl, ShouldStartWith, "https://play.google.com/apps/test/"+pkg+"/")
		})

		Convey(`track-update`, func() {
			code, _, stderr := env.run("track-update", "-track", "beta",
				"-version-codes", "1", "-status", "inProgress", "-fraction", "0.25",
				"-notes", "en-US=Bug fixes")
			So(code, ShouldEqual, 0)
			So(stderr, ShouldContainSubstring, "Committed edit edit-1")

			beta := env.fake.Track(pkg, "beta")
			So(beta.Releases, ShouldHaveLength, 1)
			rel := beta.Releases[0]
			So(rel.Status, ShouldEqual, "inProgress")
			So(rel.UserFraction, ShouldEqual, 0.25)
			So(rel.ReleaseNotes[0].Text, ShouldEqual, "Bug fixes")
		})

		Convey(`track-update checks the release before sending`, func() {
			for _, args := range [][]string{
				{"-track", "beta", "-version-codes", "1", "-status", "shipped"},
				{"-track", "beta", "-version-codes", "1", "-status", "inProgress"},
				{"-track", "beta", "-status", "completed"},
				{"-version-codes", "1"},
				{"-track", "beta", "-version-codes", "1", "-priority", "6"},
			} {
				code, _, stderr := env.run(append([]string{"track-update"}, args...)...)
				So(code, ShouldEqual, 1)
				So(stderr, ShouldContainSubstring, "bad release")
			}
			So(env.fake.Requests(), ShouldEqual, 0)
		})

		Convey(`track-update reports server rejections`, func() {
			code, _, stderr := env.run("track-update", "-track", "beta", "-version-codes", "7")
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "version code 7 has not been uploaded")
			So(env.fake.Edits(pkg), ShouldEqual, 0)
		})

		Convey(`tracks-list discards its edit`, func() {
			code, out, _ := env.run("tracks-list")
			So(code, ShouldEqual, 0)
			var res androidpublisher.TracksListResponse
			So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
			So(res.Tracks, ShouldHaveLength, 4)
			So(env.fake.Edits(pkg), ShouldEqual, 0)
		})

		Convey(`listing-get`, func() {
			env.fake.SetListing(pkg, &androidpublisher.Listing{Language: "en-US", Title: "Example"})
			code, out, _ := env.run("listing-get", "-language", "en-US")
			So(code, ShouldEqual, 0)
			var l androidpublisher.Listing
			So(json.Unmarshal([]byte(out), &l), ShouldBeNil)
			So(l.Title, ShouldEqual, "Example")

			code, out, _ = env.run("listing-get", "-language", "en-us")
			So(code, ShouldEqual, 0)
			So(out, ShouldContainSubstring, `"Example"`)

			code, _, stderr := env.run("listing-get", "-language", "not a language")
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "bad -language")
		})

		Convey(`reviews-list stops at the limit`, func() {
			for _, id := range []string{"r1", "r2", "r3"} {
				env.fake.AddReview(pkg, &androidpublisher.Review{ReviewId: id})
			}
			code, out, _ := env.run("reviews-list", "-max-results", "1", "-limit", "2")
			So(code, ShouldEqual, 0)
			var reviews []*androidpublisher.Review
			So(json.Unmarshal([]byte(out), &reviews), ShouldBeNil)
			So(reviews, ShouldHaveLength, 2)
			So(reviews[1].ReviewId, ShouldEqual, "r2")
			So(env.fake.Requests(), ShouldEqual, 2)
		})

		Convey(`review-reply`, func() {
			env.fake.AddReview(pkg, &androidpublisher.Review{ReviewId: "r1"})
			code, out, _ := env.run("review-reply", "r1", "Thanks", "a lot!")
			So(code, ShouldEqual, 0)
			var res androidpublisher.ReviewsReplyResponse
			So(json.Unmarshal([]byte(out), &res), ShouldBeNil)
			So(res.Result.ReplyText, ShouldEqual, "Thanks a lot!")
		})

		Convey(`purchase-product-get`, func() {
			env.fake.AddProductPurchase(pkg, "coins", "tok", &androidpublisher.ProductPurchase{OrderId: "GPA.1"})
			code, out, _ := env.run("purchase-product-get", "coins", "tok")
			So(code, ShouldEqual, 0)
			var pp androidpublisher.ProductPurchase
			So(json.Unmarshal([]byte(out), &pp), ShouldBeNil)
			So(pp.OrderId, ShouldEqual, "GPA.1")

			code, _, stderr := env.run("purchase-product-get", "coins", "other")
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "bad request")
		})

		Convey(`purchase-subscription-get`, func() {
			env.fake.AddSubscriptionPurchase(pkg, "monthly", "tok", &androidpublisher.SubscriptionPurchase{AutoRenewing: true})
			code, out, _ := env.run("purchase-subscription-get", "monthly", "tok")
			So(code, ShouldEqual, 0)
			var sp androidpublisher.SubscriptionPurchase
			So(json.Unmarshal([]byte(out), &sp), ShouldBeNil)
			So(sp.AutoRenewing, ShouldBeTrue)
		})

		Convey(`voided-list`, func() {
			for i, ts := range []int64{1000, 2000, 3000} {
				env.fake.AddVoidedPurchase(pkg, &androidpublisher.VoidedPurchase{
					OrderId:          fmt.Sprintf("GPA.%d", i),
					VoidedTimeMillis: ts,
				})
			}
			code, out, _ := env.run("voided-list", "-start-time", "1970-01-01T00:00:01.5Z")
			So(code, ShouldEqual, 0)
			var voided []*androidpublisher.VoidedPurchase
			So(json.Unmarshal([]byte(out), &voided), ShouldBeNil)
			So(voided, ShouldHaveLength, 2)

			code, _, stderr := env.run("voided-list", "-start-time", "yesterday")
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "bad -start-time")
		})

		Convey(`checks positional arguments`, func() {
			code, _, stderr := env.run("edit-commit")
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "expected at least 1 positional arguments, got 0")

			code, _, stderr = env.run("edit-insert", "extra")
			So(code, ShouldEqual, 1)
			So(stderr, ShouldContainSubstring, "expected at most 0 positional arguments, got 1")
		})

		Convey(`flags override the configuration`, func() {
			code, _, _ := env.run("edit-insert", "-token", "wrong")
			So(code, ShouldEqual, 1)

			env.fake.AddApp("com.example.other")
			code, out, _ := env.run("edit-insert", "-package", "com.example.other")
			So(code, ShouldEqual, 0)
			So(out, ShouldContainSubstring, `"edit-1"`)
			So(env.fake.Edits("com.example.other"), ShouldEqual, 1)
		})

		Convey(`version`, func() {
			code, out, _ := env.run("version")
			So(code, ShouldEqual, 0)
			So(out, ShouldEqual, "playpub "+Version+"\n")
		})
	})

	Convey(`Without a package`, t, func() {
		env := newTestEnv(t, "token: secret\n")
		code, _, stderr := env.run("edit-insert")
		So(code, ShouldEqual, 1)
		So(stderr, ShouldContainSubstring, "no package name")
		So(env.fake.Requests(), ShouldEqual, 0)
	})

	Convey(`Without credentials`, t, func() {
		env := newTestEnv(t, "package: "+pkg+"\n")
		code, _, stderr := env.run("edit-insert")
		So(code, ShouldEqual, 1)
		So(stderr, ShouldContainSubstring, "no credentials")

		code, _, _ = env.run("edit-insert", "-token", "secret")
		So(code, ShouldEqual, 0)
	})

	Convey(`With a bad configuration`, t, func() {
		env := newTestEnv(t, "package: "+pkg+"\ntoken: secret\nqps: -1\n")
		code, _, stderr := env.run("edit-insert")
		So(code, ShouldEqual, 1)
		So(stderr, ShouldContainSubstring, `field Config.QPS fails "gte"`)
		So(env.fake.Requests(), ShouldEqual, 0)
	})
}

func first(code int, _, _ string) int {
	return code
}

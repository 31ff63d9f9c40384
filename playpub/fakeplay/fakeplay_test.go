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

package fakeplay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/api/googleapi"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/api/gensupport"
	"go.chromium.org/playpublisher/common/auth"
	"go.chromium.org/playpublisher/common/clock/testclock"
	. "go.chromium.org/playpublisher/common/testing/assertions"
)

var testTime = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func TestFake(t *testing.T) {
	t.Parallel()

	Convey(`With a fake`, t, func() {
		ctx := context.Background()
		tc := testclock.New(testTime)

		fake := New()
		fake.Token = "secret"
		fake.Clock = tc
		fake.AddApp("com.example.app", 1)
		srv := httptest.NewServer(fake)
		defer srv.Close()

		svc, err := androidpublisher.NewService(ctx, androidpublisher.Options{
			Auth:        auth.StaticToken("secret"),
			BasePath:    srv.URL + "/",
			RootURL:     srv.URL + "/",
			MaxAttempts: 1,
		})
		So(err, ShouldBeNil)
		const pkg = "com.example.app"

		Convey(`rejects bad tokens`, func() {
			other, err := androidpublisher.NewService(ctx, androidpublisher.Options{
				Auth:        auth.StaticToken("other"),
				BasePath:    srv.URL + "/",
				MaxAttempts: 1,
			})
			So(err, ShouldBeNil)
			_, err = other.Edits.Insert(pkg, &androidpublisher.AppEdit{}).Do()
			var badReq *gensupport.BadRequestError
			So(err, ShouldErrAs, &badReq)
			So(badReq.Err.Code, ShouldEqual, http.StatusUnauthorized)
		})

		Convey(`reports unknown packages`, func() {
			_, err := svc.Edits.Insert("com.unknown", &androidpublisher.AppEdit{}).Do()
			var badReq *gensupport.BadRequestError
			So(err, ShouldErrAs, &badReq)
			So(badReq.Err.Code, ShouldEqual, http.StatusNotFound)
			So(badReq.Err.Errors[0].Reason, ShouldEqual, "applicationNotFound")
		})

		Convey(`runs an edit through a release`, func() {
			edit, err := svc.Edits.Insert(pkg, &androidpublisher.AppEdit{}).Do()
			So(err, ShouldBeNil)
			So(edit.Id, ShouldEqual, "edit-1")
			So(edit.ExpiryTimeSeconds, ShouldEqual, "1709290800")

			apk, err := svc.Edits.Apks.Upload(pkg, edit.Id).Media(strings.NewReader("apk bytes")).Do()
			So(err, ShouldBeNil)
			So(apk.VersionCode, ShouldEqual, 2)
			So(apk.Binary.Sha256, ShouldHaveLength, 64)

			apks, err := svc.Edits.Apks.List(pkg, edit.Id).Do()
			So(err, ShouldBeNil)
			So(apks.Apks, ShouldHaveLength, 1)

			_, err = svc.Edits.Tracks.Update(pkg, edit.Id, "beta", &androidpublisher.Track{
				Releases: []*androidpublisher.TrackRelease{{
					Status:       "completed",
					VersionCodes: googleapi.Int64s{1, 2},
				}},
			}).Do()
			So(err, ShouldBeNil)

			_, err = svc.Edits.Validate(pkg, edit.Id).Do()
			So(err, ShouldBeNil)
			So(fake.Track(pkg, "beta").Releases, ShouldBeEmpty)

			_, err = svc.Edits.Commit(pkg, edit.Id).ChangesNotSentForReview(true).Do()
			So(err, ShouldBeNil)
			beta := fake.Track(pkg, "beta")
			So(beta.Releases, ShouldHaveLength, 1)
			So(beta.Releases[0].VersionCodes, ShouldResemble, googleapi.Int64s{1, 2})
			So(fake.Edits(pkg), ShouldEqual, 0)
		})

		Convey(`refuses releases of unknown versions`, func() {
			edit, err := svc.Edits.Insert(pkg, nil).Do()
			So(err, ShouldBeNil)
			_, err = svc.Edits.Tracks.Update(pkg, edit.Id, "alpha", &androidpublisher.Track{
				Releases: []*androidpublisher.TrackRelease{{Status: "completed", VersionCodes: googleapi.Int64s{9}}},
			}).Do()
			So(err, ShouldBeNil)

			_, err = svc.Edits.Commit(pkg, edit.Id).Do()
			So(err, ShouldErrLike, "version code 9 has not been uploaded")
			So(fake.Edits(pkg), ShouldEqual, 1)
		})

		Convey(`expires edits`, func() {
			edit, err := svc.Edits.Insert(pkg, nil).Do()
			So(err, ShouldBeNil)
			tc.Add(2 * time.Hour)
			_, err = svc.Edits.Get(pkg, edit.Id).Do()
			var badReq *gensupport.BadRequestError
			So(err, ShouldErrAs, &badReq)
			So(badReq.Err.Errors[0].Reason, ShouldEqual, "editNotFound")
		})

		Convey(`deletes edits`, func() {
			edit, err := svc.Edits.Insert(pkg, nil).Do()
			So(err, ShouldBeNil)
			So(svc.Edits.Delete(pkg, edit.Id).Do(), ShouldBeNil)
			So(fake.Edits(pkg), ShouldEqual, 0)
		})

		Convey(`serves listings`, func() {
			fake.SetListing(pkg, &androidpublisher.Listing{Language: "de-DE", Title: "Beispiel"})
			edit, err := svc.Edits.Insert(pkg, nil).Do()
			So(err, ShouldBeNil)

			l, err := svc.Edits.Listings.Get(pkg, edit.Id, "de-DE").Do()
			So(err, ShouldBeNil)
			So(l.Title, ShouldEqual, "Beispiel")

			_, err = svc.Edits.Listings.Get(pkg, edit.Id, "fr-FR").Do()
			So(err, ShouldErrLike, "No listing for language fr-FR")
		})

		Convey(`pages reviews and takes replies`, func() {
			for _, id := range []string{"r1", "r2", "r3"} {
				fake.AddReview(pkg, &androidpublisher.Review{ReviewId: id})
			}

			var ids []string
			err := svc.Reviews.List(pkg).MaxResults(2).Pages(ctx, func(res *androidpublisher.ReviewsListResponse) error {
				for _, r := range res.Reviews {
					ids = append(ids, r.ReviewId)
				}
				return nil
			})
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"r1", "r2", "r3"})

			res, err := svc.Reviews.Reply(pkg, "r2", &androidpublisher.ReviewsReplyRequest{ReplyText: "Thanks!"}).Do()
			So(err, ShouldBeNil)
			So(res.Result.ReplyText, ShouldEqual, "Thanks!")
			So(res.Result.LastEdited.Seconds, ShouldEqual, testTime.Unix())

			rev, err := svc.Reviews.Get(pkg, "r2").Do()
			So(err, ShouldBeNil)
			So(rev.Comments, ShouldHaveLength, 1)
			So(rev.Comments[0].DeveloperComment.Text, ShouldEqual, "Thanks!")
		})

		Convey(`serves purchases`, func() {
			fake.AddProductPurchase(pkg, "coins", "tok", &androidpublisher.ProductPurchase{OrderId: "GPA.1"})
			pp, err := svc.Purchases.Products.Get(pkg, "coins", "tok").Do()
			So(err, ShouldBeNil)
			So(pp.OrderId, ShouldEqual, "GPA.1")
			So(pp.AcknowledgementState, ShouldEqual, androidpublisher.AcknowledgementStateYetToBeAcknowledged)

			err = svc.Purchases.Products.Acknowledge(pkg, "coins", "tok", &androidpublisher.ProductPurchasesAcknowledgeRequest{}).Do()
			So(err, ShouldBeNil)
			So(fake.ProductPurchase(pkg, "coins", "tok").AcknowledgementState, ShouldEqual, androidpublisher.AcknowledgementStateAcknowledged)

			fake.AddSubscriptionPurchase(pkg, "monthly", "tok", &androidpublisher.SubscriptionPurchase{AutoRenewing: true})
			So(svc.Purchases.Subscriptions.Cancel(pkg, "monthly", "tok").Do(), ShouldBeNil)
			sub, err := svc.Purchases.Subscriptions.Get(pkg, "monthly", "tok").Do()
			So(err, ShouldBeNil)
			So(sub.AutoRenewing, ShouldBeFalse)
			So(sub.CancelReason, ShouldEqual, androidpublisher.CancelReasonDeveloperCanceled)
		})

		Convey(`filters voided purchases`, func() {
			for i, ts := range []int64{1000, 2000, 3000} {
				fake.AddVoidedPurchase(pkg, &androidpublisher.VoidedPurchase{
					OrderId:          string(rune('a' + i)),
					VoidedTimeMillis: ts,
				})
			}
			res, err := svc.Purchases.Voidedpurchases.List(pkg).StartTime(1500).Do()
			So(err, ShouldBeNil)
			So(res.VoidedPurchases, ShouldHaveLength, 2)
			So(res.PageInfo.TotalResults, ShouldEqual, 2)
		})

		Convey(`shares artifacts`, func() {
			art, err := svc.Internalappsharingartifacts.Uploadapk(pkg).Media(strings.NewReader("apk")).Do()
			So(err, ShouldBeNil)
			So(art.DownloadUrl, ShouldStartWith, "https://play.google.com/apps/test/com.example.app/")
			So(art.Sha256, ShouldHaveLength, 64)
		})
	})
}

func TestPage(t *testing.T) {
	t.Parallel()

	Convey(`page`, t, func() {
		q := listQuery{MaxResults: 2}
		start, end, next, ok := q.page(5, 10)
		So(ok, ShouldBeTrue)
		So([]int{start, end}, ShouldResemble, []int{0, 2})
		So(next, ShouldEqual, "2")

		q.Token = "4"
		start, end, next, ok = q.page(5, 10)
		So(ok, ShouldBeTrue)
		So([]int{start, end}, ShouldResemble, []int{4, 5})
		So(next, ShouldEqual, "")

		q.Token = "x"
		_, _, _, ok = q.page(5, 10)
		So(ok, ShouldBeFalse)
	})
}

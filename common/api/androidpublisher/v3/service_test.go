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

package androidpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/api/gensupport"
	"go.chromium.org/playpublisher/common/auth"
	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/retry/transient"
	. "go.chromium.org/playpublisher/common/testing/assertions"
)

type seenRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fakeServer replies to requests from a queue, serving "{}" once it is
// empty.
type fakeServer struct {
	*httptest.Server

	mu      sync.Mutex
	seen    []seenRequest
	replies []func(w http.ResponseWriter)
}

func newFakeServer() *fakeServer {
	f := &fakeServer{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.seen = append(f.seen, seenRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
			Header: r.Header,
			Body:   body,
		})
		reply := func(w http.ResponseWriter) { fmt.Fprint(w, "{}") }
		if len(f.replies) > 0 {
			reply, f.replies = f.replies[0], f.replies[1:]
		}
		f.mu.Unlock()
		reply(w)
	}))
	return f
}

func (f *fakeServer) enqueue(code int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		fmt.Fprint(w, body)
	})
}

func (f *fakeServer) requests() []seenRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]seenRequest(nil), f.seen...)
}

type failingAuth struct{}

func (failingAuth) Token(context.Context, []string) (*oauth2.Token, error) {
	return nil, errors.Reason("no credentials").Err()
}

type sizedReader struct {
	size int64
}

func (r sizedReader) Read([]byte) (int, error) { return 0, io.EOF }
func (r sizedReader) Size() int64              { return r.size }

func TestService(t *testing.T) {
	t.Parallel()

	Convey(`With a fake Play server`, t, func() {
		ctx := context.Background()
		srv := newFakeServer()
		defer srv.Close()

		newSvc := func(a auth.Authenticator) *Service {
			svc, err := NewService(ctx, Options{
				Auth:        a,
				BasePath:    srv.URL + "/",
				RootURL:     srv.URL + "/",
				UserAgent:   "playpub-test",
				MaxAttempts: 1,
			})
			So(err, ShouldBeNil)
			return svc
		}
		svc := newSvc(auth.StaticToken("tok"))

		Convey(`inserts an edit`, func() {
			srv.enqueue(200, `{"id": "e1", "expiryTimeSeconds": "1700000000"}`)

			edit, err := svc.Edits.Insert("com.example.app", &AppEdit{}).Context(ctx).Do()
			So(err, ShouldBeNil)
			So(edit.Id, ShouldEqual, "e1")
			So(edit.ExpiryTimeSeconds, ShouldEqual, "1700000000")
			So(edit.HTTPStatusCode, ShouldEqual, 200)

			reqs := srv.requests()
			So(reqs, ShouldHaveLength, 1)
			So(reqs[0].Method, ShouldEqual, "POST")
			So(reqs[0].Path, ShouldEqual, "/androidpublisher/v3/applications/com.example.app/edits")
			So(reqs[0].Query.Get("alt"), ShouldEqual, "json")
			So(string(reqs[0].Body), ShouldEqual, "{}")
			So(reqs[0].Header.Get("Authorization"), ShouldEqual, "Bearer tok")
			So(reqs[0].Header.Get("Content-Type"), ShouldEqual, "application/json")
			So(reqs[0].Header.Get("User-Agent"), ShouldEndWith, " playpub-test")
		})

		Convey(`sends a nil body as no body`, func() {
			_, err := svc.Edits.Insert("com.example.app", nil).Do()
			So(err, ShouldBeNil)
			So(srv.requests()[0].Body, ShouldBeEmpty)
		})

		Convey(`commits with a typed query parameter`, func() {
			_, err := svc.Edits.Commit("p", "e").ChangesNotSentForReview(true).Do()
			So(err, ShouldBeNil)
			req := srv.requests()[0]
			So(req.Path, ShouldEqual, "/androidpublisher/v3/applications/p/edits/e:commit")
			So(req.Query.Get("changesNotSentForReview"), ShouldEqual, "true")
		})

		Convey(`updates in-app products`, func() {
			srv.enqueue(200, `{"sku": "coins", "status": "active"}`)

			p, err := svc.Inappproducts.Update("p", "coins", &InAppProduct{
				Sku:          "coins",
				PurchaseType: "managedUser",
				Prices:       map[string]Price{"US": {Currency: "USD", PriceMicros: "990000"}},
			}).AutoConvertMissingPrices(true).Do()
			So(err, ShouldBeNil)
			So(p.Status, ShouldEqual, "active")

			req := srv.requests()[0]
			So(req.Method, ShouldEqual, "PUT")
			So(req.Path, ShouldEqual, "/androidpublisher/v3/applications/p/inappproducts/coins")
			So(req.Query.Get("autoConvertMissingPrices"), ShouldEqual, "true")
			var body map[string]any
			So(json.Unmarshal(req.Body, &body), ShouldBeNil)
			So(body["prices"], ShouldResemble, map[string]any{
				"US": map[string]any{"currency": "USD", "priceMicros": "990000"},
			})
		})

		Convey(`escapes path parameters`, func() {
			_, err := svc.Edits.Listings.Get("p", "e/1", "de-AT").Do()
			So(err, ShouldBeNil)
			So(srv.requests()[0].Path, ShouldEqual, "/androidpublisher/v3/applications/p/edits/e%2F1/listings/de-AT")
		})

		Convey(`expands integer path parameters`, func() {
			_, err := svc.Edits.Expansionfiles.Get("p", "e", 42, "main").Do()
			So(err, ShouldBeNil)
			So(srv.requests()[0].Path, ShouldEqual, "/androidpublisher/v3/applications/p/edits/e/apks/42/expansionFiles/main")
		})

		Convey(`rejects an oversized apk before sending`, func() {
			_, err := svc.Edits.Apks.Upload("p", "e").Media(sizedReader{11000000000}).Do()
			var limitErr *gensupport.UploadSizeLimitError
			So(err, ShouldErrAs, &limitErr)
			So(limitErr.Size, ShouldEqual, 11000000000)
			So(limitErr.Limit, ShouldEqual, 10737418240)
			So(srv.requests(), ShouldHaveLength, 0)
		})

		Convey(`uploads an apk`, func() {
			srv.enqueue(200, `{"versionCode": 7, "binary": {"sha1": "abc"}}`)

			apk, err := svc.Edits.Apks.Upload("p", "e").
				Media(strings.NewReader("PK\x03\x04apk"), googleapi.ContentType("application/vnd.android.package-archive")).
				Do()
			So(err, ShouldBeNil)
			So(apk.VersionCode, ShouldEqual, 7)
			So(apk.Binary.Sha1, ShouldEqual, "abc")

			req := srv.requests()[0]
			So(req.Path, ShouldEqual, "/upload/androidpublisher/v3/applications/p/edits/e/apks")
			So(req.Query.Get("uploadType"), ShouldEqual, "multipart")

			mt, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
			So(err, ShouldBeNil)
			So(mt, ShouldEqual, "multipart/related")
			mr := multipart.NewReader(strings.NewReader(string(req.Body)), params["boundary"])
			meta, err := mr.NextPart()
			So(err, ShouldBeNil)
			blob, _ := io.ReadAll(meta)
			So(string(blob), ShouldEqual, "{}")
			media, err := mr.NextPart()
			So(err, ShouldBeNil)
			So(media.Header.Get("Content-Type"), ShouldEqual, "application/vnd.android.package-archive")
			blob, _ = io.ReadAll(media)
			So(string(blob), ShouldEqual, "PK\x03\x04apk")
		})

		Convey(`reports a missing image as a bad request`, func() {
			srv.enqueue(404, `{"error": {"code": 404, "message": "Image not found."}}`)

			err := svc.Edits.Images.Delete("p", "e", "en-US", "icon", "img1").Do()
			var badReq *gensupport.BadRequestError
			So(err, ShouldErrAs, &badReq)
			So(badReq.Err.Code, ShouldEqual, 404)
			So(badReq.Err.Message, ShouldEqual, "Image not found.")
			So(srv.requests()[0].Method, ShouldEqual, "DELETE")
		})

		Convey(`fails without a token before sending`, func() {
			_, err := newSvc(failingAuth{}).Edits.Get("p", "e").Do()
			var tokErr *gensupport.MissingTokenError
			So(err, ShouldErrAs, &tokErr)
			So(err, ShouldErrLike, "no credentials")
			So(srv.requests(), ShouldHaveLength, 0)
		})

		Convey(`rejects ad-hoc parameters clashing with the call's`, func() {
			for _, name := range []string{"packageName", "editId", "track"} {
				_, err := svc.Edits.Tracks.Get("p", "e", "beta").Param(name, "x").Do()
				var clash *gensupport.FieldClashError
				So(err, ShouldErrAs, &clash)
				So(clash.Name, ShouldEqual, name)
			}
			for _, name := range []string{"maxResults", "startIndex", "token", "translationLanguage", "alt", "uploadType"} {
				_, err := svc.Reviews.List("p").Param(name, "x").Do()
				var clash *gensupport.FieldClashError
				So(err, ShouldErrAs, &clash)
				So(clash.Name, ShouldEqual, name)
			}
			So(srv.requests(), ShouldHaveLength, 0)
		})

		Convey(`passes other ad-hoc parameters`, func() {
			_, err := svc.Reviews.List("p").MaxResults(10).Param("prettyPrint", "false").Do()
			So(err, ShouldBeNil)
			q := srv.requests()[0].Query
			So(q.Get("maxResults"), ShouldEqual, "10")
			So(q.Get("prettyPrint"), ShouldEqual, "false")
		})

		Convey(`sends voided purchase filters`, func() {
			_, err := svc.Purchases.Voidedpurchases.List("p").StartTime(1).EndTime(2).Type(1).Do()
			So(err, ShouldBeNil)
			q := srv.requests()[0].Query
			So(q.Get("startTime"), ShouldEqual, "1")
			So(q.Get("endTime"), ShouldEqual, "2")
			So(q.Get("type"), ShouldEqual, "1")
		})

		Convey(`pages through reviews`, func() {
			srv.enqueue(200, `{"reviews": [{"reviewId": "r1"}], "tokenPagination": {"nextPageToken": "t2"}}`)
			srv.enqueue(200, `{"reviews": [{"reviewId": "r2"}]}`)

			call := svc.Reviews.List("p")
			var ids []string
			err := call.Pages(ctx, func(page *ReviewsListResponse) error {
				for _, r := range page.Reviews {
					ids = append(ids, r.ReviewId)
				}
				return nil
			})
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"r1", "r2"})

			reqs := srv.requests()
			So(reqs, ShouldHaveLength, 2)
			So(reqs[0].Query.Get("token"), ShouldEqual, "")
			So(reqs[1].Query.Get("token"), ShouldEqual, "t2")
			So(call.urlParams_.Has("token"), ShouldBeFalse)

			_, err = call.Do()
			So(err, ShouldBeNil)
			_, sent := srv.requests()[2].Query["token"]
			So(sent, ShouldBeFalse)
		})

		Convey(`restores the starting page token after paging`, func() {
			srv.enqueue(200, `{"tokenPagination": {"nextPageToken": "t3"}}`)
			srv.enqueue(200, `{}`)

			call := svc.Purchases.Voidedpurchases.List("p").Token("t2")
			So(call.Pages(ctx, func(*VoidedPurchasesListResponse) error { return nil }), ShouldBeNil)
			So(call.urlParams_.Get("token"), ShouldEqual, "t2")

			reqs := srv.requests()
			So(reqs, ShouldHaveLength, 2)
			So(reqs[0].Query.Get("token"), ShouldEqual, "t2")
			So(reqs[1].Query.Get("token"), ShouldEqual, "t3")
		})

		Convey(`returns server errors as bad requests`, func() {
			srv.enqueue(503, `{"error":{"code":503,"message":"backend down"}}`)

			_, err := svc.Edits.Get("p", "e").Do()
			badReq, ok := err.(*gensupport.BadRequestError)
			So(ok, ShouldBeTrue)
			So(badReq.Err.Code, ShouldEqual, 503)
			So(badReq.Err.Header.Get("Content-Type"), ShouldEqual, "application/json")
			So(transient.Tag.In(err), ShouldBeTrue)
		})

		Convey(`stops paging on a callback error`, func() {
			srv.enqueue(200, `{"tokenPagination": {"nextPageToken": "t2"}}`)
			err := svc.Reviews.List("p").Pages(ctx, func(*ReviewsListResponse) error {
				return errors.New("stop")
			})
			So(err, ShouldErrLike, "stop")
			So(srv.requests(), ShouldHaveLength, 1)
		})

		Convey(`downloads a system apk`, func() {
			srv.mu.Lock()
			srv.replies = append(srv.replies, func(w http.ResponseWriter) {
				w.Header().Set("Content-Type", "application/octet-stream")
				fmt.Fprint(w, "APKDATA")
			})
			srv.mu.Unlock()

			res, err := svc.Systemapks.Variants.Download("p", 3, 1).Download()
			So(err, ShouldBeNil)
			defer res.Body.Close()
			blob, err := io.ReadAll(res.Body)
			So(err, ShouldBeNil)
			So(string(blob), ShouldEqual, "APKDATA")

			req := srv.requests()[0]
			So(req.Path, ShouldEqual, "/androidpublisher/v3/applications/p/systemApks/3/variants/1:download")
			So(req.Query.Get("alt"), ShouldEqual, "media")
		})

		Convey(`decodes subscription purchases`, func() {
			srv.enqueue(200, `{
				"expiryTimeMillis": "1700000000000",
				"paymentState": 0,
				"cancelReason": 3,
				"acknowledgementState": 1
			}`)

			sub, err := svc.Purchases.Subscriptions.Get("p", "monthly", "tok").Do()
			So(err, ShouldBeNil)
			So(sub.ExpiryTimeMillis, ShouldEqual, int64(1700000000000))
			So(sub.PaymentState, ShouldNotBeNil)
			So(*sub.PaymentState, ShouldEqual, PaymentStatePending)
			So(sub.PurchaseType, ShouldBeNil)
			So(sub.CancelReason, ShouldEqual, CancelReasonDeveloperCanceled)
			So(sub.AcknowledgementState, ShouldEqual, AcknowledgementStateAcknowledged)
		})

		Convey(`uses the default scope`, func() {
			var scopes []string
			a := authFunc(func(ctx context.Context, s []string) (*oauth2.Token, error) {
				scopes = s
				return &oauth2.Token{AccessToken: "x"}, nil
			})
			err := newSvc(a).Orders.Refund("p", "o").Revoke(true).Do()
			So(err, ShouldBeNil)
			So(scopes, ShouldResemble, []string{AndroidpublisherScope})
			So(srv.requests()[0].Query.Get("revoke"), ShouldEqual, "true")
		})
	})
}

type authFunc func(context.Context, []string) (*oauth2.Token, error)

func (f authFunc) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	return f(ctx, scopes)
}

func TestNewService(t *testing.T) {
	t.Parallel()

	Convey(`NewService`, t, func() {
		ctx := context.Background()

		Convey(`defaults to production`, func() {
			svc, err := NewService(ctx, Options{})
			So(err, ShouldBeNil)
			So(svc.BasePath(), ShouldEqual, basePath)
			So(svc.RootURL(), ShouldEqual, rootURL)
		})

		Convey(`rejects relative URLs`, func() {
			_, err := NewService(ctx, Options{BasePath: "/relative/"})
			So(err, ShouldErrLike, "bad base path")
			_, err = NewService(ctx, Options{RootURL: "::"})
			So(err, ShouldErrLike, "bad root URL")
		})

		Convey(`setters return the previous value`, func() {
			svc, err := NewService(ctx, Options{UserAgent: "a"})
			So(err, ShouldBeNil)
			So(svc.SetUserAgent("b"), ShouldEqual, "a")
			So(svc.UserAgent(), ShouldEqual, "b")
			So(svc.SetBasePath("http://localhost/"), ShouldEqual, basePath)
			So(svc.SetRootURL("http://localhost/"), ShouldEqual, rootURL)
			So(svc.config().BasePath, ShouldEqual, "http://localhost/")
		})

		Convey(`New wants a client`, func() {
			_, err := New(nil)
			So(err, ShouldErrLike, "client is nil")
			svc, err := New(http.DefaultClient)
			So(err, ShouldBeNil)
			So(svc.Edits.Tracks, ShouldNotBeNil)
			So(svc.Purchases.Voidedpurchases, ShouldNotBeNil)
		})
	})
}

func TestSchemas(t *testing.T) {
	t.Parallel()

	Convey(`Schemas`, t, func() {
		Convey(`omit empty fields unless forced`, func() {
			blob, err := json.Marshal(&Track{Track: "beta"})
			So(err, ShouldBeNil)
			So(string(blob), ShouldEqual, `{"track":"beta"}`)

			blob, err = json.Marshal(&AppDetails{ForceSendFields: []string{"ContactEmail"}})
			So(err, ShouldBeNil)
			So(string(blob), ShouldEqual, `{"contactEmail":""}`)
		})

		Convey(`send versionCodes as strings`, func() {
			blob, err := json.Marshal(&TrackRelease{VersionCodes: googleapi.Int64s{1, 22}})
			So(err, ShouldBeNil)
			So(string(blob), ShouldEqual, `{"versionCodes":["1","22"]}`)
		})
	})
}

func TestEnums(t *testing.T) {
	t.Parallel()

	Convey(`Enums have names`, t, func() {
		So(PurchaseStateCanceled.String(), ShouldEqual, "canceled")
		So(PaymentStatePendingDeferredUpgradeDowngrade.String(), ShouldEqual, "pending deferred upgrade/downgrade")
		So(VoidedReasonFriendlyFraud.String(), ShouldEqual, "friendly fraud")
		So(PurchaseState(9).String(), ShouldEqual, "PurchaseState(9)")
		So(fmt.Sprint(VoidedSourceGoogle), ShouldEqual, "google")
	})
}

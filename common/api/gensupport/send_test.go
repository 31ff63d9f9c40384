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

package gensupport

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
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/auth"
	"go.chromium.org/playpublisher/common/clock/testclock"
	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/lhttp"
	"go.chromium.org/playpublisher/common/logging"
	"go.chromium.org/playpublisher/common/logging/memlogger"
	"go.chromium.org/playpublisher/common/retry"
	"go.chromium.org/playpublisher/common/retry/transient"
	. "go.chromium.org/playpublisher/common/testing/assertions"
)

// recorder is a Delegate recording what it observes.
type recorder struct {
	events []string

	fallback string
	retries  int
	delay    time.Duration
}

func (r *recorder) Begin(info MethodInfo) {
	r.events = append(r.events, fmt.Sprintf("begin %s %s", info.HTTPMethod, info.ID))
}

func (r *recorder) PreRequest() { r.events = append(r.events, "pre-request") }

func (r *recorder) TokenFailure(error) (string, bool) {
	r.events = append(r.events, "token-failure")
	return r.fallback, r.fallback != ""
}

func (r *recorder) HTTPError(error) (time.Duration, bool) {
	r.events = append(r.events, "http-error")
	return r.retry()
}

func (r *recorder) HTTPFailure(res *http.Response, apiErr *googleapi.Error) (time.Duration, bool) {
	r.events = append(r.events, fmt.Sprintf("http-failure %d %v", res.StatusCode, apiErr != nil))
	return r.retry()
}

func (r *recorder) ResponseJSONDecodeError(string, error) {
	r.events = append(r.events, "decode-error")
}

func (r *recorder) Finished(success bool) {
	r.events = append(r.events, fmt.Sprintf("finished %v", success))
}

func (r *recorder) retry() (time.Duration, bool) {
	if r.retries == 0 {
		return 0, false
	}
	r.retries--
	return r.delay, true
}

type failingAuth struct{}

func (failingAuth) Token(context.Context, []string) (*oauth2.Token, error) {
	return nil, errors.Reason("refresh token revoked").Err()
}

// seenRequest is what the test server observed.
type seenRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

type editResource struct {
	ID     string `json:"id,omitempty"`
	Expiry int64  `json:"expiryTimeSeconds,omitempty,string"`
}

var testTime = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func TestSend(t *testing.T) {
	t.Parallel()

	Convey(`With a server`, t, func() {
		ctx, tc := testclock.UseTime(context.Background(), testTime)
		tc.SetTimerCallback(func(d time.Duration) { tc.Add(d) })

		var lock sync.Mutex
		var seen []seenRequest
		var replies []func(w http.ResponseWriter)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			lock.Lock()
			seen = append(seen, seenRequest{
				Method: r.Method,
				Path:   r.URL.EscapedPath(),
				Query:  r.URL.Query(),
				Header: r.Header,
				Body:   string(body),
			})
			reply := func(w http.ResponseWriter) {
				fmt.Fprint(w, `{"id": "edit-1", "expiryTimeSeconds": "1709290800"}`)
			}
			if len(replies) > 0 {
				reply, replies = replies[0], replies[1:]
			}
			lock.Unlock()
			reply(w)
		}))
		defer srv.Close()

		status := func(code int, body string) func(w http.ResponseWriter) {
			return func(w http.ResponseWriter) {
				w.WriteHeader(code)
				fmt.Fprint(w, body)
			}
		}

		d := &recorder{delay: time.Second}
		cfg := &Config{
			Client:        srv.Client(),
			BasePath:      srv.URL + "/",
			RootURL:       srv.URL + "/",
			UserAgent:     "playpub-test",
			DefaultScopes: []string{"https://www.googleapis.com/auth/androidpublisher"},
			Delegate:      d,
		}
		getEdit := func() *Request {
			return &Request{
				Method:     MethodInfo{ID: "androidpublisher.edits.get", HTTPMethod: "GET"},
				Path:       "androidpublisher/v3/applications/{packageName}/edits/{editId}",
				PathParams: map[string]string{"packageName": "com.example.app", "editId": "a/b"},
				Params:     URLParams{},
				Result:     &editResource{},
			}
		}

		Convey(`expands the path and keeps path parameters out of the query`, func() {
			req := getEdit()
			req.Params.Set("translationLanguage", "fr")
			req.Extra = map[string]string{"debug": "1"}
			res, err := Send(ctx, cfg, req)
			So(err, ShouldBeNil)
			So(res.StatusCode, ShouldEqual, http.StatusOK)
			So(req.Result, ShouldResemble, &editResource{ID: "edit-1", Expiry: 1709290800})

			So(seen, ShouldHaveLength, 1)
			So(seen[0].Path, ShouldEqual, "/androidpublisher/v3/applications/com.example.app/edits/a%2Fb")
			So(seen[0].Query, ShouldResemble, url.Values{
				"alt":                 {"json"},
				"debug":               {"1"},
				"translationLanguage": {"fr"},
			})
			So(seen[0].Header.Get("User-Agent"), ShouldEqual, googleapi.UserAgent+" playpub-test")
			So(seen[0].Header.Get("Authorization"), ShouldEqual, "")
			So(d.events, ShouldResemble, []string{
				"begin GET androidpublisher.edits.get", "pre-request", "finished true",
			})
		})

		Convey(`keeps the part after a colon`, func() {
			req := getEdit()
			req.Method = MethodInfo{ID: "androidpublisher.edits.commit", HTTPMethod: "POST"}
			req.Path += ":commit"
			req.PathParams["editId"] = "42"
			_, err := Send(ctx, cfg, req)
			So(err, ShouldBeNil)
			So(seen[0].Method, ShouldEqual, "POST")
			So(seen[0].Path, ShouldEqual, "/androidpublisher/v3/applications/com.example.app/edits/42:commit")
		})

		Convey(`requires every path parameter`, func() {
			req := getEdit()
			delete(req.PathParams, "editId")
			_, err := Send(ctx, cfg, req)
			So(err, ShouldErrLike, `no value for path parameter "editId"`)
			So(seen, ShouldBeEmpty)
		})

		Convey(`rejects ad-hoc parameters shadowing typed ones`, func() {
			for _, name := range []string{"packageName", "editId", "translationLanguage", "alt", "uploadType"} {
				d.events = nil
				req := getEdit()
				req.Reserved = []string{"translationLanguage"}
				req.Extra = map[string]string{name: "x"}
				_, err := Send(ctx, cfg, req)
				var clash *FieldClashError
				So(err, ShouldErrAs, &clash)
				So(clash.Name, ShouldEqual, name)
				So(d.events, ShouldResemble, []string{
					"begin GET androidpublisher.edits.get", "finished false",
				})
			}
			So(seen, ShouldBeEmpty)
		})

		Convey(`sends JSON bodies without nulls`, func() {
			req := getEdit()
			req.Method.HTTPMethod = "PUT"
			req.Body = map[string]any{"id": "x", "gone": nil}
			_, err := Send(ctx, cfg, req)
			So(err, ShouldBeNil)
			So(seen[0].Body, ShouldEqual, `{"id":"x"}`)
			So(seen[0].Header.Get("Content-Type"), ShouldEqual, "application/json")
		})

		Convey(`uploads media as multipart/related`, func() {
			req := &Request{
				Method:       MethodInfo{ID: "androidpublisher.edits.apks.upload", HTTPMethod: "POST"},
				Path:         "androidpublisher/v3/applications/{packageName}/edits/{editId}/apks",
				UploadPath:   "upload/androidpublisher/v3/applications/{packageName}/edits/{editId}/apks",
				PathParams:   map[string]string{"packageName": "com.example.app", "editId": "1"},
				Media:        strings.NewReader("PK\x03\x04apk bytes"),
				MediaOptions: []googleapi.MediaOption{googleapi.ContentType("application/vnd.android.package-archive")},
				MediaLimit:   1024,
				Result:       &editResource{},
			}
			_, err := Send(ctx, cfg, req)
			So(err, ShouldBeNil)

			So(seen[0].Path, ShouldEqual, "/upload/androidpublisher/v3/applications/com.example.app/edits/1/apks")
			So(seen[0].Query.Get("uploadType"), ShouldEqual, "multipart")

			mt, params, err := mime.ParseMediaType(seen[0].Header.Get("Content-Type"))
			So(err, ShouldBeNil)
			So(mt, ShouldEqual, "multipart/related")
			mr := multipart.NewReader(strings.NewReader(seen[0].Body), params["boundary"])

			meta, err := mr.NextPart()
			So(err, ShouldBeNil)
			So(meta.Header.Get("Content-Type"), ShouldEqual, "application/json; charset=UTF-8")
			data, _ := io.ReadAll(meta)
			So(string(data), ShouldEqual, "{}")

			media, err := mr.NextPart()
			So(err, ShouldBeNil)
			So(media.Header.Get("Content-Type"), ShouldEqual, "application/vnd.android.package-archive")
			data, _ = io.ReadAll(media)
			So(string(data), ShouldEqual, "PK\x03\x04apk bytes")

			_, err = mr.NextPart()
			So(err, ShouldEqual, io.EOF)
		})

		Convey(`fails oversized uploads before sending`, func() {
			req := &Request{
				Method:     MethodInfo{ID: "androidpublisher.edits.images.upload", HTTPMethod: "POST"},
				UploadPath: "upload/{packageName}",
				PathParams: map[string]string{"packageName": "com.example.app"},
				Media:      strings.NewReader("0123456789"),
				MediaLimit: 9,
			}
			_, err := Send(ctx, cfg, req)
			var limitErr *UploadSizeLimitError
			So(err, ShouldErrAs, &limitErr)
			So(*limitErr, ShouldResemble, UploadSizeLimitError{Size: 10, Limit: 9})
			So(seen, ShouldBeEmpty)
			So(d.events, ShouldResemble, []string{
				"begin POST androidpublisher.edits.images.upload", "finished false",
			})
		})

		Convey(`returns raw responses open`, func() {
			replies = append(replies, status(http.StatusOK, "raw apk"))
			req := getEdit()
			req.Alt, req.Raw, req.Result = "media", true, nil
			res, err := Send(ctx, cfg, req)
			So(err, ShouldBeNil)
			defer res.Body.Close()
			data, err := io.ReadAll(res.Body)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "raw apk")
			So(seen[0].Query.Get("alt"), ShouldEqual, "media")
		})

		Convey(`authorization`, func() {
			Convey(`sends the token`, func() {
				cfg.Auth = auth.StaticToken("secret")
				_, err := Send(ctx, cfg, getEdit())
				So(err, ShouldBeNil)
				So(seen[0].Header.Get("Authorization"), ShouldEqual, "Bearer secret")
			})

			Convey(`requests the default scope unless told otherwise`, func() {
				var asked [][]string
				cfg.Auth = auth.New(func(_ context.Context, scopes []string) (oauth2.TokenSource, error) {
					asked = append(asked, scopes)
					return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "t"}), nil
				})
				_, err := Send(ctx, cfg, getEdit())
				So(err, ShouldBeNil)
				req := getEdit()
				req.Scopes = []string{"b", "a", "b"}
				_, err = Send(ctx, cfg, req)
				So(err, ShouldBeNil)
				So(asked, ShouldResemble, [][]string{
					{"https://www.googleapis.com/auth/androidpublisher"},
					{"a", "b"},
				})
			})

			Convey(`fails without a token and sends nothing`, func() {
				cfg.Auth = failingAuth{}
				_, err := Send(ctx, cfg, getEdit())
				var missing *MissingTokenError
				So(err, ShouldErrAs, &missing)
				So(err, ShouldErrLike, "refresh token revoked")
				So(seen, ShouldBeEmpty)
				So(d.events, ShouldResemble, []string{
					"begin GET androidpublisher.edits.get", "token-failure", "finished false",
				})
			})

			Convey(`uses the delegate's fallback token`, func() {
				cfg.Auth = failingAuth{}
				d.fallback = "fallback"
				_, err := Send(ctx, cfg, getEdit())
				So(err, ShouldBeNil)
				So(seen[0].Header.Get("Authorization"), ShouldEqual, "Bearer fallback")
			})
		})

		Convey(`error responses`, func() {
			Convey(`a Google error envelope is a bad request`, func() {
				replies = append(replies, status(http.StatusNotFound,
					`{"error": {"code": 404, "message": "Image not found.", "errors": [{"reason": "notFound", "message": "Image not found."}]}}`))
				_, err := Send(ctx, cfg, getEdit())
				var bad *BadRequestError
				So(err, ShouldErrAs, &bad)
				So(bad.Err.Code, ShouldEqual, 404)
				So(bad.Err.Message, ShouldEqual, "Image not found.")
				So(bad.Err.Errors, ShouldResemble, []googleapi.ErrorItem{{Reason: "notFound", Message: "Image not found."}})
				So(transient.Tag.In(err), ShouldBeFalse)

				var apiErr *googleapi.Error
				So(err, ShouldErrAs, &apiErr)
				So(d.events, ShouldContain, "http-failure 404 true")
			})

			Convey(`an OAuth2 error envelope is a bad request`, func() {
				replies = append(replies, status(http.StatusUnauthorized,
					`{"error": "invalid_token", "error_description": "Token expired"}`))
				_, err := Send(ctx, cfg, getEdit())
				var bad *BadRequestError
				So(err, ShouldErrAs, &bad)
				So(bad.Err.Code, ShouldEqual, 401)
				So(bad.Err.Message, ShouldEqual, "Token expired")
				So(bad.Err.Errors[0].Reason, ShouldEqual, "invalid_token")
			})

			Convey(`server errors are returned unwrapped and transient`, func() {
				replies = append(replies, status(http.StatusServiceUnavailable,
					`{"error":{"code":503,"message":"backend down"}}`))
				_, err := Send(ctx, cfg, getEdit())
				bad, ok := err.(*BadRequestError)
				So(ok, ShouldBeTrue)
				So(bad.Err.Code, ShouldEqual, 503)
				So(bad.Err.Message, ShouldEqual, "backend down")
				So(bad.Transient, ShouldBeTrue)
				So(transient.Tag.In(err), ShouldBeTrue)
				So(transient.Tag.In(errors.Annotate(err, "context").Err()), ShouldBeTrue)
			})

			Convey(`throttling is transient`, func() {
				replies = append(replies, status(http.StatusTooManyRequests, "slow down"))
				_, err := Send(ctx, cfg, getEdit())
				failure, ok := err.(*FailureError)
				So(ok, ShouldBeTrue)
				So(failure.StatusCode, ShouldEqual, http.StatusTooManyRequests)
				So(transient.Tag.In(err), ShouldBeTrue)
			})

			Convey(`anything else is a failure`, func() {
				for _, body := range []string{"<html>oops</html>", `{"error": null}`, `{"error": 12}`, ""} {
					replies = append(replies, status(http.StatusBadGateway, body))
					_, err := Send(ctx, cfg, getEdit())
					var failure *FailureError
					So(err, ShouldErrAs, &failure)
					So(failure.StatusCode, ShouldEqual, http.StatusBadGateway)
					So(failure.Body, ShouldEqual, body)
					So(transient.Tag.In(err), ShouldBeTrue)
				}
			})

			Convey(`an undecodable success is a JSON decode error`, func() {
				replies = append(replies, status(http.StatusOK, "not json"))
				_, err := Send(ctx, cfg, getEdit())
				var decodeErr *JSONDecodeError
				So(err, ShouldErrAs, &decodeErr)
				So(decodeErr.Body, ShouldEqual, "not json")
				So(d.events, ShouldResemble, []string{
					"begin GET androidpublisher.edits.get", "pre-request", "decode-error", "finished false",
				})
			})
		})

		Convey(`retries`, func() {
			unavailable := status(http.StatusServiceUnavailable, `{"error": {"code": 503, "message": "busy"}}`)

			Convey(`when the delegate asks`, func() {
				d.retries = 2
				replies = append(replies, unavailable, unavailable)
				_, err := Send(ctx, cfg, getEdit())
				So(err, ShouldBeNil)
				So(seen, ShouldHaveLength, 3)
				So(tc.Now(), ShouldEqual, testTime.Add(2*time.Second))
			})

			Convey(`no more than MaxAttempts times`, func() {
				d.retries = 100
				cfg.MaxAttempts = 3
				replies = append(replies, unavailable, unavailable, unavailable, unavailable)
				_, err := Send(ctx, cfg, getEdit())
				So(err, ShouldErrLike, "busy")
				So(seen, ShouldHaveLength, 3)
			})

			Convey(`not at all without a delegate or a policy`, func() {
				replies = append(replies, unavailable)
				_, err := Send(ctx, cfg, getEdit())
				So(err, ShouldErrLike, "busy")
				So(seen, ShouldHaveLength, 1)
			})

			Convey(`on transient errors with a transient-only policy`, func() {
				cfg.Retry = transient.Only(retry.LimitedFactory(retry.ExponentialBackoff{
					Limited:    retry.Limited{Delay: time.Second},
					Multiplier: 2,
				}, 5))

				Convey(`server errors are retried`, func() {
					replies = append(replies, unavailable, unavailable)
					_, err := Send(ctx, cfg, getEdit())
					So(err, ShouldBeNil)
					So(seen, ShouldHaveLength, 3)
					So(tc.Now(), ShouldEqual, testTime.Add(3*time.Second))
				})

				Convey(`client errors are not`, func() {
					replies = append(replies, status(http.StatusForbidden, `{"error": {"code": 403, "message": "denied"}}`))
					_, err := Send(ctx, cfg, getEdit())
					So(err, ShouldErrLike, "denied")
					So(seen, ShouldHaveLength, 1)
				})
			})

			Convey(`after transport errors`, func() {
				calls := 0
				cfg.Client = &http.Client{Transport: lhttp.RoundTripper(func(req *http.Request) (*http.Response, error) {
					calls++
					if calls == 1 {
						return nil, errors.Reason("connection reset").Err()
					}
					return srv.Client().Transport.RoundTrip(req)
				})}

				Convey(`when asked to`, func() {
					d.retries = 1
					_, err := Send(ctx, cfg, getEdit())
					So(err, ShouldBeNil)
					So(calls, ShouldEqual, 2)
					So(d.events, ShouldContain, "http-error")
				})

				Convey(`or fails with an HTTP error`, func() {
					_, err := Send(ctx, cfg, getEdit())
					_, ok := err.(*HTTPError)
					So(ok, ShouldBeTrue)
					So(err, ShouldErrLike, "connection reset")
					So(transient.Tag.In(err), ShouldBeTrue)
				})
			})

			Convey(`stop when the context is cancelled`, func() {
				cctx, cancel := context.WithCancel(ctx)
				tc.SetTimerCallback(func(time.Duration) { cancel() })
				d.retries = 5
				replies = append(replies, unavailable)
				_, err := Send(cctx, cfg, getEdit())
				var cancelled *CancelledError
				So(err, ShouldErrAs, &cancelled)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(seen, ShouldHaveLength, 1)
			})

			Convey(`not when the media can not be replayed`, func() {
				d.retries = 5
				replies = append(replies, unavailable)
				req := &Request{
					Method:     MethodInfo{ID: "androidpublisher.edits.bundles.upload", HTTPMethod: "POST"},
					UploadPath: "upload/{packageName}",
					PathParams: map[string]string{"packageName": "com.example.app"},
					Media:      sizedStream{strings.NewReader("bundle"), 6},
					MediaLimit: 100,
				}
				_, err := Send(ctx, cfg, req)
				So(err, ShouldErrLike, "busy")
				So(seen, ShouldHaveLength, 1)
			})
		})

		Convey(`LoggingDelegate logs the call`, func() {
			lctx := logging.SetLevel(memlogger.Use(ctx), logging.Debug)
			cfg.Delegate = LoggingDelegate{Ctx: lctx}
			replies = append(replies, status(http.StatusNotFound, `{"error": {"code": 404, "message": "gone"}}`))
			_, err := Send(lctx, cfg, getEdit())
			So(err, ShouldNotBeNil)

			log := logging.Get(lctx).(*memlogger.MemLogger)
			So(log.HasMessage(logging.Debug, "GET androidpublisher.edits.get: begin"), ShouldBeTrue)
			So(log.HasMessage(logging.Warning, "HTTP 404: gone"), ShouldBeTrue)
			So(log.HasMessage(logging.Debug, "finished with an error"), ShouldBeTrue)
		})
	})
}

// sizedStream is a media stream of known size that can not be rewound.
type sizedStream struct {
	r    io.Reader
	size int64
}

func (s sizedStream) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s sizedStream) Size() int64                { return s.size }

func TestParseError(t *testing.T) {
	t.Parallel()

	Convey(`parseError keeps the body and headers`, t, func() {
		res := &http.Response{StatusCode: 400, Header: http.Header{"X-Request-Id": {"r1"}}}
		body := `{"error": {"message": "bad track"}}`
		apiErr := parseError(res, []byte(body))
		So(apiErr, ShouldNotBeNil)
		So(apiErr.Code, ShouldEqual, 400)
		So(apiErr.Body, ShouldEqual, body)
		So(apiErr.Header.Get("X-Request-Id"), ShouldEqual, "r1")

		raw, err := json.Marshal(apiErr.Errors)
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, "null")
	})
}

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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/context/ctxhttp"
	"google.golang.org/api/googleapi"

	"go.chromium.org/playpublisher/common/auth"
	"go.chromium.org/playpublisher/common/clock"
	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/logging"
	"go.chromium.org/playpublisher/common/retry"
)

// DefaultMaxAttempts caps the attempts of a call when Config.MaxAttempts is
// zero.
const DefaultMaxAttempts = 10

// Config is the part of a call's setup shared by every call of an API client.
type Config struct {
	// Client sends the requests. nil means http.DefaultClient.
	Client *http.Client

	// Auth supplies bearer tokens. nil sends requests without an
	// Authorization header, for clients that authorize by themselves.
	Auth auth.Authenticator

	// UserAgent is appended to googleapi.UserAgent.
	UserAgent string

	// BasePath is the URL regular calls are resolved against.
	BasePath string

	// RootURL is the URL media uploads are resolved against.
	RootURL string

	// DefaultScopes are requested when a call names no scopes.
	DefaultScopes []string

	// Delegate observes calls that have no delegate of their own. nil means
	// NoopDelegate.
	Delegate Delegate

	// Retry decides on retries the delegate declined. nil leaves retries to
	// the delegate alone.
	Retry retry.Factory

	// MaxAttempts bounds the number of requests per call, whoever asks for
	// the retries. Zero means DefaultMaxAttempts, negative means no bound.
	MaxAttempts int
}

// Request describes one execution of a call.
type Request struct {
	Method MethodInfo

	// Path is the path template, relative to Config.BasePath.
	Path string
	// UploadPath is the path template used instead of Path when Media is set,
	// relative to Config.RootURL.
	UploadPath string
	// PathParams fill the {name} placeholders of the path template.
	PathParams map[string]string

	// Reserved lists the names of the call's typed query parameters.
	Reserved []string
	// Params holds the typed query parameters and the call options.
	Params URLParams
	// Extra holds the ad-hoc query parameters.
	Extra map[string]string
	// Alt is the response format, "json" if empty.
	Alt string

	// Header holds additional request headers.
	Header http.Header

	// Body, if neither nil nor a nil pointer, is sent as JSON.
	Body any

	// Media, if not nil, is uploaded next to the JSON body.
	Media        io.Reader
	MediaOptions []googleapi.MediaOption
	// MediaLimit is the largest accepted media size in bytes.
	MediaLimit int64

	// Scopes to request a token for. Config.DefaultScopes if empty.
	Scopes []string

	// Delegate observes this call instead of Config.Delegate.
	Delegate Delegate

	// Result, if not nil, receives the decoded JSON response.
	Result any
	// Raw returns the response with its body open and unread.
	Raw bool
}

// Send executes req.
//
// On success it returns the response. Its body is closed, unless req.Raw is
// set, in which case the caller must close it. On failure the error is one of
// the error types of this package, or an annotated setup error.
func Send(ctx context.Context, cfg *Config, req *Request) (res *http.Response, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	d := req.Delegate
	if d == nil {
		d = cfg.Delegate
	}
	if d == nil {
		d = NoopDelegate{}
	}

	d.Begin(req.Method)
	defer func() { d.Finished(err == nil) }()

	params, err := req.query()
	if err != nil {
		return nil, err
	}

	var body []byte
	if !isNil(req.Body) {
		if body, err = JSONBody(req.Body); err != nil {
			return nil, errors.Annotate(err, "encoding request body").Err()
		}
	}

	var media *MediaInfo
	if req.Media != nil {
		if media, err = NewInfoFromMedia(req.Media, req.MediaLimit, req.MediaOptions); err != nil {
			return nil, err
		}
		params.Set(UploadTypeParam, "multipart")
	}

	target, err := req.url(cfg, params, media != nil)
	if err != nil {
		return nil, err
	}

	scopes := auth.NormalizeScopes(req.Scopes)
	if len(scopes) == 0 {
		scopes = auth.NormalizeScopes(cfg.DefaultScopes)
	}

	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var it retry.Iterator
	for attempt := 1; ; attempt++ {
		hreq, err := newHTTPRequest(ctx, cfg, req, target, body, media)
		if err != nil {
			return nil, err
		}
		if err := authorize(ctx, cfg, d, hreq, scopes); err != nil {
			return nil, err
		}

		d.PreRequest()
		res, err := ctxhttp.Do(ctx, client, hreq)

		var failure error
		var delay time.Duration
		var again bool
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, &CancelledError{Err: ctx.Err()}
			}
			failure = &HTTPError{Err: err}
			delay, again = d.HTTPError(err)

		case res.StatusCode < 200 || res.StatusCode > 299:
			raw, _ := io.ReadAll(res.Body)
			res.Body.Close()
			apiErr := parseError(res, raw)
			failure = statusError(res, raw, apiErr)
			delay, again = d.HTTPFailure(res, apiErr)

		default:
			return decodeResponse(res, req, d)
		}

		if !again && cfg.Retry != nil {
			if it == nil {
				it = cfg.Retry(ctx)
			}
			if delay = it.Next(ctx, failure); delay != retry.Stop {
				again = true
			}
		}
		switch {
		case !again:
			return nil, failure
		case maxAttempts > 0 && attempt >= maxAttempts:
			logging.Warningf(ctx, "%s: giving up after %d attempts", req.Method.ID, attempt)
			return nil, failure
		case media != nil && !media.Rewindable():
			logging.Warningf(ctx, "%s: media can not be replayed, not retrying", req.Method.ID)
			return nil, failure
		}

		logging.Infof(logging.SetFields(ctx, logging.Fields{
			logging.ErrorKey: failure,
			"method":         req.Method.ID,
			"attempt":        attempt,
		}), "Retrying in %s", delay)
		if tr := clock.Sleep(ctx, delay); tr.Incomplete() {
			return nil, &CancelledError{Err: tr.Err}
		}
	}
}

// query assembles the query parameters, rejecting ad-hoc parameters that
// shadow parameters the call defines.
func (r *Request) query() (URLParams, error) {
	reserved := make(map[string]bool, len(protocolParams)+len(r.Reserved)+len(r.PathParams))
	for _, n := range protocolParams {
		reserved[n] = true
	}
	for _, n := range r.Reserved {
		reserved[n] = true
	}
	for n := range r.PathParams {
		reserved[n] = true
	}

	names := make([]string, 0, len(r.Extra))
	for n := range r.Extra {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if reserved[n] {
			return nil, &FieldClashError{Name: n}
		}
	}

	params := r.Params.Copy()
	for _, n := range names {
		params.Set(n, r.Extra[n])
	}
	alt := r.Alt
	if alt == "" {
		alt = "json"
	}
	params.Set(AltParam, alt)
	return params, nil
}

var placeholderRe = regexp.MustCompile(`\{\+?([^{}]+)\}`)

// url expands the path template and appends the query. Path parameters never
// appear in the query.
func (r *Request) url(cfg *Config, params URLParams, upload bool) (string, error) {
	base, tmpl := cfg.BasePath, r.Path
	if upload {
		base, tmpl = cfg.RootURL, r.UploadPath
	}
	if _, err := url.Parse(base); err != nil || base == "" {
		return "", errors.Reason("bad base URL %q", base).Err()
	}
	for _, m := range placeholderRe.FindAllStringSubmatch(tmpl, -1) {
		if _, ok := r.PathParams[m[1]]; !ok {
			return "", errors.Reason("%s: no value for path parameter %q", r.Method.ID, m[1]).Err()
		}
	}

	u, err := url.Parse(googleapi.ResolveRelative(base, tmpl))
	if err != nil {
		return "", errors.Annotate(err, "bad path template %q", tmpl).Err()
	}
	googleapi.Expand(u, r.PathParams)

	for n := range r.PathParams {
		params.Del(n)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func newHTTPRequest(ctx context.Context, cfg *Config, r *Request, target string, body []byte, media *MediaInfo) (*http.Request, error) {
	var rd io.Reader
	var ctype string
	var length int64
	switch {
	case media != nil:
		mr, err := media.Reader()
		if err != nil {
			return nil, err
		}
		rd, ctype, length = multipartBody(body, media, mr)
	case body != nil:
		rd, ctype, length = bytes.NewReader(body), "application/json", int64(len(body))
	}

	hreq, err := http.NewRequestWithContext(ctx, r.Method.HTTPMethod, target, rd)
	if err != nil {
		return nil, errors.Annotate(err, "building request").Err()
	}
	for k, v := range r.Header {
		hreq.Header[k] = append([]string(nil), v...)
	}
	ua := googleapi.UserAgent
	if cfg.UserAgent != "" {
		ua += " " + cfg.UserAgent
	}
	hreq.Header.Set("User-Agent", ua)
	if rd != nil {
		hreq.Header.Set("Content-Type", ctype)
		hreq.ContentLength = length
	}
	return hreq, nil
}

// multipartBody frames the JSON metadata and the media as multipart/related.
func multipartBody(meta []byte, media *MediaInfo, r io.Reader) (io.Reader, string, int64) {
	if meta == nil {
		meta = []byte("{}")
	}
	var prefix bytes.Buffer
	mw := multipart.NewWriter(&prefix)

	// Writes to a bytes.Buffer do not fail.
	pw, _ := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"application/json; charset=UTF-8"},
	})
	pw.Write(meta)
	h := textproto.MIMEHeader{}
	if ct := media.ContentType(); ct != "" {
		h.Set("Content-Type", ct)
	}
	mw.CreatePart(h)

	suffix := "\r\n--" + mw.Boundary() + "--\r\n"
	length := int64(prefix.Len()) + media.Size() + int64(len(suffix))
	rd := io.MultiReader(bytes.NewReader(prefix.Bytes()), r, strings.NewReader(suffix))
	return rd, "multipart/related; boundary=" + mw.Boundary(), length
}

func authorize(ctx context.Context, cfg *Config, d Delegate, hreq *http.Request, scopes []string) error {
	if cfg.Auth == nil {
		return nil
	}
	tok, err := cfg.Auth.Token(ctx, scopes)
	if err == nil && tok != nil && tok.AccessToken != "" {
		tok.SetAuthHeader(hreq)
		return nil
	}
	if err == nil {
		err = auth.ErrNoToken
	}
	if fallback, ok := d.TokenFailure(err); ok && fallback != "" {
		hreq.Header.Set("Authorization", "Bearer "+fallback)
		return nil
	}
	return &MissingTokenError{Err: err}
}

// parseError parses an error body. Both the Google API envelope
//
//	{"error": {"code": 404, "message": "...", "errors": [...]}}
//
// and the OAuth2 one
//
//	{"error": "invalid_grant", "error_description": "..."}
//
// are understood. It returns nil for anything else.
func parseError(res *http.Response, body []byte) *googleapi.Error {
	var envelope struct {
		Error       json.RawMessage `json:"error"`
		Description string          `json:"error_description"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	inner := bytes.TrimSpace(envelope.Error)
	if len(inner) == 0 {
		return nil
	}

	apiErr := &googleapi.Error{}
	switch inner[0] {
	case '{':
		if err := json.Unmarshal(inner, apiErr); err != nil {
			return nil
		}
	case '"':
		var reason string
		if err := json.Unmarshal(inner, &reason); err != nil {
			return nil
		}
		apiErr.Message = envelope.Description
		if apiErr.Message == "" {
			apiErr.Message = reason
		}
		apiErr.Errors = []googleapi.ErrorItem{{Reason: reason, Message: envelope.Description}}
	default:
		return nil
	}
	if apiErr.Code == 0 {
		apiErr.Code = res.StatusCode
	}
	apiErr.Body = string(body)
	apiErr.Header = res.Header
	return apiErr
}

// statusError is the error reported for a non-2xx response. Server side
// failures and throttling are transient.
func statusError(res *http.Response, body []byte, apiErr *googleapi.Error) error {
	isTransient := res.StatusCode >= 500 || res.StatusCode == http.StatusTooManyRequests
	if apiErr != nil {
		return &BadRequestError{Err: apiErr, Transient: isTransient}
	}
	return &FailureError{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       string(body),
		Transient:  isTransient,
	}
}

func decodeResponse(res *http.Response, req *Request, d Delegate) (*http.Response, error) {
	if req.Raw {
		return res, nil
	}
	defer googleapi.CloseBody(res)
	if req.Result == nil {
		io.Copy(io.Discard, res.Body)
		return res, nil
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &HTTPError{Err: err}
	}
	if err := json.Unmarshal(raw, req.Result); err != nil {
		d.ResponseJSONDecodeError(string(raw), err)
		return nil, &JSONDecodeError{Body: string(raw), Err: err}
	}
	return res, nil
}

// isNil reports whether v is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

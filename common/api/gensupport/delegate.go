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
	"net/http"
	"time"

	"google.golang.org/api/googleapi"

	"go.chromium.org/playpublisher/common/logging"
)

// MethodInfo identifies the operation a call executes.
type MethodInfo struct {
	ID         string // e.g. "androidpublisher.edits.insert"
	HTTPMethod string
}

// Delegate observes a call as it executes and may ask for retries.
//
// Every call starts with exactly one Begin and ends with exactly one
// Finished. A delegate is shared by all concurrent calls it is installed on,
// so implementations must be goroutine safe.
type Delegate interface {
	// Begin is called before anything else happens.
	Begin(info MethodInfo)

	// PreRequest is called right before each HTTP request is sent.
	PreRequest()

	// TokenFailure is called when the authenticator fails. Returning a token
	// and true uses that token instead.
	TokenFailure(err error) (token string, ok bool)

	// HTTPError is called when the transport fails. Returning a delay and
	// true retries after the delay.
	HTTPError(err error) (delay time.Duration, retry bool)

	// HTTPFailure is called for a non-2xx response. apiErr is the parsed
	// error body, or nil if it could not be parsed. Returning a delay and
	// true retries after the delay.
	HTTPFailure(res *http.Response, apiErr *googleapi.Error) (delay time.Duration, retry bool)

	// ResponseJSONDecodeError is called when a 2xx response does not decode.
	ResponseJSONDecodeError(body string, err error)

	// Finished is called last.
	Finished(success bool)
}

// NoopDelegate observes nothing and never retries.
type NoopDelegate struct{}

var _ Delegate = NoopDelegate{}

func (NoopDelegate) Begin(MethodInfo)                      {}
func (NoopDelegate) PreRequest()                           {}
func (NoopDelegate) TokenFailure(error) (string, bool)     { return "", false }
func (NoopDelegate) HTTPError(error) (time.Duration, bool) { return 0, false }
func (NoopDelegate) ResponseJSONDecodeError(string, error) {}
func (NoopDelegate) Finished(bool)                         {}
func (NoopDelegate) HTTPFailure(*http.Response, *googleapi.Error) (time.Duration, bool) {
	return 0, false
}

// LoggingDelegate logs every step of a call to the logger in Ctx. It never
// retries, leaving that to the retry policy.
type LoggingDelegate struct {
	Ctx context.Context
}

var _ Delegate = LoggingDelegate{}

func (d LoggingDelegate) Begin(info MethodInfo) {
	logging.Debugf(d.Ctx, "%s %s: begin", info.HTTPMethod, info.ID)
}

func (d LoggingDelegate) PreRequest() {
	logging.Debugf(d.Ctx, "sending request")
}

func (d LoggingDelegate) TokenFailure(err error) (string, bool) {
	logging.Errorf(d.Ctx, "failed to get a token: %s", err)
	return "", false
}

func (d LoggingDelegate) HTTPError(err error) (time.Duration, bool) {
	logging.Warningf(d.Ctx, "transport failure: %s", err)
	return 0, false
}

func (d LoggingDelegate) HTTPFailure(res *http.Response, apiErr *googleapi.Error) (time.Duration, bool) {
	if apiErr != nil {
		logging.Warningf(d.Ctx, "HTTP %d: %s", res.StatusCode, apiErr.Message)
	} else {
		logging.Warningf(d.Ctx, "HTTP %d", res.StatusCode)
	}
	return 0, false
}

func (d LoggingDelegate) ResponseJSONDecodeError(body string, err error) {
	logging.Errorf(d.Ctx, "bad response (%s): %q", err, body)
}

func (d LoggingDelegate) Finished(success bool) {
	if success {
		logging.Debugf(d.Ctx, "finished")
	} else {
		logging.Debugf(d.Ctx, "finished with an error")
	}
}

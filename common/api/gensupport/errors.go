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
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"google.golang.org/api/googleapi"

	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/retry/transient"
)

// transientTag reports whether key is the transient tag and the error is
// marked transient.
func transientTag(key errors.TagKey, isTransient bool) bool {
	return isTransient && key == transient.Tag.Key
}

// FieldClashError is returned when an ad-hoc parameter set with Param uses
// the name of a parameter the call sets by itself.
type FieldClashError struct {
	Name string
}

func (e *FieldClashError) Error() string {
	return fmt.Sprintf("field clash: parameter %q is already defined by the call", e.Name)
}

// MissingTokenError is returned when no access token could be obtained and
// the delegate did not supply a fallback.
type MissingTokenError struct {
	Err error
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("missing token: %s", e.Err)
}

func (e *MissingTokenError) Unwrap() error { return e.Err }

// HTTPError is a transport level failure: no HTTP response was received.
// It is always transient.
type HTTPError struct {
	Err error
}

// HasTag implements errors.Tagged.
func (e *HTTPError) HasTag(key errors.TagKey) bool { return transientTag(key, true) }

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s", e.Err)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// UploadSizeLimitError is returned before anything is sent when a media body
// is larger than the operation accepts.
//
// When the media stream has no known size, Size is Limit+1: the stream was
// only read far enough to tell it is too large.
type UploadSizeLimitError struct {
	Size  int64
	Limit int64
}

func (e *UploadSizeLimitError) Error() string {
	return fmt.Sprintf("upload size limit exceeded: %d bytes (%s) > %d bytes (%s)",
		e.Size, humanize.IBytes(uint64(e.Size)), e.Limit, humanize.IBytes(uint64(e.Limit)))
}

// BadRequestError is returned for a non-2xx response whose body carried a
// structured error.
//
// Transient is set for 5xx and 429 responses. transient.Tag.In reports it.
type BadRequestError struct {
	Err       *googleapi.Error
	Transient bool
}

// HasTag implements errors.Tagged.
func (e *BadRequestError) HasTag(key errors.TagKey) bool { return transientTag(key, e.Transient) }

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Err)
}

func (e *BadRequestError) Unwrap() error { return e.Err }

// FailureError is returned for a non-2xx response whose body could not be
// understood.
//
// Transient is set for 5xx and 429 responses. transient.Tag.In reports it.
type FailureError struct {
	StatusCode int
	Header     http.Header
	Body       string
	Transient  bool
}

// HasTag implements errors.Tagged.
func (e *FailureError) HasTag(key errors.TagKey) bool { return transientTag(key, e.Transient) }

func (e *FailureError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("failure: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("failure: HTTP %d: %s", e.StatusCode, e.Body)
}

// JSONDecodeError is returned when a successful response does not decode
// into the expected type.
type JSONDecodeError struct {
	Body string
	Err  error
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("json decode error: %s", e.Err)
}

func (e *JSONDecodeError) Unwrap() error { return e.Err }

// CancelledError is returned when the call's context is done before the call
// completes, including while waiting to retry.
type CancelledError struct {
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("cancelled: %s", e.Err)
}

func (e *CancelledError) Unwrap() error { return e.Err }

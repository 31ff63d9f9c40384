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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"

	. "github.com/smartystreets/goconvey/convey"

	. "go.chromium.org/playpublisher/common/testing/assertions"
)

// sizedReader claims a size without holding any data.
type sizedReader struct {
	size int64
}

func (r sizedReader) Read([]byte) (int, error) { return 0, io.EOF }
func (r sizedReader) Size() int64              { return r.size }

// onlyReader hides every interface of the wrapped reader but Read.
type onlyReader struct {
	r io.Reader
}

func (r onlyReader) Read(p []byte) (int, error) { return r.r.Read(p) }

func readAll(mi *MediaInfo) string {
	r, err := mi.Reader()
	So(err, ShouldBeNil)
	data, err := io.ReadAll(r)
	So(err, ShouldBeNil)
	return string(data)
}

func TestMediaInfo(t *testing.T) {
	t.Parallel()

	Convey(`NewInfoFromMedia`, t, func() {
		Convey(`trusts Size without reading`, func() {
			_, err := NewInfoFromMedia(sizedReader{11000000000}, 10737418240, nil)
			var limitErr *UploadSizeLimitError
			So(err, ShouldErrAs, &limitErr)
			So(limitErr.Size, ShouldEqual, 11000000000)
			So(limitErr.Limit, ShouldEqual, 10737418240)
			So(err, ShouldErrLike, "upload size limit exceeded: 11000000000 bytes (10 GiB) > 10737418240 bytes (10 GiB)")
		})

		Convey(`measures seekable readers from their position`, func() {
			r := strings.NewReader("skip:payload")
			r.Seek(5, io.SeekStart)
			mi, err := NewInfoFromMedia(r, 100, nil)
			So(err, ShouldBeNil)
			So(mi.Size(), ShouldEqual, 7)
			So(mi.Rewindable(), ShouldBeTrue)
			So(readAll(mi), ShouldEqual, "payload")
			So(readAll(mi), ShouldEqual, "payload")
		})

		Convey(`uses Len`, func() {
			mi, err := NewInfoFromMedia(bytes.NewBufferString("abc"), 100, nil)
			So(err, ShouldBeNil)
			So(mi.Size(), ShouldEqual, 3)
			So(readAll(mi), ShouldEqual, "abc")
			_, err = mi.Reader()
			So(err, ShouldErrLike, "can not be sent twice")
		})

		Convey(`buffers streams of unknown size`, func() {
			mi, err := NewInfoFromMedia(onlyReader{strings.NewReader("hello")}, 5, nil)
			So(err, ShouldBeNil)
			So(mi.Size(), ShouldEqual, 5)
			So(mi.buf, ShouldHaveLength, 5)
			So(mi.Rewindable(), ShouldBeTrue)
			So(readAll(mi), ShouldEqual, "hello")
			So(readAll(mi), ShouldEqual, "hello")
		})

		Convey(`streams files without buffering them`, func() {
			path := filepath.Join(t.TempDir(), "app.aab")
			So(os.WriteFile(path, []byte("PK\x03\x04bundle"), 0600), ShouldBeNil)
			f, err := os.Open(path)
			So(err, ShouldBeNil)
			defer f.Close()

			mi, err := NewInfoFromMedia(f, 100, nil)
			So(err, ShouldBeNil)
			So(mi.Size(), ShouldEqual, 10)
			So(mi.buf, ShouldBeNil)
			So(mi.Rewindable(), ShouldBeTrue)
			So(readAll(mi), ShouldEqual, "PK\x03\x04bundle")
			So(readAll(mi), ShouldEqual, "PK\x03\x04bundle")
		})

		Convey(`stops reading oversized streams at the limit`, func() {
			_, err := NewInfoFromMedia(onlyReader{strings.NewReader("hello world")}, 5, nil)
			var limitErr *UploadSizeLimitError
			So(err, ShouldErrAs, &limitErr)
			So(*limitErr, ShouldResemble, UploadSizeLimitError{Size: 6, Limit: 5})
		})

		Convey(`sniffs the content type`, func() {
			mi, err := NewInfoFromMedia(strings.NewReader("\x89PNG\x0D\x0A\x1A\x0A...."), 100, nil)
			So(err, ShouldBeNil)
			So(mi.ContentType(), ShouldEqual, "image/png")
			So(readAll(mi), ShouldStartWith, "\x89PNG")
		})

		Convey(`honors an explicit content type`, func() {
			mi, err := NewInfoFromMedia(strings.NewReader("PK"), 100,
				[]googleapi.MediaOption{googleapi.ContentType("application/octet-stream")})
			So(err, ShouldBeNil)
			So(mi.ContentType(), ShouldEqual, "application/octet-stream")
		})

		Convey(`a zero limit means no ceiling`, func() {
			mi, err := NewInfoFromMedia(sizedReader{1 << 40}, 0, nil)
			So(err, ShouldBeNil)
			So(mi.Size(), ShouldEqual, int64(1<<40))
		})
	})
}

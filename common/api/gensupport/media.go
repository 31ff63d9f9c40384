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
	"net/http"

	"google.golang.org/api/googleapi"

	"go.chromium.org/playpublisher/common/errors"
)

// sniffLen is how many leading bytes are used to detect the content type.
const sniffLen = 512

// MediaInfo holds a media body prepared for upload: its size is known and has
// been checked against the operation's ceiling.
type MediaInfo struct {
	r           io.Reader
	size        int64
	contentType string

	// buf holds the whole media when it had to be read to learn its size.
	buf []byte
	// head holds the prefix read for content sniffing from a reader that
	// can not seek back.
	head []byte
	// seeker and start are set when the media can be rewound for a retry.
	seeker io.Seeker
	start  int64

	opened bool
}

// NewInfoFromMedia prepares r for upload.
//
// The size is taken from r when it can tell (a Seeker, or a Size or Len
// method). Otherwise at most limit+1 bytes are read into memory. An
// *UploadSizeLimitError is returned if the media is larger than limit. A
// limit of 0 or less means no ceiling.
//
// The content type comes from googleapi.ContentType if given, otherwise it
// is sniffed from the data.
func NewInfoFromMedia(r io.Reader, limit int64, opts []googleapi.MediaOption) (*MediaInfo, error) {
	mi := &MediaInfo{r: r}
	mo := googleapi.ProcessMediaOptions(opts)

	known := true
	switch x := r.(type) {
	case io.Seeker:
		cur, err := x.Seek(0, io.SeekCurrent)
		if err != nil {
			known = false
			break
		}
		end, err := x.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, errors.Annotate(err, "measuring media").Err()
		}
		if _, err := x.Seek(cur, io.SeekStart); err != nil {
			return nil, errors.Annotate(err, "rewinding media").Err()
		}
		mi.size = end - cur
		mi.seeker, mi.start = x, cur
	case interface{ Size() int64 }:
		mi.size = x.Size()
	case interface{ Len() int }:
		mi.size = int64(x.Len())
	default:
		known = false
	}

	if !known {
		mi.seeker = nil
		src := io.Reader(r)
		if limit > 0 {
			src = io.LimitReader(r, limit+1)
		}
		buf, err := io.ReadAll(src)
		if err != nil {
			return nil, errors.Annotate(err, "reading media").Err()
		}
		mi.buf, mi.size = buf, int64(len(buf))
	}

	if limit > 0 && mi.size > limit {
		return nil, &UploadSizeLimitError{Size: mi.size, Limit: limit}
	}

	switch {
	case mo.ForceEmptyContentType:
	case mo.ContentType != "":
		mi.contentType = mo.ContentType
	default:
		head, err := mi.sniffHead()
		if err != nil {
			return nil, err
		}
		mi.contentType = http.DetectContentType(head)
	}
	return mi, nil
}

func (mi *MediaInfo) sniffHead() ([]byte, error) {
	if mi.buf != nil {
		return mi.buf[:min(len(mi.buf), sniffLen)], nil
	}
	head := make([]byte, min(mi.size, sniffLen))
	n, err := io.ReadFull(mi.r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, errors.Annotate(err, "reading media").Err()
	}
	head = head[:n]
	if mi.seeker != nil {
		if _, err := mi.seeker.Seek(mi.start, io.SeekStart); err != nil {
			return nil, errors.Annotate(err, "rewinding media").Err()
		}
	} else {
		mi.head = head
	}
	return head, nil
}

// Size is the number of bytes that will be uploaded.
func (mi *MediaInfo) Size() int64 { return mi.size }

// ContentType is the media type of the upload, possibly empty.
func (mi *MediaInfo) ContentType() string { return mi.contentType }

// Rewindable reports whether Reader may be called more than once.
func (mi *MediaInfo) Rewindable() bool {
	return mi.buf != nil || mi.seeker != nil
}

// Reader returns a reader over the media, positioned at its start.
//
// It fails if the media was already read and can not be rewound.
func (mi *MediaInfo) Reader() (io.Reader, error) {
	switch {
	case mi.buf != nil:
		return bytes.NewReader(mi.buf), nil
	case mi.seeker != nil:
		if mi.opened {
			if _, err := mi.seeker.Seek(mi.start, io.SeekStart); err != nil {
				return nil, errors.Annotate(err, "rewinding media").Err()
			}
		}
		mi.opened = true
		return io.LimitReader(mi.r, mi.size), nil
	case mi.opened:
		return nil, errors.Reason("media can not be sent twice").Err()
	}
	mi.opened = true
	return io.LimitReader(io.MultiReader(bytes.NewReader(mi.head), mi.r), mi.size), nil
}

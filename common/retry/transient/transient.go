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

// Package transient allows you to tag and retry 'transient' errors (i.e.
// non-permanent errors which may resolve themselves by trying an operation
// again).
package transient

import (
	"context"
	"time"

	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/retry"
)

// Tag is used to indicate that an error is transient (i.e. something is
// temporarily wrong).
var Tag = errors.NewTag("this error is temporary")

// Only returns a retry.Factory that only retries errors that carry Tag.
//
// If next is nil, the returned Factory is nil as well.
func Only(next retry.Factory) retry.Factory {
	if next == nil {
		return nil
	}
	return func(ctx context.Context) retry.Iterator {
		return &transientOnlyIterator{next(ctx)}
	}
}

type transientOnlyIterator struct {
	retry.Iterator // The wrapped Iterator.
}

func (i *transientOnlyIterator) Next(ctx context.Context, err error) time.Duration {
	if !Tag.In(err) {
		return retry.Stop
	}
	return i.Iterator.Next(ctx, err)
}

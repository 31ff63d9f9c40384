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

package retry

import (
	"context"
	"time"
)

// Default is a Factory that returns a new instance of the default iterator
// configuration.
func Default(context.Context) Iterator {
	return &ExponentialBackoff{
		Limited: Limited{
			Delay:   200 * time.Millisecond,
			Retries: 10,
		},
		MaxDelay:   10 * time.Second,
		Multiplier: 2,
	}
}

// LimitedFactory returns a Factory producing copies of the given ExponentialBackoff
// template with the retry count replaced by retries.
func LimitedFactory(template ExponentialBackoff, retries int) Factory {
	return func(context.Context) Iterator {
		it := template
		it.Retries = retries
		return &it
	}
}

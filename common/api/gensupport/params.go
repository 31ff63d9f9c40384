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
	"net/url"

	"google.golang.org/api/googleapi"
)

// URLParams is a simplified replacement for url.Values that safely builds up
// URL parameters for encoding.
type URLParams map[string][]string

// Get returns the first value for the given key, or "".
func (u URLParams) Get(key string) string {
	vs := u[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Has reports whether the key is set at all.
func (u URLParams) Has(key string) bool {
	_, ok := u[key]
	return ok
}

// Set sets the key to value. It replaces any existing values.
func (u URLParams) Set(key, value string) {
	u[key] = []string{value}
}

// SetMulti sets the key to an array of values. It replaces any existing
// values. Note that values must not be modified after calling SetMulti so
// the caller is responsible for making a copy if necessary.
func (u URLParams) SetMulti(key string, values []string) {
	u[key] = values
}

// Del removes the key.
func (u URLParams) Del(key string) {
	delete(u, key)
}

// Encode encodes the values into URL encoded form ("bar=baz&foo=quux")
// sorted by key.
func (u URLParams) Encode() string {
	return url.Values(u).Encode()
}

// Copy returns a shallow copy of u.
func (u URLParams) Copy() URLParams {
	cpy := make(URLParams, len(u))
	for k, v := range u {
		cpy[k] = v
	}
	return cpy
}

// SetOptions sets the URL params and any additional call options.
func SetOptions(u URLParams, opts ...googleapi.CallOption) {
	for _, o := range opts {
		k, v := o.Get()
		u.Set(k, v)
	}
}

// Parameters every request may carry regardless of the operation. The call
// protocol sets "alt" and "uploadType" itself, so callers can not override
// them with ad-hoc parameters.
const (
	AltParam        = "alt"
	UploadTypeParam = "uploadType"
)

// protocolParams are always reserved, in addition to the typed parameters of
// the operation.
var protocolParams = []string{AltParam, UploadTypeParam}

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

// Package gensupport is the runtime shared by the generated API clients
// under common/api.
//
// Generated call builders collect their parameters into a Request and hand
// it to Send, which owns URL assembly, body encoding, media uploads,
// authorization, retries and response decoding. Nothing in this package
// knows about a particular API.
package gensupport

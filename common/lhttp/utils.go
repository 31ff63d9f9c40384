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

package lhttp

import (
	"net"
	"net/url"

	"go.chromium.org/playpublisher/common/errors"
)

// IsLocalHost returns true if hostport is local.
func IsLocalHost(hostport string) bool {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		host = hostport
	}
	switch {
	case host == "localhost", host == "":
	case net.ParseIP(host).IsLoopback():

	default:
		return false
	}
	return true
}

// CheckEndpoint checks that s is an absolute http(s) URL of an API endpoint.
// Plain http is only allowed for local hosts, so tokens never leave the
// machine unencrypted.
func CheckEndpoint(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	switch {
	case u.Host == "":
		return errors.Reason("%q has no host", s).Err()
	case u.Scheme == "https":
		return nil
	case u.Scheme == "http" && IsLocalHost(u.Host):
		return nil
	case u.Scheme == "http":
		return errors.Reason("%q: http:// can only be used with local servers", s).Err()
	default:
		return errors.Reason("%q: unsupported scheme %q", s, u.Scheme).Err()
	}
}

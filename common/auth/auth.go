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

// Package auth implements the token sources used to authorize calls to
// Google APIs.
//
// The central type is Authenticator: it maps a set of OAuth2 scopes to a
// bearer token. Implementations must be safe for concurrent use, since a
// single Authenticator is shared by every call issued through an API client.
package auth

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/oauth2"

	"go.chromium.org/playpublisher/common/errors"
)

// ErrNoToken is returned by authenticators that have no token to offer.
var ErrNoToken = errors.New("auth: no token available")

// Authenticator returns bearer tokens for OAuth2 scope sets.
type Authenticator interface {
	// Token returns a valid token carrying the given scopes.
	Token(ctx context.Context, scopes []string) (*oauth2.Token, error)
}

// TokenSourceFactory creates an oauth2.TokenSource for a scope set.
//
// The context is the one passed to the first Token call for the scope set; the
// produced source may keep using it to fetch fresh tokens.
type TokenSourceFactory func(ctx context.Context, scopes []string) (oauth2.TokenSource, error)

// New returns an Authenticator that creates one token source per distinct
// scope set and caches its tokens until they expire.
func New(f TokenSourceFactory) Authenticator {
	return &cachingAuthenticator{factory: f}
}

type cachingAuthenticator struct {
	factory TokenSourceFactory

	m       sync.Mutex
	sources map[string]oauth2.TokenSource
}

func (a *cachingAuthenticator) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	ts, err := a.source(ctx, scopes)
	if err != nil {
		return nil, err
	}
	return ts.Token()
}

func (a *cachingAuthenticator) source(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
	scopes = NormalizeScopes(scopes)
	key := strings.Join(scopes, " ")

	a.m.Lock()
	defer a.m.Unlock()

	if ts, ok := a.sources[key]; ok {
		return ts, nil
	}
	ts, err := a.factory(ctx, scopes)
	if err != nil {
		return nil, errors.Annotate(err, "creating token source for %q", key).Err()
	}
	ts = oauth2.ReuseTokenSource(nil, ts)
	if a.sources == nil {
		a.sources = make(map[string]oauth2.TokenSource, 1)
	}
	a.sources[key] = ts
	return ts, nil
}

// NormalizeScopes returns a sorted copy of scopes without duplicates or empty
// strings.
func NormalizeScopes(scopes []string) []string {
	out := make([]string, 0, len(scopes))
	seen := make(map[string]bool, len(scopes))
	for _, s := range scopes {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// StaticToken returns an Authenticator which always returns the given access
// token, regardless of scopes.
//
// An empty token makes every Token call fail with ErrNoToken.
func StaticToken(accessToken string) Authenticator {
	return FromTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
}

// FromTokenSource adapts an existing oauth2.TokenSource. Scopes are ignored:
// the source is assumed to already carry the ones the caller needs.
func FromTokenSource(ts oauth2.TokenSource) Authenticator {
	return tokenSourceAuthenticator{ts}
}

type tokenSourceAuthenticator struct {
	ts oauth2.TokenSource
}

func (a tokenSourceAuthenticator) Token(context.Context, []string) (*oauth2.Token, error) {
	tok, err := a.ts.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken == "" {
		return nil, ErrNoToken
	}
	return tok, nil
}

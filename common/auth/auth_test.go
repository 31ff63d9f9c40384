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

package auth

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/oauth2"

	. "github.com/smartystreets/goconvey/convey"

	. "go.chromium.org/playpublisher/common/testing/assertions"
)

type countingSource struct {
	n      *int
	scopes []string
}

func (s countingSource) Token() (*oauth2.Token, error) {
	*s.n++
	return &oauth2.Token{AccessToken: fmt.Sprintf("tok-%d", *s.n)}, nil
}

func TestCachingAuthenticator(t *testing.T) {
	t.Parallel()

	Convey(`The caching authenticator`, t, func() {
		ctx := context.Background()
		minted := 0
		var created [][]string
		a := New(func(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
			created = append(created, scopes)
			return countingSource{&minted, scopes}, nil
		})

		Convey(`reuses a token for the same scope set`, func() {
			t1, err := a.Token(ctx, []string{"b", "a"})
			So(err, ShouldBeNil)
			t2, err := a.Token(ctx, []string{"a", "b", "a"})
			So(err, ShouldBeNil)
			So(t1.AccessToken, ShouldEqual, t2.AccessToken)
			So(created, ShouldResemble, [][]string{{"a", "b"}})
		})

		Convey(`keeps scope sets apart`, func() {
			_, err := a.Token(ctx, []string{"a"})
			So(err, ShouldBeNil)
			_, err = a.Token(ctx, []string{"b"})
			So(err, ShouldBeNil)
			So(len(created), ShouldEqual, 2)
		})
	})

	Convey(`Factory errors are reported`, t, func() {
		a := New(func(context.Context, []string) (oauth2.TokenSource, error) {
			return nil, fmt.Errorf("no credentials")
		})
		_, err := a.Token(context.Background(), []string{"a"})
		So(err, ShouldErrLike, "no credentials")
	})
}

func TestStaticToken(t *testing.T) {
	t.Parallel()

	Convey(`StaticToken`, t, func() {
		tok, err := StaticToken("secret").Token(context.Background(), nil)
		So(err, ShouldBeNil)
		So(tok.AccessToken, ShouldEqual, "secret")

		_, err = StaticToken("").Token(context.Background(), nil)
		So(err, ShouldEqual, ErrNoToken)
	})
}

func TestNormalizeScopes(t *testing.T) {
	t.Parallel()

	Convey(`NormalizeScopes sorts and dedups`, t, func() {
		So(NormalizeScopes([]string{"z", "", "a", "z"}), ShouldResemble, []string{"a", "z"})
		So(NormalizeScopes(nil), ShouldResemble, []string{})
	})
}

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
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/lhttp"
	"go.chromium.org/playpublisher/common/retry/transient"
	. "go.chromium.org/playpublisher/common/testing/assertions"
)

func testKey(pk *rsa.PrivateKey, tokenURI string) *ServiceAccountKey {
	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(pk),
	})
	return &ServiceAccountKey{
		Type:         "service_account",
		PrivateKeyID: "key-1",
		PrivateKey:   string(pemBytes),
		ClientEmail:  "publisher@example.iam.gserviceaccount.com",
		TokenURI:     tokenURI,
	}
}

func TestParseServiceAccountKey(t *testing.T) {
	t.Parallel()

	Convey(`ParseServiceAccountKey`, t, func() {
		Convey(`fills in the default token URI`, func() {
			key, err := ParseServiceAccountKey([]byte(`{
				"type": "service_account",
				"client_email": "a@b.c",
				"private_key": "pem"
			}`))
			So(err, ShouldBeNil)
			So(key.TokenURI, ShouldEqual, DefaultTokenURI)
		})

		Convey(`rejects other credential types`, func() {
			_, err := ParseServiceAccountKey([]byte(`{"type": "authorized_user"}`))
			So(err, ShouldErrLike, `unsupported credentials type "authorized_user"`)
		})

		Convey(`requires an email and a key`, func() {
			_, err := ParseServiceAccountKey([]byte(`{"private_key": "pem"}`))
			So(err, ShouldErrLike, "no client_email")
			_, err = ParseServiceAccountKey([]byte(`{"client_email": "a@b.c"}`))
			So(err, ShouldErrLike, "no private_key")
		})

		Convey(`rejects garbage`, func() {
			_, err := ParseServiceAccountKey([]byte(`{`))
			So(err, ShouldErrLike, "bad service account key")
		})
	})
}

func TestServiceAccount(t *testing.T) {
	t.Parallel()

	Convey(`With a token endpoint`, t, func() {
		ctx := context.Background()

		pk, err := rsa.GenerateKey(rand.Reader, 2048)
		So(err, ShouldBeNil)

		var claims jwt.MapClaims
		var kid any
		status := http.StatusOK
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if err := r.ParseForm(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if r.PostForm.Get("grant_type") != "urn:ietf:params:oauth:grant-type:jwt-bearer" {
				http.Error(w, "bad grant", http.StatusBadRequest)
				return
			}
			claims = jwt.MapClaims{}
			tok, err := jwt.ParseWithClaims(r.PostForm.Get("assertion"), claims, func(*jwt.Token) (any, error) {
				return &pk.PublicKey, nil
			}, jwt.WithoutClaimsValidation())
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			kid = tok.Header["kid"]

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			if status != http.StatusOK {
				fmt.Fprint(w, `{"error": "invalid_grant", "error_description": "revoked"}`)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": fmt.Sprintf("token-%d", calls),
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		}))
		defer srv.Close()

		a, err := ServiceAccount(testKey(pk, srv.URL), srv.Client())
		So(err, ShouldBeNil)

		scopes := []string{"https://www.googleapis.com/auth/androidpublisher"}

		Convey(`exchanges a signed assertion`, func() {
			tok, err := a.Token(ctx, scopes)
			So(err, ShouldBeNil)
			So(tok.AccessToken, ShouldEqual, "token-1")
			So(tok.Expiry, ShouldHappenWithin, time.Minute, time.Now().Add(time.Hour))

			So(claims["iss"], ShouldEqual, "publisher@example.iam.gserviceaccount.com")
			So(claims["scope"], ShouldEqual, scopes[0])
			So(claims["aud"], ShouldEqual, srv.URL)
			So(kid, ShouldEqual, "key-1")
		})

		Convey(`reports a rejected grant`, func() {
			status = http.StatusBadRequest
			_, err := a.Token(ctx, scopes)
			So(err, ShouldErrLike, "HTTP 400")
			So(err, ShouldErrLike, "invalid_grant")
			var rerr *oauth2.RetrieveError
			So(err, ShouldErrAs, &rerr)
			So(transient.Tag.In(err), ShouldBeFalse)
		})

		Convey(`tags server failures as transient`, func() {
			status = http.StatusServiceUnavailable
			_, err := a.Token(ctx, scopes)
			So(err, ShouldErrLike, "HTTP 503")
			So(transient.Tag.In(err), ShouldBeTrue)

			status = http.StatusTooManyRequests
			_, err = a.Token(ctx, []string{"other"})
			So(err, ShouldErrLike, "HTTP 429")
			So(transient.Tag.In(err), ShouldBeTrue)
		})

		Convey(`tags transport failures as transient`, func() {
			broken := &http.Client{Transport: lhttp.RoundTripper(func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			})}
			a, err := ServiceAccount(testKey(pk, srv.URL), broken)
			So(err, ShouldBeNil)
			_, err = a.Token(ctx, scopes)
			So(err, ShouldErrLike, "token exchange: connection refused")
			So(transient.Tag.In(err), ShouldBeTrue)
			So(calls, ShouldEqual, 0)
		})

		Convey(`reports a reply without a token`, func() {
			empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"token_type": "Bearer"}`)
			}))
			defer empty.Close()
			a, err := ServiceAccount(testKey(pk, empty.URL), empty.Client())
			So(err, ShouldBeNil)
			_, err = a.Token(ctx, scopes)
			So(err, ShouldEqual, ErrNoToken)
		})
	})

	Convey(`A malformed private key is rejected`, t, func() {
		_, err := ServiceAccount(&ServiceAccountKey{PrivateKey: "not a pem"}, nil)
		So(err, ShouldErrLike, "bad service account private key")
	})
}

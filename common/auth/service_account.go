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
	"encoding/json"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	oauthjwt "golang.org/x/oauth2/jwt"

	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/lhttp"
	"go.chromium.org/playpublisher/common/logging"
	"go.chromium.org/playpublisher/common/retry/transient"
)

// DefaultTokenURI is the Google OAuth2 token endpoint used when a service
// account key does not name one.
const DefaultTokenURI = "https://oauth2.googleapis.com/token"

// ServiceAccountKey is the subset of a Google service account JSON key file
// needed to mint tokens.
type ServiceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	TokenURI     string `json:"token_uri"`
}

// ParseServiceAccountKey parses a JSON service account key.
func ParseServiceAccountKey(data []byte) (*ServiceAccountKey, error) {
	key := &ServiceAccountKey{}
	if err := json.Unmarshal(data, key); err != nil {
		return nil, errors.Annotate(err, "bad service account key").Err()
	}
	switch {
	case key.Type != "" && key.Type != "service_account":
		return nil, errors.Reason("unsupported credentials type %q", key.Type).Err()
	case key.ClientEmail == "":
		return nil, errors.Reason("service account key has no client_email").Err()
	case key.PrivateKey == "":
		return nil, errors.Reason("service account key has no private_key").Err()
	}
	if key.TokenURI == "" {
		key.TokenURI = DefaultTokenURI
	}
	return key, nil
}

// LoadServiceAccountKey reads and parses a JSON service account key file.
func LoadServiceAccountKey(path string) (*ServiceAccountKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "reading service account key").Err()
	}
	return ParseServiceAccountKey(data)
}

// ServiceAccount returns an Authenticator minting tokens for the service
// account by exchanging signed JWT assertions (RFC 7523) at the key's token
// URI.
//
// client is used for the exchange and must not itself add authorization; nil
// means http.DefaultClient.
func ServiceAccount(key *ServiceAccountKey, client *http.Client) (Authenticator, error) {
	if _, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(key.PrivateKey)); err != nil {
		return nil, errors.Annotate(err, "bad service account private key").Err()
	}
	if client == nil {
		client = http.DefaultClient
	}
	return New(func(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
		return &assertionTokenSource{
			ctx:    ctx,
			client: client,
			cfg: &oauthjwt.Config{
				Email:        key.ClientEmail,
				PrivateKey:   []byte(key.PrivateKey),
				PrivateKeyID: key.PrivateKeyID,
				Scopes:       scopes,
				TokenURL:     key.TokenURI,
			},
		}, nil
	}), nil
}

// assertionTokenSource runs the exchange through x/oauth2/jwt and tags the
// failures worth retrying as transient.
type assertionTokenSource struct {
	ctx    context.Context
	client *http.Client
	cfg    *oauthjwt.Config
}

func (s *assertionTokenSource) Token() (*oauth2.Token, error) {
	transport := s.client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	var transportErr error
	client := &http.Client{
		Transport: lhttp.RoundTripper(func(req *http.Request) (*http.Response, error) {
			res, err := transport.RoundTrip(req)
			if err != nil {
				transportErr = err
			}
			return res, err
		}),
		Jar:     s.client.Jar,
		Timeout: s.client.Timeout,
	}

	logging.Debugf(s.ctx, "Minting token for %s (scopes %q)", s.cfg.Email, s.cfg.Scopes)
	tok, err := s.cfg.TokenSource(context.WithValue(s.ctx, oauth2.HTTPClient, client)).Token()
	var rerr *oauth2.RetrieveError
	switch {
	case err == nil:
	case transportErr != nil:
		return nil, transient.Tag.Apply(errors.Annotate(transportErr, "token exchange").Err())
	case errors.As(err, &rerr):
		err = errors.Annotate(err, "token endpoint returned HTTP %d", rerr.Response.StatusCode).Err()
		if code := rerr.Response.StatusCode; code >= 500 || code == http.StatusTooManyRequests {
			err = transient.Tag.Apply(err)
		}
		return nil, err
	default:
		return nil, errors.Annotate(err, "token exchange").Err()
	}
	if tok.AccessToken == "" {
		return nil, ErrNoToken
	}
	return tok, nil
}

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

package androidpublisher

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"go.chromium.org/playpublisher/common/api/gensupport"
	"go.chromium.org/playpublisher/common/auth"
	"go.chromium.org/playpublisher/common/errors"
	"go.chromium.org/playpublisher/common/retry"
)

// Options configure a Service.
type Options struct {
	// Client sends the requests. nil means http.DefaultClient.
	Client *http.Client

	// Auth supplies the bearer tokens. nil leaves authorization to Client,
	// or to a delegate answering TokenFailure.
	Auth auth.Authenticator

	// UserAgent is appended to the library's own user agent.
	UserAgent string

	// BasePath and RootURL override the production endpoint.
	BasePath string
	RootURL  string

	// Delegate observes every call that has no delegate of its own.
	Delegate gensupport.Delegate

	// Retry decides on retries the delegate declines. See gensupport.Config.
	Retry retry.Factory

	// MaxAttempts bounds the requests of a single call. See
	// gensupport.Config.
	MaxAttempts int
}

// NewService returns a Service configured by opts.
//
// ctx is not retained, each call carries its own.
func NewService(ctx context.Context, opts Options) (*Service, error) {
	h := &hub{
		cfg: gensupport.Config{
			Client:        opts.Client,
			Auth:          opts.Auth,
			UserAgent:     opts.UserAgent,
			BasePath:      basePath,
			RootURL:       rootURL,
			DefaultScopes: []string{AndroidpublisherScope},
			Delegate:      opts.Delegate,
			Retry:         opts.Retry,
			MaxAttempts:   opts.MaxAttempts,
		},
	}
	if opts.BasePath != "" {
		if err := checkURL(opts.BasePath); err != nil {
			return nil, errors.Annotate(err, "bad base path").Err()
		}
		h.cfg.BasePath = opts.BasePath
	}
	if opts.RootURL != "" {
		if err := checkURL(opts.RootURL); err != nil {
			return nil, errors.Annotate(err, "bad root URL").Err()
		}
		h.cfg.RootURL = opts.RootURL
	}
	return newService(h), nil
}

func checkURL(s string) error {
	u, err := url.Parse(s)
	switch {
	case err != nil:
		return err
	case u.Scheme == "" || u.Host == "":
		return errors.Reason("%q is not an absolute URL", s).Err()
	}
	return nil
}

// hub holds the state shared by every call of a Service.
type hub struct {
	mu  sync.RWMutex
	cfg gensupport.Config
}

// UserAgent returns the user agent suffix of the service.
func (h *hub) UserAgent() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg.UserAgent
}

// SetUserAgent replaces the user agent suffix and returns the previous one.
// Calls already being sent are not affected.
func (h *hub) SetUserAgent(ua string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.cfg.UserAgent
	h.cfg.UserAgent = ua
	return prev
}

// BasePath returns the URL regular calls are resolved against.
func (h *hub) BasePath() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg.BasePath
}

// SetBasePath replaces the base path and returns the previous one.
func (h *hub) SetBasePath(p string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.cfg.BasePath
	h.cfg.BasePath = p
	return prev
}

// RootURL returns the URL uploads are resolved against.
func (h *hub) RootURL() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg.RootURL
}

// SetRootURL replaces the root URL and returns the previous one.
func (h *hub) SetRootURL(u string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.cfg.RootURL
	h.cfg.RootURL = u
	return prev
}

func (h *hub) config() *gensupport.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cfg := h.cfg
	return &cfg
}

func (h *hub) send(ctx context.Context, req *gensupport.Request) (*http.Response, error) {
	return gensupport.Send(ctx, h.config(), req)
}

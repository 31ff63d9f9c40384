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

// Package fakeplay implements an in-memory subset of the Google Play Android
// Developer API, enough to exercise the client and the playpub tool against
// a local HTTP server.
//
// The fake keeps edits, tracks, listings, reviews and purchases per package.
// Packages must be registered with AddApp before use.
package fakeplay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/schema"
	"github.com/julienschmidt/httprouter"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/clock"
)

const (
	apiPrefix     = "/androidpublisher/v3/applications"
	uploadPrefix  = "/upload" + apiPrefix
	sharingPrefix = "/upload" + apiPrefix + "/internalappsharing/"
)

// Server is an http.Handler serving the fake API.
type Server struct {
	// Token, if set, is the only bearer token accepted.
	Token string
	// Clock stamps edits and replies. nil means the system clock.
	Clock clock.Clock

	mu       sync.Mutex
	apps     map[string]*app
	nextEdit int
	requests int

	router  *httprouter.Router
	sharing *httprouter.Router
	query   *schema.Decoder
}

type app struct {
	nextVersion int64
	versions    map[int64]bool

	details  *androidpublisher.AppDetails
	tracks   map[string]*androidpublisher.Track
	listings map[string]*androidpublisher.Listing

	reviews  []*androidpublisher.Review
	products map[string]*androidpublisher.ProductPurchase
	subs     map[string]*androidpublisher.SubscriptionPurchase
	voided   []*androidpublisher.VoidedPurchase

	edits map[string]*edit
}

// edit stages changes to an app until it is committed.
type edit struct {
	id     string
	expiry int64

	apks     []*androidpublisher.Apk
	bundles  []*androidpublisher.Bundle
	versions map[int64]bool

	details  *androidpublisher.AppDetails
	tracks   map[string]*androidpublisher.Track
	listings map[string]*androidpublisher.Listing
}

// New returns an empty fake.
func New() *Server {
	s := &Server{
		apps:    map[string]*app{},
		router:  httprouter.New(),
		sharing: httprouter.New(),
		query:   schema.NewDecoder(),
	}
	s.query.IgnoreUnknownKeys(true)
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	edits := apiPrefix + "/:packageName/edits"
	r.POST(edits, s.insertEdit)
	r.GET(edits+"/:editId", s.getEdit)
	r.DELETE(edits+"/:editId", s.deleteEdit)
	r.POST(edits+"/:editId", s.editAction)

	r.GET(edits+"/:editId/apks", s.listApks)
	r.GET(edits+"/:editId/bundles", s.listBundles)
	r.POST(uploadPrefix+"/:packageName/edits/:editId/apks", s.uploadApk)
	r.POST(uploadPrefix+"/:packageName/edits/:editId/bundles", s.uploadBundle)

	r.GET(edits+"/:editId/details", s.getDetails)
	r.PUT(edits+"/:editId/details", s.updateDetails)

	r.GET(edits+"/:editId/tracks", s.listTracks)
	r.GET(edits+"/:editId/tracks/:track", s.getTrack)
	r.PUT(edits+"/:editId/tracks/:track", s.updateTrack)
	r.PATCH(edits+"/:editId/tracks/:track", s.updateTrack)

	r.GET(edits+"/:editId/listings", s.listListings)
	r.GET(edits+"/:editId/listings/:language", s.getListing)
	r.PUT(edits+"/:editId/listings/:language", s.updateListing)
	r.DELETE(edits+"/:editId/listings/:language", s.deleteListing)

	reviews := apiPrefix + "/:packageName/reviews"
	r.GET(reviews, s.listReviews)
	r.GET(reviews+"/:reviewId", s.getReview)
	r.POST(reviews+"/:reviewId", s.replyReview)

	purchases := apiPrefix + "/:packageName/purchases"
	r.GET(purchases+"/products/:productId/tokens/:token", s.getProduct)
	r.POST(purchases+"/products/:productId/tokens/:token", s.acknowledgeProduct)
	r.GET(purchases+"/subscriptions/:subscriptionId/tokens/:token", s.getSubscription)
	r.POST(purchases+"/subscriptions/:subscriptionId/tokens/:token", s.subscriptionAction)
	r.GET(purchases+"/voidedpurchases", s.listVoided)

	s.sharing.POST(sharingPrefix+":packageName/artifacts/:kind", s.shareArtifact)

	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "notFound", "no such method: %s %s", r.Method, r.URL.Path)
	})
	r.MethodNotAllowed = r.NotFound
	s.sharing.NotFound = r.NotFound
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	if s.Token != "" && r.Header.Get("Authorization") != "Bearer "+s.Token {
		writeError(w, http.StatusUnauthorized, "authError", "Invalid Credentials")
		return
	}
	if strings.HasPrefix(r.URL.Path, sharingPrefix) {
		s.sharing.ServeHTTP(w, r)
		return
	}
	s.router.ServeHTTP(w, r)
}

// Requests returns the number of requests served so far.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// AddApp registers a package. versions are recorded as already uploaded and
// committed.
func (s *Server) AddApp(packageName string, versions ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.apps[packageName]
	if a == nil {
		a = &app{
			nextVersion: 1,
			versions:    map[int64]bool{},
			details:     &androidpublisher.AppDetails{DefaultLanguage: "en-US"},
			tracks:      map[string]*androidpublisher.Track{},
			listings:    map[string]*androidpublisher.Listing{},
			products:    map[string]*androidpublisher.ProductPurchase{},
			subs:        map[string]*androidpublisher.SubscriptionPurchase{},
			edits:       map[string]*edit{},
		}
		for _, name := range []string{"internal", "alpha", "beta", "production"} {
			a.tracks[name] = &androidpublisher.Track{Track: name}
		}
		s.apps[packageName] = a
	}
	for _, v := range versions {
		a.versions[v] = true
		if v >= a.nextVersion {
			a.nextVersion = v + 1
		}
	}
}

// AddReview adds a review to a registered package.
func (s *Server) AddReview(packageName string, r *androidpublisher.Review) {
	s.withApp(packageName, func(a *app) { a.reviews = append(a.reviews, clone(r)) })
}

// AddProductPurchase records an in-app product purchase.
func (s *Server) AddProductPurchase(packageName, productID, token string, p *androidpublisher.ProductPurchase) {
	s.withApp(packageName, func(a *app) { a.products[productID+"/"+token] = clone(p) })
}

// AddSubscriptionPurchase records a subscription purchase.
func (s *Server) AddSubscriptionPurchase(packageName, subscriptionID, token string, p *androidpublisher.SubscriptionPurchase) {
	s.withApp(packageName, func(a *app) { a.subs[subscriptionID+"/"+token] = clone(p) })
}

// AddVoidedPurchase records a voided purchase.
func (s *Server) AddVoidedPurchase(packageName string, v *androidpublisher.VoidedPurchase) {
	s.withApp(packageName, func(a *app) { a.voided = append(a.voided, clone(v)) })
}

// SetListing replaces a committed store listing.
func (s *Server) SetListing(packageName string, l *androidpublisher.Listing) {
	s.withApp(packageName, func(a *app) { a.listings[l.Language] = clone(l) })
}

// Track returns a copy of a committed track, or nil.
func (s *Server) Track(packageName, track string) (t *androidpublisher.Track) {
	s.withApp(packageName, func(a *app) { t = clone(a.tracks[track]) })
	return
}

// ProductPurchase returns a copy of a recorded product purchase, or nil.
func (s *Server) ProductPurchase(packageName, productID, token string) (p *androidpublisher.ProductPurchase) {
	s.withApp(packageName, func(a *app) { p = clone(a.products[productID+"/"+token]) })
	return
}

// Edits returns the number of open edits of a package.
func (s *Server) Edits(packageName string) (n int) {
	s.withApp(packageName, func(a *app) { n = len(a.edits) })
	return
}

func (s *Server) withApp(packageName string, cb func(*app)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.apps[packageName]
	if a == nil {
		panic(fmt.Sprintf("fakeplay: package %q is not registered", packageName))
	}
	cb(a)
}

// clone returns a deep copy of v through its JSON form.
func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	blob, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	out := new(T)
	if err := json.Unmarshal(blob, out); err != nil {
		panic(err)
	}
	return out
}

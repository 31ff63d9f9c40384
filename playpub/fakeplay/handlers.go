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

package fakeplay

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"go.chromium.org/playpublisher/common/api/androidpublisher/v3"
	"go.chromium.org/playpublisher/common/clock"
)

// editLifetime is how long an edit stays open.
const editLifetime = time.Hour

type errorItem struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Errors  []errorItem `json:"errors"`
}

func writeError(w http.ResponseWriter, code int, reason, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]errorBody{
		"error": {Code: code, Message: msg, Errors: []errorItem{{Reason: reason, Message: msg}}},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	json.NewEncoder(w).Encode(v)
}

func writeEmpty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return clock.GetSystemClock().Now()
}

func (s *Server) timestamp() *androidpublisher.Timestamp {
	now := s.now()
	return &androidpublisher.Timestamp{Seconds: now.Unix(), Nanos: int64(now.Nanosecond())}
}

// lookupApp returns the app named in the URL with the server locked, and the
// function unlocking it. On a miss it writes the error and returns nil.
func (s *Server) lookupApp(w http.ResponseWriter, p httprouter.Params) (a *app, unlock func()) {
	s.mu.Lock()
	a = s.apps[p.ByName("packageName")]
	if a == nil {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "applicationNotFound", "Package not found: %s.", p.ByName("packageName"))
		return nil, nil
	}
	return a, s.mu.Unlock
}

// lookupEdit is lookupApp followed by a lookup of the open edit named in the
// URL. Expired edits are dropped.
func (s *Server) lookupEdit(w http.ResponseWriter, p httprouter.Params) (a *app, e *edit, unlock func()) {
	a, unlock = s.lookupApp(w, p)
	if a == nil {
		return nil, nil, nil
	}
	id, _ := splitAction(p.ByName("editId"))
	e = a.edits[id]
	if e != nil && s.now().Unix() >= e.expiry {
		delete(a.edits, id)
		e = nil
	}
	if e == nil {
		unlock()
		writeError(w, http.StatusNotFound, "editNotFound", "No edit with id %s.", id)
		return nil, nil, nil
	}
	return a, e, unlock
}

// splitAction splits "id:action" path segments.
func splitAction(seg string) (id, action string) {
	if i := strings.LastIndexByte(seg, ':'); i >= 0 {
		return seg[:i], seg[i+1:]
	}
	return seg, ""
}

func (s *Server) decodeQuery(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := s.query.Decode(dst, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, "invalid", "Invalid query: %s", err)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "parseError", "Invalid JSON payload: %s", err)
		return false
	}
	return true
}

// readMedia reads the media part of a multipart upload.
func readMedia(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.URL.Query().Get("uploadType") != "multipart" {
		writeError(w, http.StatusBadRequest, "badContent", "Media upload requires uploadType=multipart.")
		return nil, false
	}
	mt, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "multipart/related" {
		writeError(w, http.StatusBadRequest, "badContent", "Unsupported content type %q.", r.Header.Get("Content-Type"))
		return nil, false
	}
	mr := multipart.NewReader(r.Body, params["boundary"])
	if _, err := mr.NextPart(); err != nil {
		writeError(w, http.StatusBadRequest, "badContent", "Missing metadata part: %s", err)
		return nil, false
	}
	part, err := mr.NextPart()
	if err != nil {
		writeError(w, http.StatusBadRequest, "badContent", "Missing media part: %s", err)
		return nil, false
	}
	blob, err := io.ReadAll(part)
	if err != nil {
		writeError(w, http.StatusBadRequest, "badContent", "Reading media: %s", err)
		return nil, false
	}
	return blob, true
}

func digests(blob []byte) (string, string) {
	s1 := sha1.Sum(blob)
	s256 := sha256.Sum256(blob)
	return hex.EncodeToString(s1[:]), hex.EncodeToString(s256[:])
}

// Edits.

func (s *Server) insertEdit(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if !decodeBody(w, r, &androidpublisher.AppEdit{}) {
		return
	}
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	s.nextEdit++
	e := &edit{
		id:       fmt.Sprintf("edit-%d", s.nextEdit),
		expiry:   s.now().Add(editLifetime).Unix(),
		versions: map[int64]bool{},
		details:  clone(a.details),
		tracks:   map[string]*androidpublisher.Track{},
		listings: map[string]*androidpublisher.Listing{},
	}
	for k, v := range a.tracks {
		e.tracks[k] = clone(v)
	}
	for k, v := range a.listings {
		e.listings[k] = clone(v)
	}
	a.edits[e.id] = e
	writeJSON(w, e.resource())
}

func (e *edit) resource() *androidpublisher.AppEdit {
	return &androidpublisher.AppEdit{Id: e.id, ExpiryTimeSeconds: strconv.FormatInt(e.expiry, 10)}
}

func (s *Server) getEdit(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	writeJSON(w, e.resource())
}

func (s *Server) deleteEdit(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	a, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	delete(a.edits, e.id)
	writeEmpty(w)
}

type commitQuery struct {
	ChangesNotSentForReview bool `schema:"changesNotSentForReview"`
}

func (s *Server) editAction(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var q commitQuery
	if !s.decodeQuery(w, r, &q) {
		return
	}
	a, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()

	switch _, action := splitAction(p.ByName("editId")); action {
	case "validate":
		if err := e.validate(a); err != "" {
			writeError(w, http.StatusBadRequest, "invalid", "%s", err)
			return
		}
		writeJSON(w, e.resource())
	case "commit":
		if err := e.validate(a); err != "" {
			writeError(w, http.StatusBadRequest, "invalid", "%s", err)
			return
		}
		for v := range e.versions {
			a.versions[v] = true
		}
		a.details = e.details
		a.tracks = e.tracks
		a.listings = e.listings
		delete(a.edits, e.id)
		writeJSON(w, e.resource())
	default:
		writeError(w, http.StatusNotFound, "notFound", "Unknown edit action %q.", action)
	}
}

var trackStatuses = map[string]bool{
	"draft":      true,
	"inProgress": true,
	"halted":     true,
	"completed":  true,
}

// validate returns a description of the first problem of the edit, or "".
func (e *edit) validate(a *app) string {
	names := make([]string, 0, len(e.tracks))
	for name := range e.tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, rel := range e.tracks[name].Releases {
			if !trackStatuses[rel.Status] {
				return fmt.Sprintf("Track %s: unknown release status %q.", name, rel.Status)
			}
			if rel.Status == "inProgress" && (rel.UserFraction <= 0 || rel.UserFraction >= 1) {
				return fmt.Sprintf("Track %s: a staged rollout needs a user fraction in (0, 1).", name)
			}
			for _, v := range rel.VersionCodes {
				if !a.versions[v] && !e.versions[v] {
					return fmt.Sprintf("Track %s: version code %d has not been uploaded.", name, v)
				}
			}
		}
	}
	return ""
}

// Artifacts.

func (s *Server) listApks(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	writeJSON(w, &androidpublisher.ApksListResponse{Kind: "androidpublisher#apksListResponse", Apks: e.apks})
}

func (s *Server) listBundles(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	writeJSON(w, &androidpublisher.BundlesListResponse{Kind: "androidpublisher#bundlesListResponse", Bundles: e.bundles})
}

func (s *Server) uploadApk(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	blob, ok := readMedia(w, r)
	if !ok {
		return
	}
	a, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()

	s1, s256 := digests(blob)
	apk := &androidpublisher.Apk{
		VersionCode: a.nextVersion,
		Binary:      &androidpublisher.ApkBinary{Sha1: s1, Sha256: s256},
	}
	a.nextVersion++
	e.versions[apk.VersionCode] = true
	e.apks = append(e.apks, apk)
	writeJSON(w, apk)
}

func (s *Server) uploadBundle(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	blob, ok := readMedia(w, r)
	if !ok {
		return
	}
	a, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()

	s1, s256 := digests(blob)
	b := &androidpublisher.Bundle{VersionCode: a.nextVersion, Sha1: s1, Sha256: s256}
	a.nextVersion++
	e.versions[b.VersionCode] = true
	e.bundles = append(e.bundles, b)
	writeJSON(w, b)
}

func (s *Server) shareArtifact(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	kind := p.ByName("kind")
	if kind != "apk" && kind != "bundle" {
		writeError(w, http.StatusNotFound, "notFound", "Unknown artifact kind %q.", kind)
		return
	}
	blob, ok := readMedia(w, r)
	if !ok {
		return
	}
	_, unlock := s.lookupApp(w, p)
	if unlock == nil {
		return
	}
	defer unlock()

	_, s256 := digests(blob)
	writeJSON(w, &androidpublisher.InternalAppSharingArtifact{
		Sha256:                 s256,
		CertificateFingerprint: "FA:KE:CE:RT",
		DownloadUrl:            fmt.Sprintf("https://play.google.com/apps/test/%s/%s", p.ByName("packageName"), uuid.NewString()),
	})
}

// Details, tracks and listings.

func (s *Server) getDetails(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	writeJSON(w, e.details)
}

func (s *Server) updateDetails(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	d := &androidpublisher.AppDetails{}
	if !decodeBody(w, r, d) {
		return
	}
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	e.details = d
	writeJSON(w, d)
}

func (s *Server) listTracks(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()

	res := &androidpublisher.TracksListResponse{Kind: "androidpublisher#tracksListResponse"}
	for _, t := range e.tracks {
		res.Tracks = append(res.Tracks, t)
	}
	sort.Slice(res.Tracks, func(i, j int) bool { return res.Tracks[i].Track < res.Tracks[j].Track })
	writeJSON(w, res)
}

func (s *Server) getTrack(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()

	t := e.tracks[p.ByName("track")]
	if t == nil {
		writeError(w, http.StatusNotFound, "trackNotFound", "Track %s not found.", p.ByName("track"))
		return
	}
	writeJSON(w, t)
}

func (s *Server) updateTrack(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	t := &androidpublisher.Track{}
	if !decodeBody(w, r, t) {
		return
	}
	name := p.ByName("track")
	if t.Track != "" && t.Track != name {
		writeError(w, http.StatusBadRequest, "invalid", "Track name %q does not match %q.", t.Track, name)
		return
	}
	t.Track = name

	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	e.tracks[name] = t
	writeJSON(w, t)
}

func (s *Server) listListings(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()

	res := &androidpublisher.ListingsListResponse{Kind: "androidpublisher#listingsListResponse"}
	for _, l := range e.listings {
		res.Listings = append(res.Listings, l)
	}
	sort.Slice(res.Listings, func(i, j int) bool { return res.Listings[i].Language < res.Listings[j].Language })
	writeJSON(w, res)
}

func (s *Server) getListing(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()

	l := e.listings[p.ByName("language")]
	if l == nil {
		writeError(w, http.StatusNotFound, "listingNotFound", "No listing for language %s.", p.ByName("language"))
		return
	}
	writeJSON(w, l)
}

func (s *Server) updateListing(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	l := &androidpublisher.Listing{}
	if !decodeBody(w, r, l) {
		return
	}
	l.Language = p.ByName("language")

	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	e.listings[l.Language] = l
	writeJSON(w, l)
}

func (s *Server) deleteListing(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	_, e, unlock := s.lookupEdit(w, p)
	if e == nil {
		return
	}
	defer unlock()
	delete(e.listings, p.ByName("language"))
	writeEmpty(w)
}

// Reviews.

type listQuery struct {
	MaxResults          int64  `schema:"maxResults"`
	StartIndex          int64  `schema:"startIndex"`
	Token               string `schema:"token"`
	TranslationLanguage string `schema:"translationLanguage"`
}

// page selects the window of n items described by q. Tokens are the decimal
// index of the first item of the page.
func (q *listQuery) page(n int, defaultSize int64) (start, end int, next string, ok bool) {
	start = int(q.StartIndex)
	if q.Token != "" {
		idx, err := strconv.Atoi(q.Token)
		if err != nil || idx < 0 {
			return 0, 0, "", false
		}
		start = idx
	}
	size := q.MaxResults
	if size <= 0 {
		size = defaultSize
	}
	if start > n {
		start = n
	}
	end = start + int(size)
	if end >= n {
		end = n
	} else {
		next = strconv.Itoa(end)
	}
	return start, end, next, true
}

func pagination(next string) *androidpublisher.TokenPagination {
	if next == "" {
		return nil
	}
	return &androidpublisher.TokenPagination{NextPageToken: next}
}

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var q listQuery
	if !s.decodeQuery(w, r, &q) {
		return
	}
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	start, end, next, ok := q.page(len(a.reviews), 10)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid", "Invalid page token %q.", q.Token)
		return
	}
	writeJSON(w, &androidpublisher.ReviewsListResponse{
		Reviews:         a.reviews[start:end],
		TokenPagination: pagination(next),
		PageInfo: &androidpublisher.PageInfo{
			ResultPerPage: int64(end - start),
			StartIndex:    int64(start),
			TotalResults:  int64(len(a.reviews)),
		},
	})
}

func (a *app) review(id string) *androidpublisher.Review {
	for _, r := range a.reviews {
		if r.ReviewId == id {
			return r
		}
	}
	return nil
}

func (s *Server) getReview(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	rev := a.review(p.ByName("reviewId"))
	if rev == nil {
		writeError(w, http.StatusNotFound, "reviewNotFound", "Review %s not found.", p.ByName("reviewId"))
		return
	}
	writeJSON(w, rev)
}

func (s *Server) replyReview(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id, action := splitAction(p.ByName("reviewId"))
	if action != "reply" {
		writeError(w, http.StatusNotFound, "notFound", "Unknown review action %q.", action)
		return
	}
	req := &androidpublisher.ReviewsReplyRequest{}
	if !decodeBody(w, r, req) {
		return
	}
	if req.ReplyText == "" {
		writeError(w, http.StatusBadRequest, "invalid", "Reply text must not be empty.")
		return
	}
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	rev := a.review(id)
	if rev == nil {
		writeError(w, http.StatusNotFound, "reviewNotFound", "Review %s not found.", id)
		return
	}
	ts := s.timestamp()
	reply := &androidpublisher.Comment{
		DeveloperComment: &androidpublisher.DeveloperComment{Text: req.ReplyText, LastModified: ts},
	}
	// A review holds at most one developer reply.
	kept := rev.Comments[:0]
	for _, c := range rev.Comments {
		if c.DeveloperComment == nil {
			kept = append(kept, c)
		}
	}
	rev.Comments = append(kept, reply)
	writeJSON(w, &androidpublisher.ReviewsReplyResponse{
		Result: &androidpublisher.ReviewReplyResult{ReplyText: req.ReplyText, LastEdited: ts},
	})
}

// Purchases.

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	pp := a.products[p.ByName("productId")+"/"+p.ByName("token")]
	if pp == nil {
		writeError(w, http.StatusNotFound, "purchaseTokenNotFound", "The purchase token was not found.")
		return
	}
	writeJSON(w, pp)
}

func (s *Server) acknowledgeProduct(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	token, action := splitAction(p.ByName("token"))
	if action != "acknowledge" {
		writeError(w, http.StatusNotFound, "notFound", "Unknown purchase action %q.", action)
		return
	}
	if !decodeBody(w, r, &androidpublisher.ProductPurchasesAcknowledgeRequest{}) {
		return
	}
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	pp := a.products[p.ByName("productId")+"/"+token]
	if pp == nil {
		writeError(w, http.StatusNotFound, "purchaseTokenNotFound", "The purchase token was not found.")
		return
	}
	pp.AcknowledgementState = androidpublisher.AcknowledgementStateAcknowledged
	writeEmpty(w)
}

func (s *Server) getSubscription(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	sp := a.subs[p.ByName("subscriptionId")+"/"+p.ByName("token")]
	if sp == nil {
		writeError(w, http.StatusNotFound, "purchaseTokenNotFound", "The subscription purchase token was not found.")
		return
	}
	writeJSON(w, sp)
}

func (s *Server) subscriptionAction(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	token, action := splitAction(p.ByName("token"))
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	sp := a.subs[p.ByName("subscriptionId")+"/"+token]
	if sp == nil {
		writeError(w, http.StatusNotFound, "purchaseTokenNotFound", "The subscription purchase token was not found.")
		return
	}
	switch action {
	case "acknowledge":
		sp.AcknowledgementState = androidpublisher.AcknowledgementStateAcknowledged
	case "cancel":
		sp.AutoRenewing = false
		sp.CancelReason = androidpublisher.CancelReasonDeveloperCanceled
		sp.UserCancellationTimeMillis = s.now().UnixMilli()
	case "revoke":
		sp.AutoRenewing = false
		sp.ExpiryTimeMillis = s.now().UnixMilli()
	case "refund":
	default:
		writeError(w, http.StatusNotFound, "notFound", "Unknown subscription action %q.", action)
		return
	}
	writeEmpty(w)
}

type voidedQuery struct {
	listQuery
	StartTime int64 `schema:"startTime"`
	EndTime   int64 `schema:"endTime"`
}

func (s *Server) listVoided(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var q voidedQuery
	if !s.decodeQuery(w, r, &q) {
		return
	}
	a, unlock := s.lookupApp(w, p)
	if a == nil {
		return
	}
	defer unlock()

	var matched []*androidpublisher.VoidedPurchase
	for _, v := range a.voided {
		if q.StartTime != 0 && v.VoidedTimeMillis < q.StartTime {
			continue
		}
		if q.EndTime != 0 && v.VoidedTimeMillis > q.EndTime {
			continue
		}
		matched = append(matched, v)
	}
	start, end, next, ok := q.page(len(matched), 1000)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid", "Invalid page token %q.", q.Token)
		return
	}
	writeJSON(w, &androidpublisher.VoidedPurchasesListResponse{
		VoidedPurchases: matched[start:end],
		TokenPagination: pagination(next),
		PageInfo: &androidpublisher.PageInfo{
			ResultPerPage: int64(end - start),
			StartIndex:    int64(start),
			TotalResults:  int64(len(matched)),
		},
	})
}

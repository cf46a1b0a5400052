// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/legend-score/lscli/internal/session"
)

func newTestStore(token string) *session.Store {
	s := session.NewStore(session.NewMemoryBackend())
	if token != "" {
		if err := s.Store(token); err != nil {
			panic(err)
		}
	}
	return s
}

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"result":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore("t1"))
	var out struct {
		Result bool `json:"result"`
	}
	if err := c.Get(context.Background(), "/ping", nil, &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("expected bearer token on the request, got %q", gotAuth)
	}
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"result":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(""))
	var out struct{}
	if err := c.Get(context.Background(), "/ping", nil, &out); err != nil {
		t.Fatalf("an unauthenticated request must still be sent: %v", err)
	}
	if hasAuth {
		t.Fatalf("expected no Authorization header when the store is empty")
	}
}

func TestNon2xxPropagatesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(""))
	err := c.Get(context.Background(), "/ping", nil, &struct{}{})
	if err == nil {
		t.Fatalf("expected an error for a 500 response")
	}
	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("expected *HTTPError, got %T: %v", err, err)
	}
	if herr.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", herr.Status)
	}
	if herr.Path != "/ping" {
		t.Fatalf("expected failing path to be preserved, got %q", herr.Path)
	}
}

func TestMalformedPayloadPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(""))
	if err := c.Get(context.Background(), "/ping", nil, &struct{}{}); err == nil {
		t.Fatalf("expected a decode error for a malformed payload")
	}
}

func TestNetworkErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := New(srv.URL, newTestStore(""))
	if err := c.Get(context.Background(), "/ping", nil, &struct{}{}); err == nil {
		t.Fatalf("expected a transport error when the backend is unreachable")
	}
}

func TestPostSendsJSONContentType(t *testing.T) {
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"result":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(""))
	body := map[string]string{"login_id": "alice"}
	if err := c.Post(context.Background(), "/thing", body, &struct{}{}); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if gotType != "application/json" {
		t.Fatalf("expected application/json content type, got %q", gotType)
	}
}

func TestEmptyBaseURLFallsBackToDefault(t *testing.T) {
	c := New("", newTestStore(""))
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("expected default base URL, got %q", c.BaseURL())
	}
}

func TestTrailingSlashNormalized(t *testing.T) {
	c := New("http://example.test/", newTestStore(""))
	if c.BaseURL() != "http://example.test" {
		t.Fatalf("expected trailing slash to be trimmed, got %q", c.BaseURL())
	}
}

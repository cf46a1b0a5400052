// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// package api is the single chokepoint for all requests to the Legend Score
// backend. Every call resolves the base URL the same way, carries the JSON
// content type, and attaches the stored bearer token when one exists. A
// request with no stored token is simply sent unauthenticated; rejecting it
// is the backend's job.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/legend-score/lscli/internal/logging"
	"github.com/legend-score/lscli/internal/session"
)

// DefaultBaseURL is used when no base URL is configured. A native client
// has no page origin to issue relative requests against, so the development
// backend address stands in for the browser's "same origin".
const DefaultBaseURL = "http://localhost:8080"

// Doer is the transport behind the client; *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client issues requests against the backend. All screens and CLI commands
// share one instance so auth attachment cannot be bypassed.
type Client struct {
	baseURL  string
	http     Doer
	sessions *session.Store
}

// New creates a client for the given base URL, falling back to
// DefaultBaseURL when it is empty. The base URL is resolved exactly once.
func New(baseURL string, sessions *session.Store) *Client {
	return NewWithDoer(baseURL, sessions, &http.Client{})
}

// NewWithDoer creates a client with an explicit transport, for tests.
func NewWithDoer(baseURL string, sessions *session.Store, d Doer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     d,
		sessions: sessions,
	}
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request. Query may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// do runs the shared request pipeline: build the URL, marshal the body,
// attach the bearer token if one is stored, send, and decode the response
// envelope. Transport failures (network error, non-2xx status, malformed
// payload) are logged with the failing path and then propagated to the
// caller; they are never retried or swallowed here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.sessions.Read(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logging.Errorf("api: %s %s failed: %v", method, path, err)
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Errorf("api: %s %s read body failed: %v", method, path, err)
		return fmt.Errorf("read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := &HTTPError{Status: resp.StatusCode, Path: path, Body: strings.TrimSpace(string(data))}
		logging.Errorf("api: %s %s failed: %v", method, path, herr)
		return herr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			logging.Errorf("api: %s %s decode failed: %v", method, path, err)
			return fmt.Errorf("decode response from %s: %w", path, err)
		}
	}
	return nil
}

// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the data structures exchanged with the Legend Score
// backend. Users are read-only on the client except at creation time; the
// password field is write-only and is never returned by the backend.
package model

import "net/url"

// User is a user record as returned by the backend.
type User struct {
	ID      int    `json:"id"`
	LoginID string `json:"login_id"`
	Name    string `json:"name"`
}

// UserFilter holds the search criteria for the user list. Empty fields are
// omitted from the outgoing request rather than sent as empty strings.
type UserFilter struct {
	UserID  string
	LoginID string
	Name    string
}

// Query converts the filter into URL query parameters, skipping empty fields.
// An empty filter yields an empty (but non-nil) values map.
func (f UserFilter) Query() url.Values {
	q := url.Values{}
	if f.UserID != "" {
		q.Set("user_id", f.UserID)
	}
	if f.LoginID != "" {
		q.Set("login_id", f.LoginID)
	}
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	return q
}

// IsZero reports whether no filter criteria are set.
func (f UserFilter) IsZero() bool {
	return f.UserID == "" && f.LoginID == "" && f.Name == ""
}

// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"

	"github.com/legend-score/lscli/internal/model"
)

// UsersPath is the canonical user collection endpoint.
const UsersPath = "/api/v1/users"

// usersResponse is the list envelope.
type usersResponse struct {
	Result bool         `json:"result"`
	Code   string       `json:"code"`
	Users  []model.User `json:"users"`
}

// createUserRequest is the creation payload. Password is write-only; the
// backend never returns it.
type createUserRequest struct {
	LoginID  string `json:"login_id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// createUserResponse is the creation envelope.
type createUserResponse struct {
	Result  bool   `json:"result"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListUsers fetches users matching the filter. Empty filter fields are
// omitted from the query, so a zero filter returns the unfiltered set.
func (c *Client) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	var resp usersResponse
	if err := c.Get(ctx, UsersPath, filter.Query(), &resp); err != nil {
		return nil, err
	}
	if !resp.Result {
		return nil, &APIError{Code: resp.Code}
	}
	return resp.Users, nil
}

// CreateUser creates a new user. A result=false envelope (duplicate login
// ID, weak password) comes back as an *APIError with the backend's code and
// message.
func (c *Client) CreateUser(ctx context.Context, loginID, name, password string) error {
	var resp createUserResponse
	req := createUserRequest{LoginID: loginID, Name: name, Password: password}
	if err := c.Post(ctx, UsersPath, req, &resp); err != nil {
		return err
	}
	if !resp.Result {
		return &APIError{Code: resp.Code, Message: resp.Message}
	}
	return nil
}

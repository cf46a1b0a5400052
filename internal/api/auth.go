// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import "context"

// LoginPath is the canonical login endpoint. The backend's route table is
// versioned under /api/v1.
const LoginPath = "/api/v1/login"

// loginRequest is the login payload.
type loginRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

// loginResponse is the login envelope. Token is only set when Result is
// true; Code carries the ecode on rejection.
type loginResponse struct {
	Result bool   `json:"result"`
	Token  string `json:"token"`
	Code   string `json:"code"`
}

// Login authenticates with the backend and returns the session token. The
// token is returned, not stored; the caller decides when to persist it. A
// result=false envelope comes back as an *APIError carrying the ecode.
func (c *Client) Login(ctx context.Context, loginID, password string) (string, error) {
	var resp loginResponse
	if err := c.Post(ctx, LoginPath, loginRequest{LoginID: loginID, Password: password}, &resp); err != nil {
		return "", err
	}
	if !resp.Result {
		return "", &APIError{Code: resp.Code}
	}
	return resp.Token, nil
}

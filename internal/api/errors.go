// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"errors"
	"fmt"

	"github.com/legend-score/lscli/internal/i18n"
)

// Error codes returned by the backend in the response envelope.
const (
	// EcodeAuth is an authentication failure.
	EcodeAuth = "E0000"
	// EcodeRequest is a malformed or invalid request.
	EcodeRequest = "E0001"
	// EcodeAccountLocked means the account is locked.
	EcodeAccountLocked = "E1001"
	// EcodeLoginIDTaken means the login ID is already in use.
	EcodeLoginIDTaken = "E2001"
	// EcodeWeakPassword means the password does not meet the requirements.
	EcodeWeakPassword = "E2002"
	// EcodeSystem is an internal backend error.
	EcodeSystem = "E9000"
)

// HTTPError is a transport-level failure: the request reached the wire but
// came back with a non-2xx status.
type HTTPError struct {
	Status int
	Path   string
	Body   string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d (%s)", e.Status, e.Path)
}

// APIError is an application-level failure: a 2xx response whose envelope
// carried result=false. The request reached the backend and was validly
// rejected.
type APIError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "request rejected"
}

// Display returns a human-readable, never-empty message for the failure.
// Preference order: the backend's message verbatim, the localized ecode
// text, the raw code, then a generic fallback.
func (e *APIError) Display() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		if id := "ecode." + e.Code; i18n.Has(id) {
			return i18n.T(id)
		}
		return e.Code
	}
	return i18n.T("api.error_generic")
}

// DisplayError converts any failure into an inline, user-visible message.
// Application failures surface their own text; everything else (network
// error, non-2xx status, decode failure) collapses to the generic line so
// the user never sees an empty error.
func DisplayError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Display()
	}
	return i18n.T("api.error_generic")
}

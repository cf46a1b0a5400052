// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/legend-score/lscli/internal/i18n"

// route identifies a navigable screen. The values mirror the web client's
// paths so the two front ends stay recognizably the same application.
type route string

const (
	routeLogin route = "/"
	routeHome  route = "/home"
	routeUsers route = "/users"
)

// routeInfo describes one navigable screen: its display title and whether a
// session is required to reach it.
type routeInfo struct {
	route   route
	titleID string
	authed  bool
}

// routeTable is the explicit enumeration of all known routes. Guarded
// navigation and title derivation both go through it; there is no string
// switch scattered across screens.
var routeTable = []routeInfo{
	{route: routeLogin, titleID: "login.title", authed: false},
	{route: routeHome, titleID: "route.home", authed: true},
	{route: routeUsers, titleID: "route.users", authed: true},
}

// lookupRoute returns the descriptor for a route and whether it is known.
func lookupRoute(r route) (routeInfo, bool) {
	for _, info := range routeTable {
		if info.route == r {
			return info, true
		}
	}
	return routeInfo{}, false
}

// titleFor derives the header title for a route. Unknown routes fall back
// to the application name; the result is never empty.
func titleFor(r route) string {
	if info, ok := lookupRoute(r); ok {
		if title := i18n.T(info.titleID); title != "" {
			return title
		}
	}
	return i18n.T("app.name")
}

// requiresAuth reports whether the route sits behind the session gate.
// Unknown routes are guarded: an unrecognized target must never bypass the
// gate.
func requiresAuth(r route) bool {
	if info, ok := lookupRoute(r); ok {
		return info.authed
	}
	return true
}

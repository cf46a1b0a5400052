// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/legend-score/lscli/internal/i18n"
)

// navEntry is one side-navigation item: a guarded route and the key that
// reaches it.
type navEntry struct {
	route   route
	labelID string
	keyHint string
}

// navEntries lists the authenticated routes shown in the sidebar.
var navEntries = []navEntry{
	{route: routeHome, labelID: "nav.home", keyHint: "ctrl+h"},
	{route: routeUsers, labelID: "nav.users", keyHint: "ctrl+u"},
}

// renderChrome wraps a guarded screen in the shared authenticated layout:
// a header bar with the route-derived title, a sidebar listing the
// available routes plus the logout action, and a footer with key hints.
func renderChrome(title string, active route, content string, width, height int) string {
	if width <= 0 {
		width = 80
	}

	header := headerStyle.Width(width).Render(title)

	var navItems []string
	navItems = append(navItems, lipgloss.NewStyle().Bold(true).Render(i18n.T("nav.title")), "")
	for _, entry := range navEntries {
		label := i18n.T(entry.labelID)
		if entry.route == active {
			navItems = append(navItems, navSelectedItemStyle.Render("▸ "+label))
		} else {
			navItems = append(navItems, navItemStyle.Render("  "+label))
		}
		navItems = append(navItems, helpStyle.Render("    "+entry.keyHint))
	}
	navItems = append(navItems, "", errorStyle.Render("  "+i18n.T("nav.logout")), helpStyle.Render("    ctrl+l"))

	sidebarWidth := 26
	contentWidth := width - sidebarWidth - 8
	if contentWidth < 20 {
		contentWidth = 20
	}

	footer := footerStyle.Width(width).Render(i18n.T("nav.footer"))

	paneHeight := height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if paneHeight < 0 {
		paneHeight = 0
	}

	sidebar := paneStyle.Width(sidebarWidth).Height(paneHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, navItems...))
	main := lipgloss.NewStyle().Width(contentWidth).MarginLeft(2).Render(content)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal interface for lscli.
// This file defines the shared lipgloss styles used across the different
// screens to ensure a consistent look and feel.
package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
	colorWhite     = lipgloss.Color("231")
)

var (
	// Help text
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Error messages
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	// Success messages
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// Screen titles
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 2)

	// Header bar across the top of the authenticated chrome
	headerStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("25")). // Deep blue
			Bold(true).
			Padding(0, 2)

	// Side navigation items
	navItemStyle         = lipgloss.NewStyle()
	navSelectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Panes (filter form, list area, sidebar)
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	// Text inputs
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	blurredStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Modal dialogs
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorHighlight).
			Padding(1, 2).
			Width(60)

	// Buttons for forms and modals
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")). // Dark gray
			Padding(0, 3).
			MarginTop(1)

	activeButtonStyle = buttonStyle.
				Background(colorHighlight).
				Foreground(colorWhite)

	// Footer/help line
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Italic(true)
)

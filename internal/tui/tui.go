// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

// This file is the main entry point for the TUI, containing the top-level
// model that acts as a router over the login, home, and user management
// screens. Navigation to a guarded screen re-evaluates the session gate on
// every transition: without a token the router lands on the login screen
// and the original target is discarded.
package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/legend-score/lscli/internal/api"
	"github.com/legend-score/lscli/internal/config"
	"github.com/legend-score/lscli/internal/i18n"
	"github.com/legend-score/lscli/internal/logging"
	"github.com/legend-score/lscli/internal/model"
	"github.com/legend-score/lscli/internal/session"
)

// apiClient is the surface the screens need from the API gateway client.
// *api.Client satisfies it; tests inject fakes.
type apiClient interface {
	Login(ctx context.Context, loginID, password string) (string, error)
	ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, error)
	CreateUser(ctx context.Context, loginID, name, password string) error
}

// navigateMsg asks the router to switch to another route. The router, not
// the issuing screen, decides whether the gate admits the navigation.
type navigateMsg struct {
	to route
}

// navigateTo builds a command that requests navigation to a route.
func navigateTo(r route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: r} }
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active
// screen.
type mainModel struct {
	route    route
	sessions *session.Store
	client   apiClient

	// cfg is the live configuration; persistCfg writes it back to disk
	// when a setting changes at runtime. Tests inject a recorder.
	cfg        *config.Config
	persistCfg func(*config.Config) error

	login loginModel
	home  homeModel
	users *usersModel

	// initCmd is the command produced by the initial navigation, replayed
	// from Init when the program starts.
	initCmd tea.Cmd

	width  int
	height int
}

// newMainModel creates the starting state of the TUI. The first render goes
// through the same gate as any navigation: with a stored token it lands on
// the home screen, otherwise on the login screen.
func newMainModel(sessions *session.Store, client apiClient, cfg *config.Config, persistCfg func(*config.Config) error) mainModel {
	m := mainModel{
		route:      routeLogin,
		sessions:   sessions,
		client:     client,
		cfg:        cfg,
		persistCfg: persistCfg,
	}
	m, cmd := m.navigate(routeHome)
	m.initCmd = cmd
	return m
}

// Init is the first function called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return m.initCmd
}

// navigate switches the active route, enforcing the session gate. Guarded
// targets without a token redirect to the login screen; the login screen
// with a live session redirects to home, matching the web client.
func (m mainModel) navigate(r route) (mainModel, tea.Cmd) {
	if requiresAuth(r) && !m.sessions.IsAuthenticated() {
		r = routeLogin
	}
	if r == routeLogin && m.sessions.IsAuthenticated() {
		r = routeHome
	}

	m.route = r
	switch r {
	case routeUsers:
		users := newUsersModel(m.client)
		m.users = &users
		return m, m.users.Init()
	case routeHome:
		m.home = newHomeModel()
		return m, nil
	default:
		m.login = newLoginModel(m.client, m.sessions)
		return m, m.login.Init()
	}
}

// logout clears the session store and navigates to the login screen. This
// is the only authenticated-to-unauthenticated transition the router owns.
func (m mainModel) logout() (mainModel, tea.Cmd) {
	if err := m.sessions.Clear(); err != nil {
		logging.Warnf("tui: clearing session failed: %v", err)
	}
	return m.navigate(routeLogin)
}

// toggleLanguage switches between English and Japanese at runtime and
// persists the choice so the next start keeps it. The active screen is
// rebuilt so every visible string picks up the new locale; a persistence
// failure is logged but does not block the switch.
func (m mainModel) toggleLanguage() (mainModel, tea.Cmd) {
	if m.cfg.Language == "ja" {
		m.cfg.Language = "en"
	} else {
		m.cfg.Language = "ja"
	}
	i18n.SetLang(m.cfg.Language)
	if m.persistCfg != nil {
		if err := m.persistCfg(m.cfg); err != nil {
			logging.Warnf("tui: saving language setting failed: %v", err)
		}
	}
	return m.navigate(m.route)
}

// Update is the main message loop. Global keys and navigation are handled
// here; everything else is delegated to the active screen.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			newModel, cmd := m.toggleLanguage()
			return newModel, cmd
		}
		// Chrome keybindings, available on every guarded screen. The users
		// screen keeps them too while its dialog is open; the dialog only
		// captures its own form keys.
		if requiresAuth(m.route) {
			switch msg.String() {
			case "ctrl+h":
				newModel, cmd := m.navigate(routeHome)
				return newModel, cmd
			case "ctrl+u":
				newModel, cmd := m.navigate(routeUsers)
				return newModel, cmd
			case "ctrl+l":
				newModel, cmd := m.logout()
				return newModel, cmd
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case navigateMsg:
		newModel, cmd := m.navigate(msg.to)
		return newModel, cmd
	}

	var cmd tea.Cmd
	switch m.route {
	case routeUsers:
		var updated tea.Model
		updated, cmd = m.users.Update(msg)
		m.users = updated.(*usersModel)
	case routeHome:
		var updated tea.Model
		updated, cmd = m.home.Update(msg)
		m.home = updated.(homeModel)
	default:
		var updated tea.Model
		updated, cmd = m.login.Update(msg)
		m.login = updated.(loginModel)
	}
	return m, cmd
}

// View renders the active screen. Guarded screens are wrapped in the shared
// authenticated chrome; the login screen stands alone.
func (m mainModel) View() string {
	switch m.route {
	case routeUsers:
		return renderChrome(titleFor(m.route), m.route, m.users.View(), m.width, m.height)
	case routeHome:
		return renderChrome(titleFor(m.route), m.route, m.home.View(), m.width, m.height)
	default:
		return m.login.View()
	}
}

// Run is the main entrypoint for the TUI. It initializes and runs the
// Bubble Tea program against the shared session store, API client, and
// configuration; runtime setting changes are persisted through the config
// package.
func Run(sessions *session.Store, client *api.Client, cfg *config.Config) {
	m := newMainModel(sessions, client, cfg, config.WriteConfigFile)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		os.Exit(1)
	}
}

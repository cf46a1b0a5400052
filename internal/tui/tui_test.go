// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/legend-score/lscli/internal/api"
	"github.com/legend-score/lscli/internal/config"
	"github.com/legend-score/lscli/internal/i18n"
	"github.com/legend-score/lscli/internal/model"
	"github.com/legend-score/lscli/internal/session"
)

// newTestMain builds a router over a throwaway config that is never written
// to disk.
func newTestMain(sessions *session.Store, client apiClient) mainModel {
	cfg := &config.Config{Language: "en"}
	return newMainModel(sessions, client, cfg, func(*config.Config) error { return nil })
}

// fakeClient is an injectable apiClient that records calls.
type fakeClient struct {
	loginToken string
	loginErr   error
	users      []model.User
	listErr    error
	createErr  error

	loginCalls  int
	listFilters []model.UserFilter
	created     []string
}

func (f *fakeClient) Login(ctx context.Context, loginID, password string) (string, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeClient) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	f.listFilters = append(f.listFilters, filter)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeClient) CreateUser(ctx context.Context, loginID, name, password string) error {
	f.created = append(f.created, loginID)
	return f.createErr
}

// drainCmd executes a command tree and returns the produced messages.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func emptyStore() *session.Store {
	return session.NewStore(session.NewMemoryBackend())
}

func authedStore(t *testing.T) *session.Store {
	t.Helper()
	s := emptyStore()
	if err := s.Store("t1"); err != nil {
		t.Fatalf("store failed: %v", err)
	}
	return s
}

func TestGuardRedirectsWithoutToken(t *testing.T) {
	m := newTestMain(emptyStore(), &fakeClient{})
	if m.route != routeLogin {
		t.Fatalf("expected the guard to land on the login route, got %q", m.route)
	}
	view := m.View()
	if !strings.Contains(view, i18n.T("login.title")) {
		t.Fatalf("expected the login screen, got: %q", view)
	}
	if strings.Contains(view, i18n.T("home.welcome")) {
		t.Fatalf("guarded content must never flash for an unauthenticated render")
	}
}

func TestGuardAdmitsWithToken(t *testing.T) {
	m := newTestMain(authedStore(t), &fakeClient{})
	if m.route != routeHome {
		t.Fatalf("expected the home route with a stored token, got %q", m.route)
	}
	view := m.View()
	if !strings.Contains(view, i18n.T("route.home")) {
		t.Fatalf("expected the chrome title in the view")
	}
	if !strings.Contains(view, i18n.T("nav.users")) {
		t.Fatalf("expected the sidebar navigation in the view")
	}
}

func TestGuardedNavigationDiscardsTarget(t *testing.T) {
	m := newTestMain(emptyStore(), &fakeClient{})
	m, _ = m.navigate(routeUsers)
	if m.route != routeLogin {
		t.Fatalf("unauthenticated navigation to a guarded route must redirect to login, got %q", m.route)
	}
}

func TestTitleFallbackNeverEmpty(t *testing.T) {
	title := titleFor(route("/bogus"))
	if title == "" {
		t.Fatalf("unmapped routes must fall back to the application name")
	}
	if title != i18n.T("app.name") {
		t.Fatalf("expected the application name, got %q", title)
	}
}

func TestUnknownRouteIsGuarded(t *testing.T) {
	if !requiresAuth(route("/bogus")) {
		t.Fatalf("unknown routes must not bypass the session gate")
	}
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	sessions := authedStore(t)
	m := newTestMain(sessions, &fakeClient{})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(mainModel)

	if sessions.IsAuthenticated() {
		t.Fatalf("logout must clear the session store")
	}
	if m.route != routeLogin {
		t.Fatalf("logout must navigate to the login route, got %q", m.route)
	}
}

func TestLanguageToggleSwitchesAndPersists(t *testing.T) {
	defer i18n.SetLang("en")

	cfg := &config.Config{Language: "en"}
	var saved []string
	m := newMainModel(authedStore(t), &fakeClient{}, cfg, func(c *config.Config) error {
		saved = append(saved, c.Language)
		return nil
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(mainModel)
	if cfg.Language != "ja" {
		t.Fatalf("expected the language to switch to ja, got %q", cfg.Language)
	}
	if !strings.Contains(m.View(), "ようこそ") {
		t.Fatalf("expected the active screen to re-render in Japanese, got: %q", m.View())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = updated.(mainModel)
	if cfg.Language != "en" {
		t.Fatalf("expected a second toggle to switch back to en, got %q", cfg.Language)
	}
	if m.route != routeHome {
		t.Fatalf("a language switch must keep the active route, got %q", m.route)
	}

	// Every switch is written back so the next start keeps the choice.
	if len(saved) != 2 || saved[0] != "ja" || saved[1] != "en" {
		t.Fatalf("expected persisted languages [ja en], got %v", saved)
	}
}

func setLoginForm(m *loginModel, loginID, password string) {
	m.inputs[0].SetValue(loginID)
	m.inputs[1].SetValue(password)
}

func TestLoginSuccessStoresTokenAndNavigates(t *testing.T) {
	sessions := emptyStore()
	client := &fakeClient{loginToken: "t1"}
	m := newLoginModel(client, sessions)
	setLoginForm(&m, "alice", "pw")

	updated, cmd := m.submit()
	m = updated.(loginModel)
	if !m.submitting {
		t.Fatalf("expected the screen to be in-flight after submit")
	}

	msgs := drainCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one result message, got %d", len(msgs))
	}
	updated, cmd = m.Update(msgs[0])
	m = updated.(loginModel)

	if token, ok := sessions.Read(); !ok || token != "t1" {
		t.Fatalf("expected the token to be stored, got (%q, %v)", token, ok)
	}
	navMsgs := drainCmd(cmd)
	if len(navMsgs) != 1 {
		t.Fatalf("expected a navigation message, got %d", len(navMsgs))
	}
	nav, ok := navMsgs[0].(navigateMsg)
	if !ok || nav.to != routeHome {
		t.Fatalf("expected navigation to home, got %#v", navMsgs[0])
	}
}

func TestLoginFailureShowsCodeInline(t *testing.T) {
	sessions := emptyStore()
	client := &fakeClient{loginErr: &api.APIError{Code: "Invalid credentials"}}
	m := newLoginModel(client, sessions)
	setLoginForm(&m, "alice", "bad")

	updated, cmd := m.submit()
	m = updated.(loginModel)
	msgs := drainCmd(cmd)
	updated, cmd = m.Update(msgs[0])
	m = updated.(loginModel)

	if cmd != nil {
		t.Fatalf("a failed login must not navigate")
	}
	if sessions.IsAuthenticated() {
		t.Fatalf("a failed login must not store a token")
	}
	if m.submitting {
		t.Fatalf("the form must unlock after the request settles")
	}
	if !strings.Contains(m.View(), "Invalid credentials") {
		t.Fatalf("expected the failure code inline, got: %q", m.View())
	}
}

func TestLoginValidationBlocksRequest(t *testing.T) {
	client := &fakeClient{}
	m := newLoginModel(client, emptyStore())
	setLoginForm(&m, "", "")

	updated, cmd := m.submit()
	m = updated.(loginModel)

	if cmd != nil {
		t.Fatalf("an invalid form must not issue a request")
	}
	if client.loginCalls != 0 {
		t.Fatalf("expected no network call, got %d", client.loginCalls)
	}
	if !strings.Contains(m.View(), i18n.T("login.error_required")) {
		t.Fatalf("expected an inline validation message")
	}
}

func TestLoginTransportFailureGenericMessage(t *testing.T) {
	client := &fakeClient{loginErr: &api.HTTPError{Status: 500, Path: api.LoginPath}}
	m := newLoginModel(client, emptyStore())
	setLoginForm(&m, "alice", "pw")

	updated, cmd := m.submit()
	m = updated.(loginModel)
	updated, _ = m.Update(drainCmd(cmd)[0])
	m = updated.(loginModel)

	if !strings.Contains(m.View(), i18n.T("api.error_generic")) {
		t.Fatalf("expected the generic failure message, got: %q", m.View())
	}
}

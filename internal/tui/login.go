// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/legend-score/lscli/internal/api"
	"github.com/legend-score/lscli/internal/i18n"
	"github.com/legend-score/lscli/internal/session"
)

// loginResultMsg carries the outcome of a login request.
type loginResultMsg struct {
	token string
	err   error
}

// loginModel is the public login screen: login ID and password inputs plus
// a submit button.
type loginModel struct {
	client   apiClient
	sessions *session.Store

	inputs     []textinput.Model // 0: login_id, 1: password
	focusIndex int
	submitting bool
	errMsg     string
}

func newLoginModel(client apiClient, sessions *session.Store) loginModel {
	m := loginModel{
		client:   client,
		sessions: sessions,
		inputs:   make([]textinput.Model, 2),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 64
		t.Width = 32

		switch i {
		case 0:
			t.Prompt = i18n.T("login.login_id") + ": "
			t.Placeholder = "login id"
		case 1:
			t.Prompt = i18n.T("login.password") + ": "
			t.Placeholder = "password"
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}
		m.inputs[i] = t
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			// Nothing is stored on failure; the screen stays put and the
			// failure is shown inline.
			m.submitting = false
			m.errMsg = api.DisplayError(msg.err)
			return m, nil
		}
		if err := m.sessions.Store(msg.token); err != nil {
			m.submitting = false
			m.errMsg = i18n.T("login.error_generic")
			return m, nil
		}
		// One-time navigation to the default authenticated route.
		return m, navigateTo(routeHome)

	case tea.KeyMsg:
		if m.submitting {
			// A submission is in flight; ignore input until it settles.
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Enter on the button (or in the password field) submits.
			if s == "enter" && (m.focusIndex == len(m.inputs) || m.focusIndex == 1) {
				return m.submit()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
				if m.focusIndex < 0 {
					m.focusIndex = len(m.inputs)
				}
			} else {
				m.focusIndex++
				if m.focusIndex > len(m.inputs) {
					m.focusIndex = 0
				}
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].TextStyle = blurredStyle
			}
			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

// submit validates the form and issues the login request. Validation
// failures never reach the network.
func (m loginModel) submit() (tea.Model, tea.Cmd) {
	loginID := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()

	if loginID == "" || password == "" {
		m.errMsg = i18n.T("login.error_required")
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	client := m.client
	return m, func() tea.Msg {
		token, err := client.Login(context.Background(), loginID, password)
		return loginResultMsg{token: token, err: err}
	}
}

func (m *loginModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("login.title")))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString("  " + m.inputs[i].View())
		b.WriteString("\n")
	}

	button := buttonStyle.Render(i18n.T("login.sign_in"))
	if m.submitting {
		button = disabledStyle.Render(i18n.T("login.signing_in"))
	} else if m.focusIndex == len(m.inputs) {
		button = activeButtonStyle.Render(i18n.T("login.sign_in"))
	}
	b.WriteString("\n  " + button + "\n")

	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("  "+i18n.T("login.help")))

	box := paneStyle.Width(52).Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left, "", box)
}

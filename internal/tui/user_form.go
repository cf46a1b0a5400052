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
)

// dialogClosedMsg signals that the create-user dialog has closed. created
// tells the user list whether it needs to refresh.
type dialogClosedMsg struct {
	created bool
}

// userFormResultMsg carries the outcome of a create-user request.
type userFormResultMsg struct {
	err error
}

// userFormModel is the modal create-user dialog. A new model is built every
// time the dialog opens, which is what resets the fields and any prior
// error.
type userFormModel struct {
	client apiClient

	inputs     []textinput.Model // 0: login_id, 1: name, 2: password
	focusIndex int

	// inFlight locks the dialog while a submission is outstanding: both
	// submit and cancel are inert until the request settles.
	inFlight bool
	errMsg   string
}

const (
	userFormSubmitIndex = 3
	userFormCancelIndex = 4
)

func newUserFormModel(client apiClient) userFormModel {
	m := userFormModel{
		client: client,
		inputs: make([]textinput.Model, 3),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 64
		t.Width = 32

		switch i {
		case 0:
			t.Prompt = i18n.T("dialog.login_id") + ": "
		case 1:
			t.Prompt = i18n.T("dialog.name") + ": "
		case 2:
			t.Prompt = i18n.T("dialog.password") + ": "
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}
		m.inputs[i] = t
	}
	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m *userFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m userFormModel) update(msg tea.Msg) (userFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case userFormResultMsg:
		if msg.err != nil {
			// The dialog stays open with the entered values intact.
			m.inFlight = false
			m.errMsg = api.DisplayError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return dialogClosedMsg{created: true} }

	case tea.KeyMsg:
		if m.inFlight {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return dialogClosedMsg{created: false} }

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" {
				switch {
				case m.focusIndex == userFormCancelIndex:
					return m, func() tea.Msg { return dialogClosedMsg{created: false} }
				case m.focusIndex == userFormSubmitIndex || m.focusIndex == 2:
					return m.submit()
				}
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
				if m.focusIndex < 0 {
					m.focusIndex = userFormCancelIndex
				}
			} else {
				m.focusIndex++
				if m.focusIndex > userFormCancelIndex {
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

	if m.inFlight {
		return m, nil
	}
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// submit validates the form and issues the create request. Missing fields
// are caught client-side; no request is sent.
func (m userFormModel) submit() (userFormModel, tea.Cmd) {
	loginID := strings.TrimSpace(m.inputs[0].Value())
	name := strings.TrimSpace(m.inputs[1].Value())
	password := m.inputs[2].Value()

	if loginID == "" || name == "" || password == "" {
		m.errMsg = i18n.T("dialog.error_required")
		return m, nil
	}

	m.errMsg = ""
	m.inFlight = true
	client := m.client
	return m, func() tea.Msg {
		err := client.CreateUser(context.Background(), loginID, name, password)
		return userFormResultMsg{err: err}
	}
}

func (m userFormModel) view() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(i18n.T("dialog.title")))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	submit := buttonStyle.Render(i18n.T("dialog.submit"))
	cancel := buttonStyle.Render(i18n.T("dialog.cancel"))
	switch {
	case m.inFlight:
		submit = disabledStyle.Render(i18n.T("dialog.creating"))
		cancel = disabledStyle.Render(i18n.T("dialog.cancel"))
	case m.focusIndex == userFormSubmitIndex:
		submit = activeButtonStyle.Render(i18n.T("dialog.submit"))
	case m.focusIndex == userFormCancelIndex:
		cancel = activeButtonStyle.Render(i18n.T("dialog.cancel"))
	}
	b.WriteString("\n" + lipgloss.JoinHorizontal(lipgloss.Top, submit, "  ", cancel) + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	return dialogBoxStyle.Render(b.String())
}

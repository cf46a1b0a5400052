// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/legend-score/lscli/internal/api"
	"github.com/legend-score/lscli/internal/i18n"
	"github.com/legend-score/lscli/internal/model"
)

// usersState represents which presentation the user list is in.
type usersState int

const (
	// usersLoading: a list request is in flight. The first render is always
	// this state, before the first response arrives.
	usersLoading usersState = iota
	usersLoaded
	usersErrored
)

// usersLoadedMsg carries the outcome of a list request. Rapid resubmission
// can complete out of order; the screen applies whichever arrives last.
type usersLoadedMsg struct {
	users []model.User
	err   error
}

// fetchUsersCmd issues a list request with the given filter.
func fetchUsersCmd(client apiClient, filter model.UserFilter) tea.Cmd {
	return func() tea.Msg {
		users, err := client.ListUsers(context.Background(), filter)
		return usersLoadedMsg{users: users, err: err}
	}
}

// usersModel is the user management screen: a filter form, the result
// table, and the create-user dialog overlay.
type usersModel struct {
	client apiClient

	state  usersState
	users  []model.User
	errMsg string

	spinner spinner.Model
	table   table.Model

	inputs     []textinput.Model // 0: user_id, 1: login_id, 2: name
	focusIndex int

	// dialog is non-nil while the create-user dialog is open.
	dialog *userFormModel
}

func newUsersModel(client apiClient) usersModel {
	m := usersModel{
		client: client,
		state:  usersLoading,
		inputs: make([]textinput.Model, 3),
	}

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 64
		t.Width = 24

		switch i {
		case 0:
			t.Prompt = i18n.T("users.user_id") + ": "
		case 1:
			t.Prompt = i18n.T("users.login_id") + ": "
		case 2:
			t.Prompt = i18n.T("users.name") + ": "
		}
		m.inputs[i] = t
	}
	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle

	m.table = newUserTable(nil)
	return m
}

// newUserTable builds the result table for the given users.
func newUserTable(users []model.User) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: i18n.T("users.login_id"), Width: 18},
		{Title: i18n.T("users.name"), Width: 28},
	}
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{strconv.Itoa(u.ID), u.LoginID, u.Name})
	}
	height := len(rows) + 1
	if height > 12 {
		height = 12
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
}

// Init kicks off the initial, unfiltered list request.
func (m *usersModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, fetchUsersCmd(m.client, model.UserFilter{}))
}

// currentFilter reads the filter form into a UserFilter.
func (m *usersModel) currentFilter() model.UserFilter {
	return model.UserFilter{
		UserID:  strings.TrimSpace(m.inputs[0].Value()),
		LoginID: strings.TrimSpace(m.inputs[1].Value()),
		Name:    strings.TrimSpace(m.inputs[2].Value()),
	}
}

func (m *usersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		if msg.err != nil {
			m.state = usersErrored
			m.errMsg = api.DisplayError(msg.err)
			return m, nil
		}
		m.state = usersLoaded
		m.users = msg.users
		m.table = newUserTable(msg.users)
		return m, nil

	case spinner.TickMsg:
		if m.state != usersLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dialogClosedMsg:
		m.dialog = nil
		if msg.created {
			// Refresh with no filters so the new user is visible.
			m.state = usersLoading
			return m, tea.Batch(m.spinner.Tick, fetchUsersCmd(m.client, model.UserFilter{}))
		}
		return m, nil

	case userFormResultMsg:
		if m.dialog == nil {
			return m, nil
		}
		var cmd tea.Cmd
		*m.dialog, cmd = m.dialog.update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.dialog != nil {
			var cmd tea.Cmd
			*m.dialog, cmd = m.dialog.update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+n":
			// Opening always starts from a fresh form: no stale input, no
			// stale error.
			dialog := newUserFormModel(m.client)
			m.dialog = &dialog
			return m, m.dialog.Init()

		case "enter":
			m.state = usersLoading
			return m, tea.Batch(m.spinner.Tick, fetchUsersCmd(m.client, m.currentFilter()))

		case "ctrl+r":
			for i := range m.inputs {
				m.inputs[i].SetValue("")
			}
			m.state = usersLoading
			return m, tea.Batch(m.spinner.Tick, fetchUsersCmd(m.client, model.UserFilter{}))

		case "tab", "shift+tab", "up", "down":
			if msg.String() == "up" || msg.String() == "shift+tab" {
				m.focusIndex--
				if m.focusIndex < 0 {
					m.focusIndex = len(m.inputs) - 1
				}
			} else {
				m.focusIndex++
				if m.focusIndex >= len(m.inputs) {
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

	if m.dialog != nil {
		var cmd tea.Cmd
		*m.dialog, cmd = m.dialog.update(msg)
		return m, cmd
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *usersModel) View() string {
	if m.dialog != nil {
		return m.dialog.view()
	}

	var filterItems []string
	filterItems = append(filterItems, lipgloss.NewStyle().Bold(true).Render(i18n.T("users.search_conditions")), "")
	for i := range m.inputs {
		filterItems = append(filterItems, m.inputs[i].View())
	}
	filterPane := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, filterItems...))

	var listArea string
	switch m.state {
	case usersLoading:
		listArea = m.spinner.View() + " " + helpStyle.Render(i18n.T("users.loading"))
	case usersErrored:
		listArea = errorStyle.Render(m.errMsg)
	default:
		if len(m.users) == 0 {
			listArea = helpStyle.Render(i18n.T("users.no_users"))
		} else {
			listArea = m.table.View()
		}
	}

	help := helpStyle.Render(i18n.T("users.help"))

	return lipgloss.JoinVertical(lipgloss.Left, filterPane, "", listArea, "", help)
}

// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/legend-score/lscli/internal/i18n"
)

// homeModel is the landing screen shown after login.
type homeModel struct{}

func newHomeModel() homeModel {
	return homeModel{}
}

func (m homeModel) Init() tea.Cmd {
	return nil
}

func (m homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m homeModel) View() string {
	welcome := titleStyle.Render(i18n.T("home.welcome"))
	status := successStyle.Render(i18n.T("home.logged_in"))
	return lipgloss.JoinVertical(lipgloss.Left, welcome, "  "+status)
}

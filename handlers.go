package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	width := msg.Width - h
	height := msg.Height - v - takenHeight

	m.overview.SetSize(width, height)
	m.overview.Viewport.Width = msg.Width
	m.overview.Viewport.Height = msg.Height - takenHeight

	m.transactions.SetSize(width, height)
	m.trend.SetSize(width, msg.Height-v-3)
	m.configView.SetSize(width, height)

	m.help.Width = msg.Width

	if m.transactionForm != nil {
		m.transactionForm = m.transactionForm.WithHeight(height).WithWidth(width)
	}

	if m.incomeForm != nil {
		m.incomeForm = m.incomeForm.WithHeight(height).WithWidth(width)
	}

	if m.clearForm != nil {
		m.clearForm = m.clearForm.WithHeight(height).WithWidth(width)
	}

	return m, nil
}

func (m model) handleTrendKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return selectMonth(&m, m.trend.SelectedMonth())
	}

	var cmd tea.Cmd
	m.trend, cmd = m.trend.Update(msg)
	return m, cmd
}

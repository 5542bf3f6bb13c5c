package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check the global keys first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd, handled := handleKeyPress(msg, &m); handled {
			log.Debug("key press handled")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case editTransactionMsg:
		return startEdit(&m, msg.id)

	case deleteTransactionMsg:
		return deleteTransaction(&m, msg.id)
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case overviewState:
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case transactions:
		return updateTransactions(msg, m)

	case transactionForm:
		return updateTransactionForm(msg, &m)

	case incomeForm:
		return updateIncomeForm(msg, &m)

	case confirmClear:
		return updateClearConfirmation(msg, &m)

	case trendState:
		if msg, ok := msg.(tea.KeyMsg); ok {
			return m.handleTrendKeys(msg)
		}
		m.trend, cmd = m.trend.Update(msg)
		return m, cmd

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd
	}

	return m, nil
}

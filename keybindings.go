package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	transactions   key.Binding
	overview       key.Binding
	trend          key.Binding
	config         key.Binding
	newTransaction key.Binding
	fixedIncome    key.Binding
	clearAll       key.Binding
	nextMonth      key.Binding
	previousMonth  key.Binding
	escape         key.Binding
	fullHelp       key.Binding
	quit           key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.overview,
		km.transactions,
		km.newTransaction,
		km.previousMonth,
		km.nextMonth,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.overview,
			km.transactions,
			km.trend,
			km.config,
			km.quit,
			km.fullHelp,
		},
		{
			km.newTransaction,
			km.fixedIncome,
			km.clearAll,
		},
		{
			km.nextMonth,
			km.previousMonth,
			km.escape,
		},
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		transactions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transactions"),
		),
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		trend: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year trend"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		newTransaction: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new transaction"),
		),
		fixedIncome: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "fixed income"),
		),
		clearAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear all data"),
		),
		nextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		previousMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous month"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	return keys
}

// handleKeyPress runs the global bindings. It reports whether msg was
// consumed; unconsumed keys go on to the active view.
func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	log.Debug("key pressed", "key", msg.String())

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(msg, m)
	}

	// Check if input is blocked by active forms
	if isInputBlocked(m) {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit, true
		}
		return m, nil, false
	}

	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit, true
	}

	switch {
	case key.Matches(msg, m.keys.nextMonth):
		return nextMonth(m)
	case key.Matches(msg, m.keys.previousMonth):
		return previousMonth(m)
	}

	return handleSessionStateKeys(msg, m)
}

func isInputBlocked(m *model) bool {
	if m.transactions.FilterState() == list.Filtering {
		return true
	}

	switch m.sessionState {
	case transactionForm, incomeForm, confirmClear:
		return true
	}

	return false
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.transactions):
		if m.sessionState != transactions {
			m.switchTo(transactions)
			return m, nil, true
		}

	case key.Matches(msg, m.keys.overview):
		if m.sessionState != overviewState {
			m.switchTo(overviewState)
			return m, nil, true
		}

	case key.Matches(msg, m.keys.trend):
		if m.sessionState != trendState {
			m.switchTo(trendState)
			return m, nil, true
		}

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configView {
			m.switchTo(configView)
			return m, nil, true
		}

	case key.Matches(msg, m.keys.newTransaction):
		model, cmd := openTransactionForm(m)
		return model, cmd, true

	case key.Matches(msg, m.keys.fixedIncome):
		model, cmd := openIncomeForm(m)
		return model, cmd, true

	case key.Matches(msg, m.keys.clearAll):
		model, cmd := openClearConfirmation(m)
		return model, cmd, true

	case key.Matches(msg, m.keys.fullHelp):
		// the list renders its own help
		if m.sessionState != transactions {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil, true
		}
	}

	return m, nil, false
}

// switchTo shows state, focusing the tables that take keyboard input.
func (m *model) switchTo(state sessionState) {
	m.trend.SetFocus(state == trendState)
	m.configView.SetFocus(state == configView)

	m.previousSessionState = m.sessionState
	m.sessionState = state
}

// handleEscape cancels the active form or returns to the overview.
func handleEscape(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	switch m.sessionState {
	case transactionForm:
		log.Debug("handling escape in transaction form")
		model, cmd := cancelTransactionForm(m)
		return model, cmd, true

	case incomeForm:
		log.Debug("handling escape in income form")
		model, cmd := cancelIncomeForm(m)
		return model, cmd, true

	case confirmClear:
		log.Debug("handling escape in clear confirmation")
		model, cmd := cancelClear(m)
		return model, cmd, true

	case transactions:
		// handle if user is filtering transactions and presses escape
		if m.transactions.FilterState() != list.Unfiltered {
			log.Debug("handling escape in transactions filtering")
			var cmd tea.Cmd
			m.transactions, cmd = m.transactions.Update(msg)
			return m, cmd, true
		}
	}

	m.switchTo(overviewState)
	return m, nil, true
}

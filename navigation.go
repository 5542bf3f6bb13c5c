package main

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// nextMonth selects the following month, wrapping December to January.
func nextMonth(m *model) (tea.Model, tea.Cmd, bool) {
	m.session.NextMonth()
	log.Debug("selected month", "month", m.session.Month)
	return m, m.refresh(), true
}

// previousMonth selects the preceding month, wrapping January to December.
func previousMonth(m *model) (tea.Model, tea.Cmd, bool) {
	m.session.PreviousMonth()
	log.Debug("selected month", "month", m.session.Month)
	return m, m.refresh(), true
}

// selectMonth jumps to month and shows its overview.
func selectMonth(m *model, month int) (tea.Model, tea.Cmd) {
	m.session.SetMonth(month)
	cmd := m.refresh()
	m.switchTo(overviewState)
	return m, cmd
}

// refresh recomputes every view from the book for the selected month.
func (m *model) refresh() tea.Cmd {
	summary := m.book.Summary(m.session.Month)

	m.overview.SetSummary(summary)
	m.trend.SetTrend(m.book.Trend(), m.session.Month)

	items := make([]list.Item, len(summary.Transactions))
	for i, t := range summary.Transactions {
		items[i] = transactionItem{t: t, currency: m.currency}
	}

	return m.transactions.SetItems(items)
}

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

func newClearForm(confirmed *bool, count int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all data?").
				Description(fmt.Sprintf("This deletes %d transactions and resets the fixed income. It cannot be undone.", count)).
				Affirmative("Delete everything").
				Negative("Keep my data").
				Value(confirmed),
		),
	)
}

// openClearConfirmation asks before the ledger is wiped.
func openClearConfirmation(m *model) (tea.Model, tea.Cmd) {
	m.session.RequestClear()

	confirmed := false
	m.clearConfirmed = &confirmed
	m.clearForm = newClearForm(m.clearConfirmed, m.book.Len())

	m.previousSessionState = m.sessionState
	m.sessionState = confirmClear

	return m, tea.Batch(m.clearForm.Init(), tea.WindowSize())
}

func updateClearConfirmation(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.clearForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.clearForm = f
	} else {
		log.Debug("clearForm did not return a form")
		return m, nil
	}

	switch m.clearForm.State {
	case huh.StateCompleted:
		if *m.clearConfirmed {
			return clearAll(m)
		}
		return cancelClear(m)
	case huh.StateAborted:
		return cancelClear(m)
	}

	return m, cmd
}

func cancelClear(m *model) (tea.Model, tea.Cmd) {
	m.session.CancelClear()

	m.clearForm = nil
	m.clearConfirmed = nil
	m.sessionState = m.previousSessionState

	return m, nil
}

func clearAll(m *model) (tea.Model, tea.Cmd) {
	m.clearForm = nil
	m.clearConfirmed = nil
	m.sessionState = overviewState

	ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
	defer cancel()

	cleared, err := m.session.ConfirmClear(ctx, m.book)
	if err != nil {
		log.Error("failed to clear ledger", "error", err)
		m.errorMsg = fmt.Sprintf("Error clearing data: %s", err)
		return m, m.refresh()
	}

	log.Debug("clear all confirmed", "cleared", cleared)
	m.errorMsg = ""

	return m, tea.Batch(m.refresh(), m.transactions.NewStatusMessage("All data cleared"))
}

func clearConfirmationView(m model) string {
	if m.clearForm == nil {
		return ""
	}
	return m.styles.warningStyle.Render("Danger zone") + "\n\n" + m.clearForm.View()
}

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/zenwallet/ledger"
)

func newIncomeForm(value *string, currency string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Fixed monthly income").
				Description(fmt.Sprintf("Added to the income of every month, in %s", currency)).
				Key("fixed_income").
				Placeholder("0,00").
				Value(value).
				Validate(ledger.ValidateValue),
		),
	)
}

// openIncomeForm opens the fixed income form pre-filled with the current value.
func openIncomeForm(m *model) (tea.Model, tea.Cmd) {
	value := m.book.FixedIncome().String()
	m.incomeValue = &value
	m.incomeForm = newIncomeForm(m.incomeValue, m.currency)

	m.previousSessionState = m.sessionState
	m.sessionState = incomeForm

	return m, tea.Batch(m.incomeForm.Init(), tea.WindowSize())
}

func updateIncomeForm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.incomeForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.incomeForm = f
	} else {
		log.Debug("incomeForm did not return a form")
		return m, nil
	}

	switch m.incomeForm.State {
	case huh.StateCompleted:
		return submitIncomeForm(m)
	case huh.StateAborted:
		return cancelIncomeForm(m)
	}

	return m, cmd
}

func cancelIncomeForm(m *model) (tea.Model, tea.Cmd) {
	if m.incomeForm != nil {
		m.incomeForm.State = huh.StateAborted
	}

	m.incomeForm = nil
	m.incomeValue = nil
	m.sessionState = m.previousSessionState

	return m, nil
}

func submitIncomeForm(m *model) (tea.Model, tea.Cmd) {
	raw := *m.incomeValue

	m.incomeForm = nil
	m.incomeValue = nil
	m.sessionState = m.previousSessionState

	ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
	defer cancel()

	fixedIncome, err := m.book.SetFixedIncome(ctx, raw)
	if err != nil {
		log.Error("failed to save fixed income", "error", err)
		return m, tea.Batch(m.refresh(),
			m.transactions.NewStatusMessage(fmt.Sprintf("Error saving fixed income: %s", err)),
		)
	}

	return m, tea.Batch(m.refresh(),
		m.transactions.NewStatusMessage("Fixed income set to "+fixedIncome.Display(m.currency)),
	)
}

func incomeFormView(m model) string {
	if m.incomeForm == nil {
		return ""
	}
	return m.incomeForm.View()
}

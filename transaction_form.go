package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/zenwallet/ledger"
)

func newTransactionForm(draft *ledger.Draft, mode ledger.FormMode) *huh.Form {
	categoryOpts := make([]huh.Option[string], 0, len(ledger.Categories())+1)
	for _, c := range ledger.Categories() {
		categoryOpts = append(categoryOpts, huh.NewOption(c.Label(), string(c)))
	}

	// keep a legacy category selectable so editing does not silently change it
	if c := ledger.Category(draft.Category); c != "" && !c.Known() {
		categoryOpts = append(categoryOpts, huh.NewOption(categoryName(c), draft.Category))
	}

	typeOpts := []huh.Option[string]{
		huh.NewOption(ledger.Expense.Label(), string(ledger.Expense)),
		huh.NewOption(ledger.Income.Label(), string(ledger.Income)),
	}

	title := "New transaction"
	if mode == ledger.FormEdit {
		title = "Edit transaction"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title),

			huh.NewInput().
				Title("Description").
				Description("What the money was for").
				Key("description").
				Placeholder("Groceries, salary, rent...").
				Value(&draft.Description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Value").
				Description("Non-negative amount, '.' or ',' as decimal separator").
				Key("value").
				Placeholder("0,00").
				Value(&draft.Value).
				Validate(ledger.ValidateValue),

			huh.NewInput().
				Title("Date").
				Description("Transaction date (YYYY-MM-DD)").
				Key("date").
				Placeholder("YYYY-MM-DD").
				Value(&draft.Date).
				Validate(ledger.ValidateDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOpts...).
				Key("type").
				Value(&draft.Type),

			huh.NewSelect[string]().
				Title("Category").
				Description("Select a category for the transaction").
				Options(categoryOpts...).
				Key("category").
				Value(&draft.Category),
		),
	)
}

// openTransactionForm opens an empty form for a new transaction.
func openTransactionForm(m *model) (tea.Model, tea.Cmd) {
	m.session.OpenForm()
	m.draft = &ledger.Draft{
		Date:     time.Now().Format(ledger.DateLayout),
		Category: string(ledger.CategoryFood),
		Type:     string(ledger.Expense),
	}

	return showTransactionForm(m)
}

// startEdit opens the form pre-filled with the transaction id.
func startEdit(m *model, id string) (tea.Model, tea.Cmd) {
	draft, ok := m.session.StartEdit(m.book, id)
	if !ok {
		log.Debug("edit requested for unknown transaction", "id", id)
		return m, m.transactions.NewStatusMessage("Transaction no longer exists")
	}

	m.draft = &draft
	return showTransactionForm(m)
}

func showTransactionForm(m *model) (tea.Model, tea.Cmd) {
	m.transactionForm = newTransactionForm(m.draft, m.session.FormMode())

	if m.sessionState != transactionForm {
		m.previousSessionState = m.sessionState
	}
	m.sessionState = transactionForm

	return m, tea.Batch(m.transactionForm.Init(), tea.WindowSize())
}

func updateTransactionForm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.transactionForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.transactionForm = f
	} else {
		log.Debug("transactionForm did not return a form")
		return m, nil
	}

	switch m.transactionForm.State {
	case huh.StateCompleted:
		return submitTransactionForm(m)
	case huh.StateAborted:
		return cancelTransactionForm(m)
	}

	return m, cmd
}

// cancelTransactionForm drops the draft without touching the ledger.
func cancelTransactionForm(m *model) (tea.Model, tea.Cmd) {
	if m.transactionForm != nil {
		m.transactionForm.State = huh.StateAborted
	}

	m.session.Cancel()
	m.transactionForm = nil
	m.draft = nil
	m.sessionState = m.previousSessionState

	return m, nil
}

func submitTransactionForm(m *model) (tea.Model, tea.Cmd) {
	mode := m.session.FormMode()
	draft := *m.draft

	m.transactionForm = nil
	m.draft = nil
	m.sessionState = transactions

	record, err := draft.Validate()
	if err != nil {
		m.session.Cancel()
		return m, m.transactions.NewStatusMessage(fmt.Sprintf("Invalid transaction: %s", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
	defer cancel()

	if err := m.session.Submit(ctx, m.book, record); err != nil {
		log.Error("failed to save transaction", "error", err)
		return m, tea.Batch(m.refresh(),
			m.transactions.NewStatusMessage(fmt.Sprintf("Error saving transaction: %s", err)),
		)
	}

	status := "Transaction added"
	if mode == ledger.FormEdit {
		status = "Transaction updated"
	}

	return m, tea.Batch(m.refresh(), m.transactions.NewStatusMessage(status))
}

// deleteTransaction removes id and reports the outcome in the status bar.
func deleteTransaction(m *model, id string) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
	defer cancel()

	deleted, err := m.book.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete transaction", "id", id, "error", err)
		return m, tea.Batch(m.refresh(),
			m.transactions.NewStatusMessage(fmt.Sprintf("Error deleting transaction: %s", err)),
		)
	}

	if !deleted {
		return m, m.transactions.NewStatusMessage("Transaction no longer exists")
	}

	return m, tea.Batch(m.refresh(), m.transactions.NewStatusMessage("Transaction deleted"))
}

func transactionFormView(m model) string {
	if m.transactionForm == nil {
		return ""
	}
	return m.transactionForm.View()
}

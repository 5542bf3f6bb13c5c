package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rshep3087/zenwallet/ledger"
)

type transactionItem struct {
	t        ledger.Transaction
	currency string
}

func (t transactionItem) Title() string {
	return t.t.Description
}

func (t transactionItem) Description() string {
	value := t.t.Value.Display(t.currency)
	if t.t.Type == ledger.Expense {
		value = "-" + value
	}

	return fmt.Sprintf("%s %s %s", ledger.FormatDate(t.t.Date), categoryName(t.t.Category), value)
}

func (t transactionItem) FilterValue() string {
	return t.t.Description + " " + string(t.t.Category)
}

type transactionListKeyMap struct {
	overview       key.Binding
	newTransaction key.Binding
}

func newTransactionListKeyMap() *transactionListKeyMap {
	return &transactionListKeyMap{
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		newTransaction: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new transaction"),
		),
	}
}

// Messages emitted by the list delegate for the selected transaction.
type (
	editTransactionMsg struct {
		id string
	}

	deleteTransactionMsg struct {
		id string
	}
)

func updateTransactions(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.transactions, cmd = m.transactions.Update(msg)

	return m, cmd
}

func transactionsView(m model) string {
	if len(m.transactions.Items()) == 0 {
		return m.styles.mutedStyle.Render(
			fmt.Sprintf("No transactions in %s. Press n to add one.", m.session.MonthName()),
		)
	}
	return m.transactions.View()
}

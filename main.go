package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/zenwallet/config"
	"github.com/Rshep3087/zenwallet/ledger"
	"github.com/Rshep3087/zenwallet/overview"
	"github.com/Rshep3087/zenwallet/trend"
)

type model struct {
	keys keyMap
	help help.Model

	theme  Theme
	styles styles

	// sessionState is the view currently shown
	sessionState sessionState
	// previousSessionState is where esc returns to from a form
	previousSessionState sessionState

	// book holds the ledger, every mutation is persisted through it
	book *ledger.Book
	// session tracks the selected month and the edit/clear state machine
	session  ledger.Session
	currency string

	overview overview.Model
	// transactions is a bubbletea list of the selected month's transactions
	transactions         list.Model
	transactionsListKeys *transactionListKeyMap
	trend                trend.Model
	configView           config.Model

	// transactionForm adds or edits a transaction, its fields bind to draft
	transactionForm *huh.Form
	draft           *ledger.Draft

	incomeForm  *huh.Form
	incomeValue *string

	clearForm      *huh.Form
	clearConfirmed *bool

	errorMsg string
}

func main() {
	Execute()
}

// newModel wires the views around book.
func newModel(book *ledger.Book, cfg config.Config, configFile string, now time.Time) model {
	theme := newTheme(cfg.Colors)

	m := model{
		keys:                 initializeKeyMap(),
		help:                 createHelpModel(theme),
		theme:                theme,
		styles:               createStyles(theme),
		sessionState:         overviewState,
		previousSessionState: overviewState,
		book:                 book,
		session:              ledger.NewSession(now),
		currency:             cfg.Currency,
		transactionsListKeys: newTransactionListKeyMap(),
		overview: overview.New(
			overview.WithStyles(theme.overviewStyles()),
			overview.WithCurrency(cfg.Currency),
		),
		trend:      trend.New(theme.trendColors(), cfg.Currency),
		configView: config.New(string(theme.Primary)),
	}

	m.configView.SetConfig(cfg, configFile)

	delegate := m.newItemDelegate(newDelegateKeyMap())

	transactionList := list.New([]list.Item{}, delegate, 0, 0)
	transactionList.SetShowTitle(false)
	transactionList.StatusMessageLifetime = 3 * time.Second
	transactionList.SetStatusBarItemName("transaction", "transactions")
	// "d" and "g" belong to delete and the config view
	transactionList.KeyMap.NextPage = key.NewBinding(
		key.WithKeys("right", "l", "pgdown", "f"),
		key.WithHelp("→/l/pgdn", "next page"),
	)
	transactionList.KeyMap.GoToStart = key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "go to start"),
	)
	transactionList.KeyMap.Quit.SetEnabled(false)
	transactionList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			m.transactionsListKeys.overview,
			m.transactionsListKeys.newTransaction,
		}
	}
	m.transactions = transactionList

	m.refresh()

	return m
}

func (m model) Init() tea.Cmd {
	return tea.WindowSize()
}

// runTUI opens the ledger and runs the dashboard until the user quits.
func (a *app) runTUI(ctx context.Context) error {
	if a.config.Debug {
		f, err := tea.LogToFileWith(logFileName, "zenwallet", log.Default())
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	}

	book, closeBook, err := a.openBook(ctx)
	if err != nil {
		return err
	}
	defer closeBook()

	m := newModel(book, a.config, a.v.ConfigFileUsed(), time.Now())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("zenwallet ran into an error: %w", err)
	}

	return nil
}

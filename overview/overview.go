package overview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/zenwallet/ledger"
)

// Model defines the state for the overview widget for zenwallet.
type Model struct {
	Styles   Styles
	Viewport viewport.Model
	summary  ledger.Summary
	currency string
}

type Styles struct {
	IncomeStyle   lipgloss.Style
	SpentStyle    lipgloss.Style
	MutedStyle    lipgloss.Style
	UnknownStyle  lipgloss.Style
	SummaryStyle  lipgloss.Style
	BreakdownBox  lipgloss.Style
	SectionHeader lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		IncomeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		SpentStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7d78")),
		UnknownStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7d78")).Italic(true),
		SummaryStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		BreakdownBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		SectionHeader: lipgloss.NewStyle().Bold(true),
	}
}

type Option func(*Model)

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

// WithCurrency sets the display currency.
func WithCurrency(currency string) Option {
	return func(m *Model) {
		m.currency = currency
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		currency: "USD",
		summary:  ledger.Summarize(nil, 1, ledger.Amount{}),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetSummary replaces the rendered summary.
func (m *Model) SetSummary(s ledger.Summary) {
	m.summary = s
	m.UpdateViewport()
}

// SetCurrency sets the display currency.
func (m *Model) SetCurrency(currency string) {
	m.currency = currency
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func (m *Model) UpdateViewport() {
	breakdowns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.breakdownView("Expense Summary", m.summary.Categories(), "No expenses this month."),
		m.breakdownView("Income Sources", m.summary.Sources(), "No income this month."),
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.headerView(),
			lipgloss.JoinHorizontal(lipgloss.Top, m.summaryView(), breakdowns),
		),
	)
}

func (m *Model) headerView() string {
	return fmt.Sprintf("Overview for %s - %d transactions", monthName(m.summary.Month), len(m.summary.Transactions))
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return "?"
	}
	return time.Month(month).String()
}

func (m Model) summaryView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Total Income: %s\n", m.Styles.IncomeStyle.Render(m.summary.TotalIncome.Display(m.currency))))
	b.WriteString(fmt.Sprintf("Expenses: %s\n", m.Styles.SpentStyle.Render(m.summary.TotalExpenses.Display(m.currency))))

	balance := m.balanceDisplay()
	if m.summary.Balance.IsNegative() {
		b.WriteString(fmt.Sprintf("Balance: %s\n\n", m.Styles.SpentStyle.Render(balance)))
	} else {
		b.WriteString(fmt.Sprintf("Balance: %s\n\n", m.Styles.IncomeStyle.Render(balance)))
	}

	b.WriteString(m.Styles.MutedStyle.Render(
		fmt.Sprintf("You spent %.1f%% of your income", m.summary.ExpensePercentage),
	))

	return m.Styles.SummaryStyle.Render(b.String())
}

// balanceDisplay renders the balance, which unlike other amounts may be negative.
func (m Model) balanceDisplay() string {
	abs := ledger.NewAmount(m.summary.Balance.Abs()).Display(m.currency)
	if m.summary.Balance.IsNegative() {
		return "-" + abs
	}
	return abs
}

func (m Model) breakdownView(title string, shares []ledger.Share, empty string) string {
	var body string
	if len(shares) == 0 {
		body = m.Styles.MutedStyle.Render(empty)
	} else {
		body = table.New(
			table.WithColumns([]table.Column{
				{Title: "Category", Width: 16},
				{Title: "Total", Width: 16},
				{Title: "%", Width: 8},
			}),
			table.WithRows(m.breakdownRows(shares)),
			table.WithHeight(len(shares)+1),
		).View()
	}

	return m.Styles.BreakdownBox.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.SectionHeader.Render(title),
			body,
		),
	)
}

func (m Model) breakdownRows(shares []ledger.Share) []table.Row {
	rows := make([]table.Row, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, table.Row{
			m.categoryLabel(s.Category),
			s.Amount.Display(m.currency),
			fmt.Sprintf("%.1f%%", s.Percent),
		})
	}
	return rows
}

// categoryLabel marks categories not produced by the form so legacy data
// stays visible but distinct.
func (m Model) categoryLabel(c ledger.Category) string {
	if c.Known() || c == ledger.FixedIncomeSource {
		return c.Label()
	}
	return m.Styles.UnknownStyle.Render(c.Label() + "*")
}

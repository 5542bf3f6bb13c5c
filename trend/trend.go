package trend

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/zenwallet/ledger"
)

type Colors struct {
	Primary string
}

// Model is a month-by-month table of the year.
type Model struct {
	months   table.Model
	currency string
}

func New(colors Colors, currency string) Model {
	months := table.New(
		table.WithColumns([]table.Column{
			{Title: "Month", Width: 12},
			{Title: "Income", Width: 16},
			{Title: "Expenses", Width: 16},
			{Title: "Balance", Width: 16},
			{Title: "Spent", Width: 8},
			{Title: "Transactions", Width: 12},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	months.SetStyles(tableStyle)

	return Model{months: months, currency: currency}
}

func (m *Model) SetFocus(focus bool) {
	if focus {
		m.months.Focus()
	} else {
		m.months.Blur()
	}
}

func (m *Model) SetSize(width, height int) {
	m.months.SetHeight(height)
	m.months.SetWidth(width)
}

// SetTrend fills the table and moves the cursor to the selected month.
func (m *Model) SetTrend(trend [12]ledger.Summary, selectedMonth int) {
	rows := make([]table.Row, 0, len(trend))
	for _, s := range trend {
		balance := ledger.NewAmount(s.Balance.Abs()).Display(m.currency)
		if s.Balance.IsNegative() {
			balance = "-" + balance
		}

		rows = append(rows, table.Row{
			time.Month(s.Month).String(),
			s.TotalIncome.Display(m.currency),
			s.TotalExpenses.Display(m.currency),
			balance,
			fmt.Sprintf("%.1f%%", s.ExpensePercentage),
			fmt.Sprintf("%d", len(s.Transactions)),
		})
	}

	m.months.SetRows(rows)

	if selectedMonth >= 1 && selectedMonth <= 12 {
		m.months.SetCursor(selectedMonth - 1)
	}
}

// SelectedMonth returns the month under the cursor.
func (m *Model) SelectedMonth() int {
	return m.months.Cursor() + 1
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.months, cmd = m.months.Update(msg)
	return *m, cmd
}

func (m *Model) View() string {
	return m.months.View()
}

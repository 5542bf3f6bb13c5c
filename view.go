package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	if m.errorMsg != "" {
		b.WriteString(m.styles.errorStyle.Render(m.errorMsg))
		b.WriteString("\n\n")
	}

	switch m.sessionState {
	case overviewState:
		b.WriteString(m.overview.View())
	case transactions:
		b.WriteString(transactionsView(m))
	case transactionForm:
		b.WriteString(transactionFormView(m))
	case incomeForm:
		b.WriteString(incomeFormView(m))
	case confirmClear:
		b.WriteString(clearConfirmationView(m))
	case trendState:
		b.WriteString(m.trend.View())
	case configView:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	return m.styles.titleStyle.Render(
		fmt.Sprintf("zenwallet | %s | %s",
			m.sessionState.String(),
			m.session.MonthName(),
		),
	)
}

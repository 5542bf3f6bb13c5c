package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/zenwallet/ledger"
)

type shareReport struct {
	Category ledger.Category `json:"category" yaml:"category"`
	Amount   ledger.Amount   `json:"amount" yaml:"amount"`
	Percent  float64         `json:"percent" yaml:"percent"`
}

// summaryReport is the machine readable form of a month summary.
type summaryReport struct {
	Month              int           `json:"month" yaml:"month"`
	MonthName          string        `json:"month_name" yaml:"month_name"`
	Currency           string        `json:"currency" yaml:"currency"`
	FixedIncome        ledger.Amount `json:"fixed_income" yaml:"fixed_income"`
	TotalIncome        ledger.Amount `json:"total_income" yaml:"total_income"`
	TotalExpenses      ledger.Amount `json:"total_expenses" yaml:"total_expenses"`
	Balance            string        `json:"balance" yaml:"balance"`
	ExpensePercentage  float64       `json:"expense_percentage" yaml:"expense_percentage"`
	Transactions       int           `json:"transactions" yaml:"transactions"`
	ExpensesByCategory []shareReport `json:"expenses_by_category" yaml:"expenses_by_category"`
	IncomeBySource     []shareReport `json:"income_by_source" yaml:"income_by_source"`
}

func newSummaryReport(s ledger.Summary, currency string) summaryReport {
	return summaryReport{
		Month:              s.Month,
		MonthName:          time.Month(s.Month).String(),
		Currency:           currency,
		FixedIncome:        s.FixedIncome,
		TotalIncome:        s.TotalIncome,
		TotalExpenses:      s.TotalExpenses,
		Balance:            s.Balance.StringFixed(2),
		ExpensePercentage:  s.ExpensePercentage,
		Transactions:       len(s.Transactions),
		ExpensesByCategory: shareReports(s.Categories()),
		IncomeBySource:     shareReports(s.Sources()),
	}
}

func shareReports(shares []ledger.Share) []shareReport {
	reports := make([]shareReport, len(shares))
	for i, s := range shares {
		reports[i] = shareReport{Category: s.Category, Amount: s.Amount, Percent: s.Percent}
	}
	return reports
}

func newSummaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the totals of a month",
		Long: `Show total income (fixed income plus income transactions), expenses,
balance, percentage spent and the breakdowns by category and income source.`,
		Args: cobra.NoArgs,
		RunE: a.summaryRun,
	}
	addMonthFlag(cmd)
	cmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table, json or yaml")

	return cmd
}

func (a *app) summaryRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd, tableOutputFormat, jsonOutputFormat, yamlOutputFormat)
	if err != nil {
		return err
	}

	month, err := monthFlag(cmd)
	if err != nil {
		return err
	}

	book, closeBook, err := a.openBook(ctx)
	if err != nil {
		return err
	}
	defer closeBook()

	report := newSummaryReport(book.Summary(month), a.config.Currency)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, report)
	case yamlOutputFormat:
		return outputYAML(cmd, report)
	default:
		return outputSummaryTable(cmd, report)
	}
}

func outputSummaryTable(cmd *cobra.Command, r summaryReport) error {
	out := cmd.OutOrStdout()

	t := createStyledTable("FIELD", "VALUE")
	t.Row("Month", r.MonthName)
	t.Row("Fixed Income", r.FixedIncome.Display(r.Currency))
	t.Row("Total Income", r.TotalIncome.Display(r.Currency))
	t.Row("Expenses", r.TotalExpenses.Display(r.Currency))
	t.Row("Balance", r.Balance)
	t.Row("Spent", fmt.Sprintf("%.1f%%", r.ExpensePercentage))
	t.Row("Transactions", fmt.Sprintf("%d", r.Transactions))
	fmt.Fprintln(out, t)

	if len(r.ExpensesByCategory) > 0 {
		fmt.Fprintln(out, shareTable("CATEGORY", r.ExpensesByCategory, r.Currency))
	}

	if len(r.IncomeBySource) > 0 {
		fmt.Fprintln(out, shareTable("SOURCE", r.IncomeBySource, r.Currency))
	}

	return nil
}

func shareTable(header string, shares []shareReport, currency string) fmt.Stringer {
	t := createStyledTable(header, "AMOUNT", "SHARE")
	for _, s := range shares {
		t.Row(categoryName(s.Category), s.Amount.Display(currency), fmt.Sprintf("%.1f%%", s.Percent))
	}
	return t
}

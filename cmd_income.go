package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/zenwallet/ledger"
)

// incomeReport is the machine readable form of the fixed income.
type incomeReport struct {
	FixedIncome ledger.Amount `json:"fixed_income" yaml:"fixed_income"`
	Currency    string        `json:"currency" yaml:"currency"`
}

func newIncomeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Fixed monthly income commands",
		Long:  `Commands for reading and setting the fixed income added to every month.`,
	}

	setCmd := &cobra.Command{
		Use:   "set <value>",
		Short: "Set the fixed monthly income",
		Long: `Set the fixed monthly income. A ',' is accepted as decimal separator.
Unparsable or negative values are stored as 0.`,
		Args: cobra.ExactArgs(1),
		RunE: a.incomeSetRun,
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the fixed monthly income",
		Args:  cobra.NoArgs,
		RunE:  a.incomeGetRun,
	}
	getCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table, json or yaml")

	cmd.AddCommand(setCmd, getCmd)
	return cmd
}

func (a *app) incomeSetRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, closeBook, err := a.openBook(ctx)
	if err != nil {
		return err
	}
	defer closeBook()

	fixedIncome, err := book.SetFixedIncome(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to set fixed income: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Fixed income set to %s\n", fixedIncome.Display(a.config.Currency))
	return nil
}

func (a *app) incomeGetRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd, tableOutputFormat, jsonOutputFormat, yamlOutputFormat)
	if err != nil {
		return err
	}

	book, closeBook, err := a.openBook(ctx)
	if err != nil {
		return err
	}
	defer closeBook()

	report := incomeReport{FixedIncome: book.FixedIncome(), Currency: a.config.Currency}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, report)
	case yamlOutputFormat:
		return outputYAML(cmd, report)
	default:
		t := createStyledTable("FIELD", "VALUE")
		t.Row("Fixed Income", report.FixedIncome.Display(report.Currency))
		t.Row("Currency", report.Currency)
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	}
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/zenwallet/ledger"
)

var errNotFound = errors.New("transaction not found")

// newTransactionCmd creates the transaction command and its subcommands.
func newTransactionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Transaction management commands",
		Long:    `Commands for adding, editing, deleting and listing transactions.`,
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long:  `Add a new income or expense transaction to the ledger.`,
		Args:  cobra.NoArgs,
		RunE:  a.transactionAddRun,
	}
	addDraftFlags(addCmd, defaultDraft(time.Now()))
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("value")

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long:  `Replace the fields of an existing transaction. Fields without a flag keep their value.`,
		Args:  cobra.ExactArgs(1),
		RunE:  a.transactionEditRun,
	}
	addDraftFlags(editCmd, ledger.Draft{})

	deleteCmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE:    a.transactionDeleteRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions of a month",
		Long:  `List the transactions of the selected month in ascending date order.`,
		Args:  cobra.NoArgs,
		RunE:  a.transactionListRun,
	}
	addMonthFlag(listCmd)
	listCmd.Flags().Bool("all", false, "List every transaction regardless of month")
	listCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table, json, yaml or csv")

	cmd.AddCommand(addCmd, editCmd, deleteCmd, listCmd)
	return cmd
}

func defaultDraft(now time.Time) ledger.Draft {
	return ledger.Draft{
		Date:     now.Format(ledger.DateLayout),
		Category: string(ledger.CategoryOther),
		Type:     string(ledger.Expense),
	}
}

func addDraftFlags(cmd *cobra.Command, defaults ledger.Draft) {
	cmd.Flags().String("date", defaults.Date, "Transaction date (YYYY-MM-DD)")
	cmd.Flags().String("description", defaults.Description, "What the transaction was")
	cmd.Flags().String("category", defaults.Category, "Category code, see 'categories list'")
	cmd.Flags().String("type", defaults.Type, "Transaction type (income or expense)")
	cmd.Flags().String("value", defaults.Value, "Non-negative amount, '.' or ',' as decimal separator")
}

// applyDraftFlags overwrites the fields of d whose flag was set.
func applyDraftFlags(cmd *cobra.Command, d *ledger.Draft) {
	fields := map[string]*string{
		"date":        &d.Date,
		"description": &d.Description,
		"category":    &d.Category,
		"type":        &d.Type,
		"value":       &d.Value,
	}

	for name, field := range fields {
		if cmd.Flags().Changed(name) {
			*field, _ = cmd.Flags().GetString(name)
		}
	}
}

func addMonthFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("month", "m", int(time.Now().Month()), "Month to show (1-12)")
}

func monthFlag(cmd *cobra.Command) (int, error) {
	month, _ := cmd.Flags().GetInt("month")
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month: %d (must be between 1 and 12)", month)
	}
	return month, nil
}

func (a *app) transactionAddRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	draft := defaultDraft(time.Now())
	applyDraftFlags(cmd, &draft)

	record, err := draft.Validate()
	if err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	warnUnknownCategory(record.Category)

	book, closeBook, err := a.openBook(ctx)
	if err != nil {
		return err
	}
	defer closeBook()

	t, err := book.Add(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added transaction %s\n", t.ID)
	return nil
}

func (a *app) transactionEditRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	book, closeBook, err := a.openBook(ctx)
	if err != nil {
		return err
	}
	defer closeBook()

	existing, ok := book.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", errNotFound, id)
	}

	draft := ledger.DraftFrom(existing)
	applyDraftFlags(cmd, &draft)

	record, err := draft.Validate()
	if err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	warnUnknownCategory(record.Category)

	if _, err := book.CommitEdit(ctx, id, record); err != nil {
		return fmt.Errorf("failed to edit transaction: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated transaction %s\n", id)
	return nil
}

func (a *app) transactionDeleteRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	book, closeBook, err := a.openBook(ctx)
	if err != nil {
		return err
	}
	defer closeBook()

	deleted, err := book.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if !deleted {
		return fmt.Errorf("%w: %s", errNotFound, id)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", id)
	return nil
}

func (a *app) transactionListRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd,
		tableOutputFormat, jsonOutputFormat, yamlOutputFormat, csvOutputFormat)
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

	ts := book.Summary(month).Transactions
	if all, _ := cmd.Flags().GetBool("all"); all {
		ts = book.Transactions()
	}

	log.Debug("listing transactions", "month", month, "count", len(ts))

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, ts)
	case yamlOutputFormat:
		return outputYAML(cmd, ts)
	case csvOutputFormat:
		return outputCSV(cmd, ts)
	default:
		return a.outputTransactionsTable(cmd, ts)
	}
}

func (a *app) outputTransactionsTable(cmd *cobra.Command, ts []ledger.Transaction) error {
	t := createStyledTable("ID", "DATE", "DESCRIPTION", "CATEGORY", "TYPE", "VALUE")

	for _, tr := range ts {
		t.Row(
			tr.ID,
			ledger.FormatDate(tr.Date),
			tr.Description,
			categoryName(tr.Category),
			tr.Type.Label(),
			tr.Value.Display(a.config.Currency),
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)
	fmt.Fprintf(cmd.OutOrStdout(), "%d transaction(s)\n", len(ts))

	return nil
}

// categoryName labels a category, marking codes outside the known set.
func categoryName(c ledger.Category) string {
	if c.Known() || c == ledger.FixedIncomeSource {
		return c.Label()
	}
	return c.Label() + "*"
}

func warnUnknownCategory(c ledger.Category) {
	if !c.Known() {
		log.Warn("unknown category, it is kept as typed", "category", c)
	}
}

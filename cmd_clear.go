package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every transaction and the fixed income",
		Long: `Delete every transaction and reset the fixed income to zero.
You are asked to confirm unless --yes is given. Declining changes nothing.`,
		Args: cobra.NoArgs,
		RunE: a.clearRun,
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (a *app) clearRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	book, closeBook, err := a.openBook(ctx)
	if err != nil {
		return err
	}
	defer closeBook()

	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		title := fmt.Sprintf("Delete all %d transactions and the fixed income?", book.Len())
		confirmed, err = a.confirm(title)
		if err != nil {
			return err
		}
	}

	cleared, err := book.ClearAll(ctx, func() bool { return confirmed })
	if err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}

	if !cleared {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing was deleted")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
	return nil
}

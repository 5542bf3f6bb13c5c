package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/zenwallet/ledger"
)

type categoryInfo struct {
	Code  ledger.Category `json:"code" yaml:"code"`
	Label string          `json:"label" yaml:"label"`
}

// newCategoriesCmd creates the categories command.
func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category commands",
		Long:  `Commands for inspecting the categories transactions can use.`,
	}

	categoriesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `List the category codes offered by the transaction form with their labels.`,
		Args:  cobra.NoArgs,
		RunE:  categoriesListRun,
	}
	categoriesListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table, json or yaml")

	cmd.AddCommand(categoriesListCmd)
	return cmd
}

func categoriesListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd, tableOutputFormat, jsonOutputFormat, yamlOutputFormat)
	if err != nil {
		return err
	}

	categories := ledger.Categories()
	infos := make([]categoryInfo, len(categories))
	for i, c := range categories {
		infos[i] = categoryInfo{Code: c, Label: c.Label()}
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, infos)
	case yamlOutputFormat:
		return outputYAML(cmd, infos)
	case tableOutputFormat:
		return outputCategoriesTable(cmd, infos)
	default:
		return errors.New("unsupported output format")
	}
}

func outputCategoriesTable(cmd *cobra.Command, infos []categoryInfo) error {
	t := createStyledTable("CODE", "NAME")

	for _, info := range infos {
		t.Row(string(info.Code), info.Label)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}

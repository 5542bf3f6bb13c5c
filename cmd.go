package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Rshep3087/zenwallet/config"
	"github.com/Rshep3087/zenwallet/ledger"
	"github.com/Rshep3087/zenwallet/storage"
)

// app holds what every command shares: flags, the resolved configuration
// and the way to ask the user for confirmation.
type app struct {
	v         *viper.Viper
	cfgFile   string
	ephemeral bool
	config    config.Config
	confirm   func(title string) (bool, error)
}

func newApp() *app {
	return &app{
		v:       viper.New(),
		config:  config.Default(),
		confirm: confirmPrompt,
	}
}

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zenwallet",
		Short: "A terminal dashboard for your monthly finances",
		Long: `zenwallet tracks a monthly fixed income and your income and expense
transactions, and shows totals, balance and spending breakdowns per month.
Run without a subcommand to open the interactive dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}

			// Setup logging
			log.SetLevel(log.InfoLevel)
			if a.config.Debug {
				log.SetLevel(log.DebugLevel)
			}

			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			// Start TUI when no subcommands are provided
			return a.runTUI(c.Context())
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is zenwallet.toml in the user config directory)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("data-file", "", "SQLite file holding the ledger")
	flags.String("currency", "", "ISO 4217 code amounts are displayed in")
	flags.BoolVar(&a.ephemeral, "ephemeral", false, "keep the ledger in memory only, nothing is written to disk")

	// Bind flags to viper
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("data_file", flags.Lookup("data-file"))
	_ = a.v.BindPFlag("currency", flags.Lookup("currency"))

	// Add subcommands
	rootCmd.AddCommand(newTransactionCmd(a))
	rootCmd.AddCommand(newIncomeCmd(a))
	rootCmd.AddCommand(newSummaryCmd(a))
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newClearCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute builds the root command and runs it.
func Execute() {
	if err := fang.Execute(context.Background(), newRootCmd(newApp())); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in .env, the config file and ENV variables if set.
func (a *app) initConfig() error {
	// a missing .env is the common case
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded", "error", err)
	}

	v := a.v
	defaults := config.Default()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("data_file", defaults.DataFile)
	v.SetDefault("currency", defaults.Currency)

	if a.cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(a.cfgFile)
	} else {
		// Search config in multiple locations (in order of precedence)
		v.AddConfigPath(".")
		v.SetConfigName("zenwallet")
		v.SetConfigType("toml")

		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "zenwallet"))
		}

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(filepath.Join(home, ".config", "zenwallet"))
		}

		// System-wide config directory (lowest precedence)
		v.AddConfigPath("/etc/zenwallet")
	}

	v.SetEnvPrefix("ZENWALLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		log.Debug("Config file not found", "error", err)
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&a.config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	a.config.Currency = strings.ToUpper(strings.TrimSpace(a.config.Currency))
	if a.config.Currency == "" {
		a.config.Currency = config.DefaultCurrency
	}

	return nil
}

// openBook loads the ledger from the configured store. The returned func
// closes the store.
func (a *app) openBook(ctx context.Context) (*ledger.Book, func(), error) {
	var store storage.Store
	if a.ephemeral {
		store = storage.NewMemoryStore()
	} else {
		s, err := storage.OpenSQLite(a.config.DataFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open ledger: %w", err)
		}
		store = s
	}

	adapter := storage.NewAdapter(store)
	ts, fixedIncome := adapter.Load(ctx)
	log.Debug("loaded ledger", "transactions", len(ts), "fixed_income", fixedIncome)

	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close ledger store", "error", err)
		}
	}

	book := ledger.NewBook(adapter, ts, fixedIncome)
	if err := book.SaveRepairs(ctx); err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("failed to save repaired ledger: %w", err)
	}

	return book, closeStore, nil
}

func confirmPrompt(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return confirmed, nil
}

// Utility functions for output formatting.

// validateOutputFormat reads the --output flag and checks it against allowed.
func validateOutputFormat(cmd *cobra.Command, allowed ...string) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")
	if !slices.Contains(allowed, outputFormat) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, allowed)
	}
	return outputFormat, nil
}

func outputJSON(cmd *cobra.Command, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func outputYAML(cmd *cobra.Command, data any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return enc.Close()
}

func outputCSV(cmd *cobra.Command, rows any) error {
	if err := gocsv.Marshal(rows, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to marshal CSV: %w", err)
	}
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		accent    = lipgloss.Color("#5fd7af")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(accent)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "BRL"

// Colors overrides the theme. Empty values keep the defaults.
type Colors struct {
	Primary       string `toml:"primary" mapstructure:"primary"`
	Error         string `toml:"error" mapstructure:"error"`
	Success       string `toml:"success" mapstructure:"success"`
	Warning       string `toml:"warning" mapstructure:"warning"`
	Muted         string `toml:"muted" mapstructure:"muted"`
	Income        string `toml:"income" mapstructure:"income"`
	Expense       string `toml:"expense" mapstructure:"expense"`
	Border        string `toml:"border" mapstructure:"border"`
	Background    string `toml:"background" mapstructure:"background"`
	Text          string `toml:"text" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text" mapstructure:"secondary_text"`
}

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// DataFile is the SQLite file holding the ledger
	DataFile string `toml:"data_file" mapstructure:"data_file"`
	// Currency is the ISO 4217 code amounts are displayed in
	Currency string `toml:"currency" mapstructure:"currency"`
	// Colors customizes the TUI theme
	Colors Colors `toml:"colors" mapstructure:"colors"`
}

// DefaultDataFile returns the ledger location under the user data directory.
func DefaultDataFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "zenwallet.db"
	}
	return filepath.Join(dir, "zenwallet", "zenwallet.db")
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		DataFile: DefaultDataFile(),
		Currency: DefaultCurrency,
	}
}

// Write stores c as TOML at path, refusing to overwrite an existing file.
func Write(path string, c Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New(primary string) Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 50},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(primary))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func displayValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(value, home) {
		return "~" + strings.TrimPrefix(value, home)
	}

	return value
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config, configFile string) {
	rows := []table.Row{
		{
			"Config File",
			displayValue(configFile),
			"File the settings were read from",
		},
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Data File",
			displayValue(config.DataFile),
			"SQLite file holding transactions and fixed income",
		},
		{
			"Currency",
			displayValue(config.Currency),
			"Currency amounts are displayed in",
		},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}

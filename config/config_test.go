package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/pelletier/go-toml/v2"
)

func TestDisplayValue(t *testing.T) {
	home, err := os.UserHomeDir()
	be.NilErr(t, err)

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "plain value",
			value:    "BRL",
			expected: "BRL",
		},
		{
			name:     "empty value",
			value:    "",
			expected: "(not set)",
		},
		{
			name:     "path under home",
			value:    filepath.Join(home, ".config", "zenwallet", "zenwallet.db"),
			expected: "~" + string(filepath.Separator) + filepath.Join(".config", "zenwallet", "zenwallet.db"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := displayValue(tt.value)
			be.Equal(t, tt.expected, result)
		})
	}
}

func TestSetConfig(t *testing.T) {
	m := New("#ffd644")
	m.SetConfig(Config{Debug: true, DataFile: "/tmp/zenwallet.db", Currency: "USD"}, "")

	rows := m.configTable.Rows()
	be.Equal(t, 4, len(rows))
	be.Equal(t, "(not set)", rows[0][1])
	be.Equal(t, "true", rows[1][1])
	be.Equal(t, "USD", rows[3][1])
}

func TestDefault(t *testing.T) {
	c := Default()
	be.Equal(t, DefaultCurrency, c.Currency)
	be.True(t, strings.HasSuffix(c.DataFile, "zenwallet.db"))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "zenwallet.toml")
	want := Config{
		Debug:    true,
		DataFile: "/var/lib/zenwallet.db",
		Currency: "EUR",
		Colors:   Colors{Primary: "#00ff00"},
	}

	be.NilErr(t, Write(path, want))

	data, err := os.ReadFile(path)
	be.NilErr(t, err)

	var got Config
	be.NilErr(t, toml.Unmarshal(data, &got))
	be.Equal(t, want, got)

	// existing files are left alone
	err = Write(path, Default())
	be.Nonzero(t, err)
}

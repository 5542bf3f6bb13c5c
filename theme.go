package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/zenwallet/config"
	"github.com/Rshep3087/zenwallet/overview"
	"github.com/Rshep3087/zenwallet/trend"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Muted         lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Border        lipgloss.Color
	Background    lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#5fd7af"),
		Error:         parseColor(colors.Error, "#ff0000"),
		Success:       parseColor(colors.Success, "#22ba46"),
		Warning:       parseColor(colors.Warning, "#e05951"),
		Muted:         parseColor(colors.Muted, "#7f7d78"),
		Income:        parseColor(colors.Income, "#00ff00"),
		Expense:       parseColor(colors.Expense, "#ff0000"),
		Border:        parseColor(colors.Border, "#7D56F4"),
		Background:    parseColor(colors.Background, "#7D56F4"),
		Text:          parseColor(colors.Text, "#FAFAFA"),
		SecondaryText: parseColor(colors.SecondaryText, "#888888"),
	}
}

// parseColor parses a color string (hex or ANSI) and returns a lipgloss.Color.
// Falls back to defaultColor if the input is empty.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	// lipgloss.Color accepts both hex colors ("#ff0000") and ANSI codes ("21")
	return lipgloss.Color(colorStr)
}

func (t Theme) overviewStyles() overview.Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, standardMargin)

	return overview.Styles{
		IncomeStyle:   lipgloss.NewStyle().Foreground(t.Income),
		SpentStyle:    lipgloss.NewStyle().Foreground(t.Expense),
		MutedStyle:    lipgloss.NewStyle().Foreground(t.Muted),
		UnknownStyle:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		SummaryStyle:  box,
		BreakdownBox:  box,
		SectionHeader: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
	}
}

func (t Theme) trendColors() trend.Colors {
	return trend.Colors{Primary: string(t.Primary)}
}

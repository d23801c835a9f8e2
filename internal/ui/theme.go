package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the storefront.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string

	Border      string
	BorderFocus string

	SelectionBg   string
	SelectionText string
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Price    lipgloss.Style
	Panel    lipgloss.Style
	HelpKey  lipgloss.Style
}

// Styles returns the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
	}
}

var themes = map[string]Theme{
	"Frutilla": {
		Name:          "Frutilla",
		Background:    "#1a1423",
		Surface:       "#241b2f",
		Text:          "#f4ecf7",
		Muted:         "#9a8fa8",
		Accent:        "#ff6f91",
		Success:       "#7bd88f",
		Warning:       "#ffd97d",
		Danger:        "#ff5c57",
		Border:        "#453a52",
		BorderFocus:   "#ff6f91",
		SelectionBg:   "#ff6f91",
		SelectionText: "#1a1423",
	},
	"Pistacho": {
		Name:          "Pistacho",
		Background:    "#101810",
		Surface:       "#182418",
		Text:          "#e8f0e8",
		Muted:         "#8aa08a",
		Accent:        "#a3d977",
		Success:       "#a3d977",
		Warning:       "#e8c264",
		Danger:        "#e06c5e",
		Border:        "#2e3f2e",
		BorderFocus:   "#a3d977",
		SelectionBg:   "#a3d977",
		SelectionText: "#101810",
	},
}

// themeOrder fixes the cycle order; map iteration is not stable.
var themeOrder = []string{"Frutilla", "Pistacho"}

const defaultThemeName = "Frutilla"

// GetTheme returns the named theme, or the default when unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[defaultThemeName]
}

// NextTheme returns the name following current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return defaultThemeName
}

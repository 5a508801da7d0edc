package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Hint        lipgloss.Style
	HintKey     lipgloss.Style
	Modal       lipgloss.Style
	Prompt      lipgloss.Style
	ResultURL   lipgloss.Style
	Snippet     lipgloss.Style
	Match       lipgloss.Style
	Score       lipgloss.Style
	SelectedBg  lipgloss.Style
	Notice      lipgloss.Style
	Loading     lipgloss.Style
	HistoryHead lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:     lipgloss.NewStyle().Faint(true),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HintKey: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		ResultURL:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Snippet:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Score:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		SelectedBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Notice:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HistoryHead: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}

package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Poster        lipgloss.Style
	PosterCaption lipgloss.Style
	DotActive     lipgloss.Style
	DotInactive   lipgloss.Style
	SearchBox     lipgloss.Style
	SearchFocused lipgloss.Style
	RowName       lipgloss.Style
	RowPoster     lipgloss.Style
	Highlight     lipgloss.Style
	ListHeader    lipgloss.Style
	HelpBox       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Poster: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Align(lipgloss.Center, lipgloss.Center),
		PosterCaption: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		DotActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		DotInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("214")). // yellow
			Padding(0, 1),
		RowName:    lipgloss.NewStyle().Bold(true),
		RowPoster:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ListHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
	}
}

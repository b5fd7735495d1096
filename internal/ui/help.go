package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpSectionNames label the groups returned by keyMap.FullHelp
var helpSectionNames = []string{"Carousel", "List", "Search", "Other"}

// renderHelpContent renders the full key reference
func renderHelpContent(keys keyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("reelview Help"))
	help.WriteString("\n")

	groups := keys.FullHelp()
	keyWidth := 0
	for _, group := range groups {
		for _, b := range group {
			if w := lipgloss.Width(b.Help().Key); w > keyWidth {
				keyWidth = w
			}
		}
	}

	for i, group := range groups {
		if i > 0 {
			help.WriteString("\n")
		}
		if i < len(helpSectionNames) {
			help.WriteString(sectionStyle.Render(helpSectionNames[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			help.WriteString(helpLine(b, keyWidth, keyStyle, descStyle))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("Typing in the search box filters the list by title, ignoring case."))

	return help.String()
}

func helpLine(b key.Binding, keyWidth int, keyStyle, descStyle lipgloss.Style) string {
	k := b.Help().Key
	pad := strings.Repeat(" ", keyWidth-lipgloss.Width(k)+2)
	return fmt.Sprintf("  %s%s%s\n", keyStyle.Render(k), pad, descStyle.Render(b.Help().Desc))
}

// HelpOps shows help outside the Bubble Tea screen
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Keep ov from writing to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

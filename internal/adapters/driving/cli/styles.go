package cli

import "github.com/charmbracelet/lipgloss"

// Styles for human-facing output. Kept deliberately muted; generated
// code itself is always printed unstyled so it can be piped.
var (
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

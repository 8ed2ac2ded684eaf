package convert

import "github.com/charmbracelet/lipgloss/v2"

var (
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

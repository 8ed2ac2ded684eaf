package inspect

import "github.com/charmbracelet/lipgloss/v2"

var (
	FeedTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	FeedDescStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	EntryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	EntryMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	SpacerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	alertStyles = map[alertKind]lipgloss.Style{
		alertError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		alertSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		alertInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
)

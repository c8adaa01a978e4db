package repl

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the interactive session. lipgloss degrades to plain
// text when the output is not a colour terminal.
var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 4)

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

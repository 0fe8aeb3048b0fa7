// Package styles holds the shared lipgloss styles of the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Primary = lipgloss.Color("#F59E0B") // Amber, the snooze accent
	Danger  = lipgloss.Color("#EF4444") // Red
	Success = lipgloss.Color("#10B981") // Green
	Muted   = lipgloss.Color("#6B7280") // Gray
	Text    = lipgloss.Color("#F9FAFB") // Light

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Header = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(Muted).
		Padding(0, 1)

	// Story lines
	StoryTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	StoryMeta = lipgloss.NewStyle().
			Foreground(Muted)

	SelectedLine = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Star = lipgloss.NewStyle().
		Foreground(Primary)

	// Status line
	StatusError = lipgloss.NewStyle().
			Foreground(Danger)

	StatusInfo = lipgloss.NewStyle().
			Foreground(Success)

	Help = lipgloss.NewStyle().
		Foreground(Muted)

	Key = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
)

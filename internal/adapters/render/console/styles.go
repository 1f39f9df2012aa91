package console

import (
	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	item     lipgloss.Style
	detail   lipgloss.Style
	label    lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	warning  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	link     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		item:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		link:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("117")),
	}
}

func (s styles) status(status domain.ProjectStatus) lipgloss.Style {
	switch status {
	case domain.ProjectStatusActive:
		return s.active
	case domain.ProjectStatusCompleted:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	case domain.ProjectStatusInactive:
		return s.warning
	default:
		return s.inactive
	}
}

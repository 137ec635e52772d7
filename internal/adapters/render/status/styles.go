package status

import (
	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	bot        lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	language   lipgloss.Style
	meta       lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	statuses   map[domain.TrainingStatus]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		bot:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		language:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		statuses: map[domain.TrainingStatus]lipgloss.Style{
			domain.TrainingStatusNeedsTraining: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			domain.TrainingStatusQueued:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			domain.TrainingStatusTraining:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			domain.TrainingStatusDone:          lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			domain.TrainingStatusErrored:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			domain.TrainingStatusCanceled:      lipgloss.NewStyle().Faint(true),
		},
	}
}

func (s styles) status(status domain.TrainingStatus) lipgloss.Style {
	if style, ok := s.statuses[status]; ok {
		return style
	}
	return s.detail
}
